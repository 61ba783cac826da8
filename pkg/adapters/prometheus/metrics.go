// Package prometheus instruments trace enumeration with Prometheus metrics
// via the Explorer's hooks.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/tracery"
	"github.com/aretw0/tracery/pkg/event"
)

// Metrics holds the collectors fed by enumeration hooks.
type Metrics struct {
	StatesVisited prometheus.Counter
	TracesFound   prometheus.Counter
	TraceLength   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StatesVisited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracery_states_visited_total",
			Help: "Total number of cursor states visited during enumeration",
		}),
		TracesFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracery_traces_found_total",
			Help: "Total number of maximal traces found",
		}),
		TraceLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tracery_trace_length_events",
			Help:    "Length in visible events of maximal traces found",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	reg.MustRegister(m.StatesVisited, m.TracesFound, m.TraceLength)
	return m
}

// Hooks adapts the metrics into enumeration hooks for tracery.WithHooks.
func Hooks[E event.Event[E]](m *Metrics) tracery.Hooks[E] {
	return tracery.Hooks[E]{
		OnState: func(depth int, trace []E) {
			m.StatesVisited.Inc()
		},
		OnTrace: func(trace []E) {
			m.TracesFound.Inc()
			m.TraceLength.Observe(float64(len(trace)))
		},
	}
}
