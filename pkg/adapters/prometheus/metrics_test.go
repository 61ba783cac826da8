package prometheus_test

import (
	"testing"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tracery"
	promAdapter "github.com/aretw0/tracery/pkg/adapters/prometheus"
	"github.com/aretw0/tracery/pkg/event"
	"github.com/aretw0/tracery/pkg/process"
)

func TestHooksCountEnumeration(t *testing.T) {
	registry := promclient.NewRegistry()
	metrics := promAdapter.NewMetrics(registry)

	explorer := tracery.New(
		tracery.WithHooks(promAdapter.Hooks[event.Name](metrics)),
	)

	// a → b → Skip visits the initial state, the two states after a and b,
	// and the terminated state, yielding the single trace ⟨a, b, ✔⟩.
	p := process.Prefix(event.Named("a"),
		process.Prefix(event.Named("b"), process.Skip[event.Name]()))
	traces := explorer.MaximalTraces(p)

	require.Equal(t, 1, traces.Len())
	assert.InDelta(t, 4, testutil.ToFloat64(metrics.StatesVisited), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.TracesFound), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.TraceLength))
}

func TestNewMetricsRegistersCollectors(t *testing.T) {
	registry := promclient.NewRegistry()
	promAdapter.NewMetrics(registry)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"tracery_states_visited_total",
		"tracery_traces_found_total",
		"tracery_trace_length_events",
	}, names)
}
