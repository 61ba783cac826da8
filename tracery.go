package tracery

import (
	"io"
	"log/slog"

	"github.com/aretw0/tracery/pkg/event"
	"github.com/aretw0/tracery/pkg/process"
	"github.com/aretw0/tracery/pkg/trace"
)

// Hooks carries observability callbacks fired during trace enumeration.
// Either field may be nil.
type Hooks[E event.Event[E]] struct {
	// OnState fires once per visited cursor state.
	OnState func(depth int, trace []E)
	// OnTrace fires once per maximal trace found.
	OnTrace func(trace []E)
}

// Explorer is the high-level entry point for the Tracery library. It wraps
// the trace engine and provides a simplified API for consumers who want one
// configured object instead of per-call options.
type Explorer[E event.Event[E]] struct {
	logger   *slog.Logger
	hooks    Hooks[E]
	maxDepth int
}

// Option defines a functional option for configuring the Explorer.
type Option[E event.Event[E]] func(*Explorer[E])

// WithLogger sets a custom structured logger for the explorer.
func WithLogger[E event.Event[E]](logger *slog.Logger) Option[E] {
	return func(x *Explorer[E]) {
		x.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks[E event.Event[E]](hooks Hooks[E]) Option[E] {
	return func(x *Explorer[E]) {
		x.hooks = hooks
	}
}

// WithMaxDepth caps recorded trace length during enumeration. Zero means
// unbounded.
func WithMaxDepth[E event.Event[E]](depth int) Option[E] {
	return func(x *Explorer[E]) {
		x.maxDepth = depth
	}
}

// New initializes a new Explorer.
func New[E event.Event[E]](opts ...Option[E]) *Explorer[E] {
	x := &Explorer[E]{}
	for _, opt := range opts {
		opt(x)
	}
	// Ensure logger is initialized so we never pass nil to the engine.
	if x.logger == nil {
		x.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return x
}

func (x *Explorer[E]) options() trace.Options[E] {
	return trace.Options[E]{
		Logger:   x.logger,
		MaxDepth: x.maxDepth,
		OnState:  x.hooks.OnState,
		OnTrace:  x.hooks.OnTrace,
	}
}

// MaximalTraces enumerates the maximal finite traces of p.
func (x *Explorer[E]) MaximalTraces(p process.Process[E]) *trace.MaximalTraces[E] {
	return trace.MaximalFiniteTracesWith(p, x.options())
}

// Satisfies replays tr against a fresh cursor of p.
func (x *Explorer[E]) Satisfies(p process.Process[E], tr []E) bool {
	return trace.Satisfies(p, tr)
}

// Transitions materializes the one-step transition relation of p.
func (x *Explorer[E]) Transitions(p *process.CSP[E]) map[E][]*process.CSP[E] {
	return trace.Transitions(p)
}

// RefinedBy reports whether impl trace-refines spec.
func (x *Explorer[E]) RefinedBy(spec, impl *process.CSP[E]) bool {
	return trace.RefinedBy(spec, impl)
}
