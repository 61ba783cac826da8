package trace

import (
	"log/slog"

	"github.com/aretw0/tracery/pkg/event"
	"github.com/aretw0/tracery/pkg/process"
)

// Options tunes trace enumeration. The zero value explores exhaustively and
// silently.
type Options[E event.Event[E]] struct {
	// Logger receives a debug record per visited state. Nil disables logging.
	Logger *slog.Logger

	// MaxDepth caps recorded trace length; enumeration stops extending a
	// trace once it reaches this many visible events. Zero means unbounded.
	MaxDepth int

	// OnState is called once per visited cursor state with the number of
	// states currently on the exploration path and the trace so far.
	OnState func(depth int, trace []E)

	// OnTrace is called once per maximal trace found, before insertion.
	OnTrace func(trace []E)
}

// MaximalFiniteTraces enumerates the maximal finite traces of p. Traces
// record visible events and ✔; τ steps are walked through silently. Cycles
// are cut by comparing the current cursor with every state on the path, so a
// process that loops forever contributes the trace that led into the loop.
func MaximalFiniteTraces[E event.Event[E]](p process.Process[E]) *MaximalTraces[E] {
	return MaximalFiniteTracesWith(p, Options[E]{})
}

// MaximalFiniteTracesWith is MaximalFiniteTraces with explicit Options.
func MaximalFiniteTracesWith[E event.Event[E]](p process.Process[E], opts Options[E]) *MaximalTraces[E] {
	en := &engine[E]{opts: opts, result: NewMaximalTraces[E]()}
	en.walk(p.Root())
	return en.result
}

type engine[E event.Event[E]] struct {
	opts   Options[E]
	result *MaximalTraces[E]
	path   []process.Cursor[E]
	trace  []E
}

func (en *engine[E]) walk(c process.Cursor[E]) {
	if en.opts.OnState != nil {
		en.opts.OnState(len(en.path), en.trace)
	}
	if en.opts.Logger != nil {
		en.opts.Logger.Debug("visiting state",
			"depth", len(en.path),
			"trace_len", len(en.trace))
	}

	// A state already on the path means a cycle: the trace that led here is
	// as long as this branch gets.
	for _, prev := range en.path {
		if prev.Equal(c) {
			en.emit()
			return
		}
	}

	events := uniqueEvents(c)
	if len(events) == 0 {
		en.emit()
		return
	}
	if en.opts.MaxDepth > 0 && len(en.trace) >= en.opts.MaxDepth {
		en.emit()
		return
	}

	en.path = append(en.path, c)
	tau := event.Tau[E]()
	for _, e := range events {
		after := process.After(c, e)
		if e == tau {
			en.walk(after)
			continue
		}
		en.trace = append(en.trace, e)
		en.walk(after)
		en.trace = en.trace[:len(en.trace)-1]
	}
	en.path = en.path[:len(en.path)-1]
}

func (en *engine[E]) emit() {
	if en.opts.OnTrace != nil {
		en.opts.OnTrace(en.trace)
	}
	en.result.Insert(en.trace)
}

// uniqueEvents returns the cursor's willing events with duplicates collapsed;
// cursors over unresolved choices report one occurrence per possible world.
func uniqueEvents[E event.Event[E]](c process.Cursor[E]) []E {
	var events []E
	seen := make(map[E]struct{})
	for _, e := range c.Events() {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		events = append(events, e)
	}
	return events
}

// Satisfies replays trace against a fresh cursor of p, returning false the
// first time an event is not performable. The trace is taken literally: a τ
// in the trace must be matched by a τ the process is willing to perform.
func Satisfies[E event.Event[E]](p process.Process[E], trace []E) bool {
	return SatisfiesFrom(p.Root(), trace)
}

// SatisfiesFrom replays trace against cursor, advancing it in place.
func SatisfiesFrom[E event.Event[E]](cursor process.Cursor[E], trace []E) bool {
	for _, e := range trace {
		if !cursor.CanPerform(e) {
			return false
		}
		cursor.Perform(e)
	}
	return true
}
