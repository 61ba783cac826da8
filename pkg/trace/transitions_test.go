package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tracery/pkg/event"
	"github.com/aretw0/tracery/pkg/process"
	"github.com/aretw0/tracery/pkg/trace"
)

func TestTransitionsMaterializeRelation(t *testing.T) {
	a := event.Named("a")
	p := process.Prefix(a, process.Stop[event.Name]())
	q := process.Prefix(a, process.Skip[event.Name]())
	choice := process.ExternalChoice(p, q)

	transitions := trace.Transitions(choice)
	require.Len(t, transitions, 1)
	require.Len(t, transitions[a], 2)
	assert.True(t, transitions[a][0].Equal(process.Stop[event.Name]()))
	assert.True(t, transitions[a][1].Equal(process.Skip[event.Name]()))

	assert.Empty(t, trace.Transitions(process.Stop[event.Name]()))
}

func TestBehaviorChasesTaus(t *testing.T) {
	a := event.Named("a")
	b := event.Named("b")
	p := process.InternalChoice(
		process.Prefix(a, process.Stop[event.Name]()),
		process.Prefix(b, process.Stop[event.Name]()),
	)

	behavior := trace.Behavior(p)
	assert.Len(t, behavior, 2)
	assert.Contains(t, behavior, a)
	assert.Contains(t, behavior, b)

	tick := event.Tick[event.Name]()
	skipBehavior := trace.Behavior(process.Skip[event.Name]())
	assert.Len(t, skipBehavior, 1)
	assert.Contains(t, skipBehavior, tick)
}

func TestRefinedBy(t *testing.T) {
	a := event.Named("a")
	b := event.Named("b")
	spec := process.ExternalChoice(
		process.Prefix(a, process.Stop[event.Name]()),
		process.Prefix(b, process.Stop[event.Name]()),
	)
	impl := process.Prefix(a, process.Stop[event.Name]())

	// A process refines a spec that allows strictly more behavior.
	assert.True(t, trace.RefinedBy(spec, impl))
	assert.False(t, trace.RefinedBy(impl, spec))
	assert.True(t, trace.RefinedBy(spec, spec))

	// Stop refines everything: it has only the empty trace.
	assert.True(t, trace.RefinedBy(spec, process.Stop[event.Name]()))
}
