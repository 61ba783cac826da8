package tracery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tracery"
	"github.com/aretw0/tracery/pkg/event"
	"github.com/aretw0/tracery/pkg/process"
)

func TestExplorer_Integration(t *testing.T) {
	coin := event.Named("coin")
	tea := event.Named("tea")
	coffee := event.Named("coffee")

	machine := process.Prefix(coin, process.ExternalChoice(
		process.Prefix(tea, process.Stop[event.Name]()),
		process.Prefix(coffee, process.Skip[event.Name]()),
	))

	explorer := tracery.New[event.Name]()

	traces := explorer.MaximalTraces(machine)
	require.Equal(t, 2, traces.Len())
	assert.True(t, traces.Contains([]event.Name{coin, tea}))
	assert.True(t, traces.Contains([]event.Name{coin, coffee, event.Tick[event.Name]()}))

	assert.True(t, explorer.Satisfies(machine, []event.Name{coin}))
	assert.False(t, explorer.Satisfies(machine, []event.Name{tea}))

	transitions := explorer.Transitions(machine)
	require.Contains(t, transitions, coin)
	assert.Len(t, transitions[coin], 1)
}

func TestExplorer_WithMaxDepth(t *testing.T) {
	a := event.Named("a")
	b := event.Named("b")
	p := process.Prefix(a, process.Prefix(b, process.Skip[event.Name]()))

	explorer := tracery.New(tracery.WithMaxDepth[event.Name](1))

	traces := explorer.MaximalTraces(p)
	require.Equal(t, 1, traces.Len())
	assert.True(t, traces.Contains([]event.Name{a}))
}

func TestExplorer_WithHooks(t *testing.T) {
	a := event.Named("a")
	p := process.Prefix(a, process.Stop[event.Name]())

	var states, found int
	explorer := tracery.New(tracery.WithHooks(tracery.Hooks[event.Name]{
		OnState: func(depth int, trace []event.Name) { states++ },
		OnTrace: func(trace []event.Name) { found++ },
	}))

	explorer.MaximalTraces(p)
	assert.Equal(t, 2, states)
	assert.Equal(t, 1, found)
}

func TestExplorer_RefinedBy(t *testing.T) {
	a := event.Named("a")
	b := event.Named("b")

	spec := process.ExternalChoice(
		process.Prefix(a, process.Stop[event.Name]()),
		process.Prefix(b, process.Stop[event.Name]()),
	)
	impl := process.Prefix(a, process.Stop[event.Name]())

	explorer := tracery.New[event.Name]()
	assert.True(t, explorer.RefinedBy(spec, impl))
	assert.False(t, explorer.RefinedBy(impl, spec))
}
