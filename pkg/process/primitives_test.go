package process_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tracery/pkg/event"
	"github.com/aretw0/tracery/pkg/process"
	"github.com/aretw0/tracery/pkg/trace"
)

func TestStop(t *testing.T) {
	stop := process.Stop[event.Name]()

	assert.Empty(t, stop.Initials())
	c := stop.Root()
	assert.Empty(t, c.Events())
	assert.False(t, c.CanPerform(name("a")))
	assert.False(t, c.CanPerform(event.Tau[event.Name]()))
	assert.Panics(t, func() { c.Perform(name("a")) })

	got := trace.MaximalFiniteTraces[event.Name](stop)
	assert.True(t, got.Equal(traceSet[event.Name]([]event.Name{})))
}

func TestSkip(t *testing.T) {
	skip := process.Skip[event.Name]()
	tick := event.Tick[event.Name]()

	assert.Equal(t, []event.Name{tick}, skip.Initials())

	c := skip.Root()
	require.True(t, c.CanPerform(tick))
	assert.False(t, c.CanPerform(name("a")))
	c.Perform(tick)
	assert.Empty(t, c.Events())
	assert.False(t, c.CanPerform(tick))
	assert.Panics(t, func() { c.Perform(tick) })

	got := trace.MaximalFiniteTraces[event.Name](skip)
	assert.True(t, got.Equal(traceSet([]event.Name{tick})))
}

func TestSkipTermAfters(t *testing.T) {
	skip := process.Skip[event.Name]()
	afters := skip.Afters(event.Tick[event.Name]())
	require.Len(t, afters, 1)
	assert.True(t, afters[0].Equal(process.Stop[event.Name]()))
}
