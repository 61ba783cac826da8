package process_test

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tracery/internal/proctest"
	"github.com/aretw0/tracery/pkg/event"
	"github.com/aretw0/tracery/pkg/process"
	"github.com/aretw0/tracery/pkg/trace"
)

func TestPrefix(t *testing.T) {
	a := name("a")
	b := name("b")
	p := process.Prefix(a, process.Prefix(b, process.Skip[event.Name]()))

	assert.Equal(t, []event.Name{a}, p.Initials())

	c := p.Root()
	require.True(t, c.CanPerform(a))
	assert.False(t, c.CanPerform(b))
	assert.Panics(t, func() { c.Clone().Perform(b) })

	c.Perform(a)
	assert.Equal(t, []event.Name{b}, c.Events())

	got := trace.MaximalFiniteTraces[event.Name](p)
	assert.True(t, got.Equal(traceSet([]event.Name{a, b, event.Tick[event.Name]()})))
}

func TestPrefixDelegatesAfterInitial(t *testing.T) {
	a := name("a")
	p := process.Prefix(a, process.Skip[event.Name]())

	c := p.Root()
	c.Perform(a)
	tick := event.Tick[event.Name]()
	require.True(t, c.CanPerform(tick))
	c.Perform(tick)
	assert.Empty(t, c.Events())
}

func TestPrefixPrependsToTraces(t *testing.T) {
	f := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		p := proctest.Term(r, 3)
		a := proctest.Event(r)

		want := trace.NewMaximalTraces[event.Numbered]()
		for _, tr := range trace.MaximalFiniteTraces[event.Numbered](p).Traces() {
			combined := append([]event.Numbered{a}, tr...)
			want.Insert(combined)
		}

		got := trace.MaximalFiniteTraces[event.Numbered](process.Prefix(a, p))
		return got.Equal(want)
	}
	require.NoError(t, quick.Check(f, nil))
}
