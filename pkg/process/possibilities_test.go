package process

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tracery/pkg/event"
)

var poolEvent = event.Named("e")

// poolCursor is a two-state cursor for exercising the possibilities pool: it
// performs the one test event and is then exhausted.
type poolCursor struct {
	id   int
	done bool
}

func before(id int) *poolCursor { return &poolCursor{id: id} }
func after(id int) *poolCursor  { return &poolCursor{id: id, done: true} }

func (c *poolCursor) Initials() event.Alphabet[event.Name] {
	if c.done {
		return event.Empty[event.Name]{}
	}
	return event.Just[event.Name]{Event: poolEvent}
}

func (c *poolCursor) Events() []event.Name {
	if c.done {
		return nil
	}
	return []event.Name{poolEvent}
}

func (c *poolCursor) CanPerform(e event.Name) bool {
	return !c.done && e == poolEvent
}

func (c *poolCursor) Perform(e event.Name) {
	if !c.CanPerform(e) {
		panic(fmt.Sprintf("poolCursor %d cannot perform %v", c.id, e))
	}
	c.done = true
}

func (c *poolCursor) Clone() Cursor[event.Name] {
	clone := *c
	return &clone
}

func (c *poolCursor) Equal(other Cursor[event.Name]) bool {
	o, ok := other.(*poolCursor)
	return ok && *c == *o
}

func (c *poolCursor) String() string {
	if c.done {
		return fmt.Sprintf("after%d", c.id)
	}
	return fmt.Sprintf("before%d", c.id)
}

// snapshot renders each world as the states of its still-activated members.
func snapshot(p *possibilities[event.Name]) [][]string {
	worlds := make([][]string, 0, len(p.worlds))
	for _, world := range p.worlds {
		members := make([]string, 0, len(world))
		for _, idx := range world {
			if p.activated[idx] {
				members = append(members, fmt.Sprint(p.subcursors[idx]))
			}
		}
		worlds = append(worlds, members)
	}
	return worlds
}

func cursors(cs ...*poolCursor) []Cursor[event.Name] {
	out := make([]Cursor[event.Name], len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}

func requireCanPerform(t *testing.T, p *possibilities[event.Name]) {
	t.Helper()
	require.True(t, p.canPerform(poolEvent))
	require.Equal(t, []event.Name{poolEvent}, uniqueNames(p.events()))
}

func requireCannotPerform(t *testing.T, p *possibilities[event.Name]) {
	t.Helper()
	require.False(t, p.canPerform(poolEvent))
	require.Empty(t, p.events())
}

func uniqueNames(events []event.Name) []event.Name {
	seen := make(map[event.Name]struct{})
	var out []event.Name
	for _, e := range events {
		if _, ok := seen[e]; !ok {
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

func TestPerformPiecewiseEmpty(t *testing.T) {
	p := newPossibilities[event.Name](nil)
	requireCannotPerform(t, p)
}

func TestPerformPiecewiseOneBefore(t *testing.T) {
	p := newPossibilities(cursors(before(1)))
	requireCanPerform(t, p)

	p.performPiecewise(poolEvent)
	assert.Equal(t, [][]string{{"after1"}}, snapshot(p))
	requireCannotPerform(t, p)
}

func TestPerformPiecewiseOneAfter(t *testing.T) {
	p := newPossibilities(cursors(after(1)))
	requireCannotPerform(t, p)
}

func TestPerformPiecewiseTwoBefores(t *testing.T) {
	p := newPossibilities(cursors(before(1), before(2)))
	requireCanPerform(t, p)

	// Either member could have moved first, so the single shared world splits.
	p.performPiecewise(poolEvent)
	assert.ElementsMatch(t, [][]string{
		{"after1", "before2"},
		{"before1", "after2"},
	}, snapshot(p))

	// One of the subprocesses went first; now the other one can go.
	requireCanPerform(t, p)
	p.performPiecewise(poolEvent)

	// The fully-advanced world appears twice, once per ordering; duplicates
	// are preserved.
	assert.Equal(t, [][]string{
		{"after1", "after2"},
		{"after1", "after2"},
	}, snapshot(p))
	requireCannotPerform(t, p)
}

func TestPerformPiecewiseTwoAfters(t *testing.T) {
	p := newPossibilities(cursors(after(1), after(2)))
	requireCannotPerform(t, p)
}

func TestPerformPiecewiseOneOfEach(t *testing.T) {
	p := newPossibilities(cursors(after(1), before(2)))
	requireCanPerform(t, p)

	p.performPiecewise(poolEvent)
	assert.Equal(t, [][]string{{"after1", "after2"}}, snapshot(p))
	requireCannotPerform(t, p)
}

func TestPerformAllOneBefore(t *testing.T) {
	p := newPossibilities(cursors(before(1)))
	requireCanPerform(t, p)

	p.performAll(poolEvent)
	assert.Equal(t, [][]string{{"after1"}}, snapshot(p))
	requireCannotPerform(t, p)
}

func TestPerformAllTwoBefores(t *testing.T) {
	p := newPossibilities(cursors(before(1), before(2)))
	requireCanPerform(t, p)

	// Both members perform the event synchronously.
	p.performAll(poolEvent)
	assert.Equal(t, [][]string{{"after1", "after2"}}, snapshot(p))
	requireCannotPerform(t, p)
}

func TestPerformAllOneOfEach(t *testing.T) {
	p := newPossibilities(cursors(after(1), before(2)))
	requireCanPerform(t, p)

	// The exhausted member is deactivated, the other advances.
	p.performAll(poolEvent)
	assert.Equal(t, [][]string{{"after2"}}, snapshot(p))
	requireCannotPerform(t, p)
}

func TestDisjointWorldsAreSingletons(t *testing.T) {
	p := newDisjointPossibilities(cursors(before(1), before(2)))
	assert.Equal(t, [][]string{{"before1"}, {"before2"}}, snapshot(p))

	// Disjoint worlds advance independently under performAll.
	p.performAll(poolEvent)
	assert.Equal(t, [][]string{{"after1"}, {"after2"}}, snapshot(p))
}

func TestPossibilitiesCloneIsIndependent(t *testing.T) {
	p := newPossibilities(cursors(before(1), before(2)))
	clone := p.clone()
	require.True(t, p.equal(clone))

	clone.performPiecewise(poolEvent)
	assert.False(t, p.equal(clone))
	assert.Equal(t, [][]string{{"before1", "before2"}}, snapshot(p))
}
