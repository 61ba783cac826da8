package process

import (
	"slices"

	"github.com/aretw0/tracery/pkg/event"
)

// possibility names the subcursors (by index into the pool) that are live in
// one possible current state.
type possibility []int

// possibilities tracks the set of possible current states of a composite
// process, where each possible state is defined by the states of some
// subprocesses. Both choice operators use it to account for the worlds an
// external observer cannot tell apart while hidden events resolve.
//
// The pool of subcursors only grows; subcursors that can no longer be part of
// any real world are deactivated, never removed, so possibility indices stay
// stable.
type possibilities[E event.Event[E]] struct {
	subcursors []Cursor[E]
	activated  []bool
	worlds     []possibility
}

// newPossibilities starts with a single possibility containing every
// subcursor: all subprocesses are live in one shared world.
func newPossibilities[E event.Event[E]](subcursors []Cursor[E]) *possibilities[E] {
	world := make(possibility, len(subcursors))
	for i := range world {
		world[i] = i
	}
	return &possibilities[E]{
		subcursors: subcursors,
		activated:  allActivated(len(subcursors)),
		worlds:     []possibility{world},
	}
}

// newDisjointPossibilities starts with one singleton possibility per
// subcursor: the worlds are mutually exclusive candidates, of which exactly
// one is real.
func newDisjointPossibilities[E event.Event[E]](subcursors []Cursor[E]) *possibilities[E] {
	worlds := make([]possibility, len(subcursors))
	for i := range worlds {
		worlds[i] = possibility{i}
	}
	return &possibilities[E]{
		subcursors: subcursors,
		activated:  allActivated(len(subcursors)),
		worlds:     worlds,
	}
}

func allActivated(n int) []bool {
	activated := make([]bool, n)
	for i := range activated {
		activated[i] = true
	}
	return activated
}

// eachActivated visits the still-activated subcursors.
func (p *possibilities[E]) eachActivated(fn func(c Cursor[E])) {
	for i, c := range p.subcursors {
		if p.activated[i] {
			fn(c)
		}
	}
}

// events enumerates every event that any subprocess can perform in any
// possible current state. The engine does not yet know which possibility is
// real, so the aggregate is the honest answer.
func (p *possibilities[E]) events() []E {
	var events []E
	p.eachActivated(func(c Cursor[E]) {
		events = append(events, c.Events()...)
	})
	return events
}

func (p *possibilities[E]) initials() event.Alphabet[E] {
	var union event.Union[E]
	p.eachActivated(func(c Cursor[E]) {
		union = append(union, c.Initials())
	})
	return union
}

// canPerform reports whether any subprocess in any possible current state can
// perform the event.
func (p *possibilities[E]) canPerform(e E) bool {
	for i, c := range p.subcursors {
		if p.activated[i] && c.CanPerform(e) {
			return true
		}
	}
	return false
}

// performAll has every activated subcursor attempt the event independently.
// Subcursors that cannot perform it are deactivated; all that can are advanced
// to their after-state. Used when an event, once chosen, is performed
// synchronously by all still-plausible worlds.
func (p *possibilities[E]) performAll(e E) {
	for i := range p.subcursors {
		if !p.activated[i] {
			continue
		}
		if p.subcursors[i].CanPerform(e) {
			p.subcursors[i].Perform(e)
		} else {
			p.activated[i] = false
		}
	}
}

// performPiecewise tries the event in each possible current state, advancing
// only one subprocess per resulting world. Possibilities in which more than
// one member is eligible are split into one branch per eligible member,
// because an external observer cannot tell which subprocess silently moved.
// Worlds whose members cannot perform the event at all are dropped.
//
// Splitting is deliberately not clever enough to dedup: several interleavings
// reaching the same observable state yield duplicate worlds. Callers that need
// a true set must dedup separately.
func (p *possibilities[E]) performPiecewise(e E) {
	subcursorCount := len(p.subcursors)

	// Find all of the still-activated subcursors that can perform the event.
	eligible := make([]bool, subcursorCount)
	for i := 0; i < subcursorCount; i++ {
		if p.activated[i] && p.subcursors[i].CanPerform(e) {
			eligible[i] = true
		}
	}

	// For each possible current state, count how many of its members can
	// perform the event.
	eligiblePerWorld := make([]int, len(p.worlds))
	for wi, world := range p.worlds {
		for _, idx := range world {
			if eligible[idx] {
				eligiblePerWorld[wi]++
			}
		}
	}

	// A world with more than one eligible member is splittable, and so is
	// every eligible subcursor appearing in it.
	splittable := make([]bool, subcursorCount)
	for wi, world := range p.worlds {
		if eligiblePerWorld[wi] <= 1 {
			continue
		}
		for _, idx := range world {
			if eligible[idx] {
				splittable[idx] = true
			}
		}
	}

	// Let each eligible subcursor perform the event. Splittable subcursors
	// must keep their before-state around (splittable worlds need exactly one
	// member advanced at a time), so the after-state is pushed as a fresh
	// subcursor; non-splittable ones advance in place.
	eligibleAfters := make([]int, subcursorCount)
	for idx := 0; idx < subcursorCount; idx++ {
		if !eligible[idx] {
			continue
		}
		if splittable[idx] {
			after := p.subcursors[idx].Clone()
			after.Perform(e)
			eligibleAfters[idx] = len(p.subcursors)
			p.subcursors = append(p.subcursors, after)
			p.activated = append(p.activated, true)
			continue
		}
		p.subcursors[idx].Perform(e)
		eligibleAfters[idx] = idx
	}

	// Rebuild the worlds: each surviving world emits one copy per eligible
	// member, with that member's index swapped for its after-state index. For
	// non-splittable worlds the member was advanced in place, so the "swap"
	// points at the same index and the loop body runs exactly once.
	var next []possibility
	for wi, world := range p.worlds {
		if eligiblePerWorld[wi] == 0 {
			// No member can perform the event: no longer a valid possibility.
			continue
		}
		for pos, idx := range world {
			if !eligible[idx] {
				continue
			}
			forked := slices.Clone(world)
			forked[pos] = eligibleAfters[idx]
			next = append(next, forked)
		}
	}
	p.worlds = next
}

func (p *possibilities[E]) clone() *possibilities[E] {
	subcursors := make([]Cursor[E], len(p.subcursors))
	for i, c := range p.subcursors {
		subcursors[i] = c.Clone()
	}
	worlds := make([]possibility, len(p.worlds))
	for i, world := range p.worlds {
		worlds[i] = slices.Clone(world)
	}
	return &possibilities[E]{
		subcursors: subcursors,
		activated:  slices.Clone(p.activated),
		worlds:     worlds,
	}
}

func (p *possibilities[E]) equal(other *possibilities[E]) bool {
	if len(p.subcursors) != len(other.subcursors) || len(p.worlds) != len(other.worlds) {
		return false
	}
	if !slices.Equal(p.activated, other.activated) {
		return false
	}
	for i, c := range p.subcursors {
		if !c.Equal(other.subcursors[i]) {
			return false
		}
	}
	for i, world := range p.worlds {
		if !slices.Equal(world, other.worlds[i]) {
			return false
		}
	}
	return true
}
