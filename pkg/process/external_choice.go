package process

import (
	"fmt"

	"github.com/aretw0/tracery/pkg/event"
)

// Operational semantics for □ Ps
//
//                  P -τ→ P'
//  1)  ────────────────────────────── P ∈ Ps
//       □ Ps -τ→ □ (Ps ∖ {P} ∪ {P'})
//
//         P -a→ P'
//  2)  ───────────── P ∈ Ps, a ≠ τ
//       □ Ps -a→ P'

// externalChoiceCursor keeps the choice open while branches take internal τ
// steps. Each τ is performed piecewise: only one branch moves per possible
// world, since the environment cannot tell which branch silently advanced, and
// worlds that cannot account for the τ history are pruned retroactively. The
// first visible event resolves the choice; every branch able to perform it
// survives (the visible event may itself introduce nondeterminism), all others
// are eliminated.
type externalChoiceCursor[E event.Event[E]] struct {
	resolved bool
	poss     *possibilities[E]
}

func newExternalChoiceCursor[E event.Event[E]](children []*CSP[E]) *externalChoiceCursor[E] {
	subcursors := make([]Cursor[E], len(children))
	for i, child := range children {
		subcursors[i] = child.Root()
	}
	return &externalChoiceCursor[E]{
		poss: newPossibilities(subcursors),
	}
}

// Initials aggregates every still-activated branch, resolved or not: an
// external choice is always willing to perform whatever any live branch can.
func (c *externalChoiceCursor[E]) Initials() event.Alphabet[E] {
	return c.poss.initials()
}

func (c *externalChoiceCursor[E]) Events() []E {
	return c.poss.events()
}

func (c *externalChoiceCursor[E]) CanPerform(e E) bool {
	return c.poss.canPerform(e)
}

func (c *externalChoiceCursor[E]) Perform(e E) {
	if !c.poss.canPerform(e) {
		panic(fmt.Sprintf("process: external choice cannot perform %v", e))
	}
	if c.resolved {
		c.poss.performAll(e)
		return
	}
	if e == event.Tau[E]() {
		// τ does not resolve the choice; branches advance independently.
		c.poss.performPiecewise(e)
		return
	}
	// A visible event resolves the choice. Every branch that can perform it
	// does so simultaneously; the rest are eliminated.
	c.poss.performAll(e)
	c.resolved = true
}

func (c *externalChoiceCursor[E]) Clone() Cursor[E] {
	return &externalChoiceCursor[E]{
		resolved: c.resolved,
		poss:     c.poss.clone(),
	}
}

func (c *externalChoiceCursor[E]) Equal(other Cursor[E]) bool {
	o, ok := other.(*externalChoiceCursor[E])
	return ok && c.resolved == o.resolved && c.poss.equal(o.poss)
}
