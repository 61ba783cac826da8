package process

import (
	"fmt"

	"github.com/aretw0/tracery/pkg/event"
)

// Operational semantics for ⊓ Ps
//
// 1) ──────────── P ∈ Ps
//     ⊓ Ps -τ→ P

type internalChoiceState uint8

const (
	beforeTau internalChoiceState = iota
	afterTau
)

// internalChoiceCursor resolves irrevocably and invisibly: the only initial
// event is τ, and after it the cursor behaves as the aggregate of every branch
// that is still a possible result of the choice. Visible events rule out
// branches that cannot perform them, permanently.
type internalChoiceCursor[E event.Event[E]] struct {
	state internalChoiceState
	poss  *possibilities[E]
}

func newInternalChoiceCursor[E event.Event[E]](children []*CSP[E]) *internalChoiceCursor[E] {
	subcursors := make([]Cursor[E], len(children))
	for i, child := range children {
		subcursors[i] = child.Root()
	}
	return &internalChoiceCursor[E]{
		state: beforeTau,
		poss:  newDisjointPossibilities(subcursors),
	}
}

func (c *internalChoiceCursor[E]) Initials() event.Alphabet[E] {
	if c.state == beforeTau {
		return event.Just[E]{Event: event.Tau[E]()}
	}
	return c.poss.initials()
}

func (c *internalChoiceCursor[E]) Events() []E {
	if c.state == beforeTau {
		return []E{event.Tau[E]()}
	}
	return c.poss.events()
}

func (c *internalChoiceCursor[E]) CanPerform(e E) bool {
	if c.state == beforeTau {
		return e == event.Tau[E]()
	}
	return c.poss.canPerform(e)
}

func (c *internalChoiceCursor[E]) Perform(e E) {
	if c.state == afterTau {
		if !c.poss.canPerform(e) {
			panic(fmt.Sprintf("process: internal choice cannot perform %v", e))
		}
		c.poss.performAll(e)
		return
	}
	if e != event.Tau[E]() {
		panic(fmt.Sprintf("process: internal choice cannot perform %v", e))
	}
	c.state = afterTau
}

func (c *internalChoiceCursor[E]) Clone() Cursor[E] {
	return &internalChoiceCursor[E]{
		state: c.state,
		poss:  c.poss.clone(),
	}
}

func (c *internalChoiceCursor[E]) Equal(other Cursor[E]) bool {
	o, ok := other.(*internalChoiceCursor[E])
	return ok && c.state == o.state && c.poss.equal(o.poss)
}
