package process

import (
	"fmt"

	"github.com/aretw0/tracery/pkg/event"
)

// Operational semantics for a → P
//
// 1) ─────────────
//     a → P -a→ P

type prefixState uint8

const (
	beforeInitial prefixState = iota
	afterInitial
)

// prefixCursor offers its initial event once, then delegates entirely to the
// child cursor.
type prefixCursor[E event.Event[E]] struct {
	state   prefixState
	initial E
	after   Cursor[E]
}

func (c *prefixCursor[E]) Initials() event.Alphabet[E] {
	if c.state == beforeInitial {
		return event.Just[E]{Event: c.initial}
	}
	return c.after.Initials()
}

func (c *prefixCursor[E]) Events() []E {
	if c.state == beforeInitial {
		return []E{c.initial}
	}
	return c.after.Events()
}

func (c *prefixCursor[E]) CanPerform(e E) bool {
	if c.state == beforeInitial {
		return e == c.initial
	}
	return c.after.CanPerform(e)
}

func (c *prefixCursor[E]) Perform(e E) {
	if c.state == afterInitial {
		c.after.Perform(e)
		return
	}
	if e != c.initial {
		panic(fmt.Sprintf("process: prefix cannot perform %v", e))
	}
	c.state = afterInitial
}

func (c *prefixCursor[E]) Clone() Cursor[E] {
	return &prefixCursor[E]{
		state:   c.state,
		initial: c.initial,
		after:   c.after.Clone(),
	}
}

func (c *prefixCursor[E]) Equal(other Cursor[E]) bool {
	o, ok := other.(*prefixCursor[E])
	return ok && c.state == o.state && c.initial == o.initial && c.after.Equal(o.after)
}
