package process

import (
	"fmt"

	"github.com/aretw0/tracery/pkg/event"
)

// stopCursor is the terminal state: no event is ever willing.
type stopCursor[E event.Event[E]] struct{}

func (stopCursor[E]) Initials() event.Alphabet[E] { return event.Empty[E]{} }
func (stopCursor[E]) Events() []E                 { return nil }
func (stopCursor[E]) CanPerform(E) bool           { return false }

func (stopCursor[E]) Perform(e E) {
	panic(fmt.Sprintf("process: Stop cannot perform %v", e))
}

func (c stopCursor[E]) Clone() Cursor[E] { return stopCursor[E]{} }

func (stopCursor[E]) Equal(other Cursor[E]) bool {
	_, ok := other.(stopCursor[E])
	return ok
}

// skipCursor performs ✔ once and then behaves as Stop.
type skipCursor[E event.Event[E]] struct {
	ticked bool
}

func (c *skipCursor[E]) Initials() event.Alphabet[E] {
	if c.ticked {
		return event.Empty[E]{}
	}
	return event.Just[E]{Event: event.Tick[E]()}
}

func (c *skipCursor[E]) Events() []E {
	if c.ticked {
		return nil
	}
	return []E{event.Tick[E]()}
}

func (c *skipCursor[E]) CanPerform(e E) bool {
	return !c.ticked && e == event.Tick[E]()
}

func (c *skipCursor[E]) Perform(e E) {
	if !c.CanPerform(e) {
		panic(fmt.Sprintf("process: Skip cannot perform %v", e))
	}
	c.ticked = true
}

func (c *skipCursor[E]) Clone() Cursor[E] {
	return &skipCursor[E]{ticked: c.ticked}
}

func (c *skipCursor[E]) Equal(other Cursor[E]) bool {
	o, ok := other.(*skipCursor[E])
	return ok && c.ticked == o.ticked
}
