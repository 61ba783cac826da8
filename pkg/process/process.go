package process

import (
	"github.com/aretw0/tracery/pkg/event"
)

// Process is anything that can hand out a root cursor. A process is defined by
// what events it is willing and able to communicate, and when.
type Process[E event.Event[E]] interface {
	// Root returns the cursor describing the process's starting state.
	Root() Cursor[E]
}

// Cursor tracks the current state of a process: which events it is willing to
// perform now, and how it advances when one of them is performed.
type Cursor[E event.Event[E]] interface {
	// Initials returns the alphabet of events the process is willing to
	// perform in its current state, hidden events included. The invariant
	// Initials().Contains(e) == CanPerform(e) holds for every e.
	Initials() event.Alphabet[E]

	// Events enumerates the willing events. The result represents a set but
	// may contain the same event more than once; callers that need a true set
	// must dedup.
	Events() []E

	// CanPerform reports whether the process is willing to perform event in
	// its current state.
	CanPerform(e E) bool

	// Perform advances the cursor past event. It panics if the process is not
	// willing to perform event in its current state.
	Perform(e E)

	// Clone returns an independent snapshot; mutating the clone never affects
	// the original.
	Clone() Cursor[E]

	// Equal reports whether two cursors denote the same state. The trace
	// engine's cycle detection keys on this.
	Equal(other Cursor[E]) bool
}

// After returns a clone of the cursor that has performed event, leaving the
// receiver untouched. It panics if the event is not currently performable.
func After[E event.Event[E]](c Cursor[E], e E) Cursor[E] {
	next := c.Clone()
	next.Perform(e)
	return next
}
