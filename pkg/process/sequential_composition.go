package process

import (
	"fmt"

	"github.com/aretw0/tracery/pkg/event"
)

// Operational semantics for P ; Q
//
//        P -a→ P'
// 1)  ────────────── a ≠ ✔
//      P;Q -a→ P';Q
//
//     ∃ P' • P -✔→ P'
// 2) ─────────────────
//       P;Q -τ→ Q

// sequentialCursor hides P's ✔ as a τ that hands control to Q. A τ is
// therefore ambiguous: it could be P performing its own τ, or P terminating
// and Q beginning. The cursor keeps P's state (while still plausible) plus one
// Q cursor per point where the switch-over might have happened; paths that
// cannot perform a later event are eliminated.
type sequentialCursor[E event.Event[E]] struct {
	// qRoot is Q's root state; a fresh copy is branched off every time a τ
	// might have been P's hidden ✔.
	qRoot Cursor[E]
	// p holds P's current state, or nil once behaving like P is impossible.
	p Cursor[E]
	// qs holds the live Q paths; entries are nil once retroactively ruled out.
	qs []Cursor[E]
}

func newSequentialCursor[E event.Event[E]](p, q *CSP[E]) *sequentialCursor[E] {
	return &sequentialCursor[E]{
		qRoot: q.Root(),
		p:     p.Root(),
	}
}

// pAlphabet reports P's initials with ✔ replaced by τ; ✔ itself is never
// visible on the composition.
type pAlphabet[E event.Event[E]] struct {
	p event.Alphabet[E]
}

func (a pAlphabet[E]) Contains(e E) bool {
	switch e {
	case event.Tick[E]():
		return false
	case event.Tau[E]():
		return a.p.Contains(e) || a.p.Contains(event.Tick[E]())
	default:
		return a.p.Contains(e)
	}
}

func (c *sequentialCursor[E]) Initials() event.Alphabet[E] {
	var union event.Union[E]
	if c.p != nil {
		union = append(union, pAlphabet[E]{p: c.p.Initials()})
	}
	for _, q := range c.qs {
		if q != nil {
			union = append(union, q.Initials())
		}
	}
	return union
}

func (c *sequentialCursor[E]) Events() []E {
	var events []E
	if c.p != nil {
		tick := event.Tick[E]()
		for _, e := range c.p.Events() {
			if e == tick {
				e = event.Tau[E]()
			}
			events = append(events, e)
		}
	}
	for _, q := range c.qs {
		if q != nil {
			events = append(events, q.Events()...)
		}
	}
	return events
}

func (c *sequentialCursor[E]) pCanPerform(e E) bool {
	if c.p == nil {
		return false
	}
	switch e {
	case event.Tick[E]():
		return false
	case event.Tau[E]():
		return c.p.CanPerform(e) || c.p.CanPerform(event.Tick[E]())
	default:
		return c.p.CanPerform(e)
	}
}

func (c *sequentialCursor[E]) qCanPerform(e E) bool {
	for _, q := range c.qs {
		if q != nil && q.CanPerform(e) {
			return true
		}
	}
	return false
}

func (c *sequentialCursor[E]) CanPerform(e E) bool {
	return c.pCanPerform(e) || c.qCanPerform(e)
}

func (c *sequentialCursor[E]) pPerform(e E) {
	if c.p == nil || e == event.Tick[E]() {
		return
	}
	// If P can perform a ✔, this τ might have been it: branch off a fresh Q
	// alongside P's own advance.
	if e == event.Tau[E]() && c.p.CanPerform(event.Tick[E]()) {
		c.qs = append(c.qs, c.qRoot.Clone())
	}
	if c.p.CanPerform(e) {
		c.p.Perform(e)
	} else {
		// P could not perform the event, so we could not have still been
		// behaving like P at this point.
		c.p = nil
	}
}

func (c *sequentialCursor[E]) qPerform(e E) {
	for i, q := range c.qs {
		if q == nil {
			continue
		}
		if q.CanPerform(e) {
			q.Perform(e)
		} else {
			c.qs[i] = nil
		}
	}
}

func (c *sequentialCursor[E]) Perform(e E) {
	if !c.CanPerform(e) {
		panic(fmt.Sprintf("process: sequential composition cannot perform %v", e))
	}
	// Existing Q paths move first so the Q branched off by this very τ is not
	// asked to perform it.
	c.qPerform(e)
	c.pPerform(e)
}

func (c *sequentialCursor[E]) Clone() Cursor[E] {
	clone := &sequentialCursor[E]{qRoot: c.qRoot.Clone()}
	if c.p != nil {
		clone.p = c.p.Clone()
	}
	if c.qs != nil {
		clone.qs = make([]Cursor[E], len(c.qs))
		for i, q := range c.qs {
			if q != nil {
				clone.qs[i] = q.Clone()
			}
		}
	}
	return clone
}

func (c *sequentialCursor[E]) Equal(other Cursor[E]) bool {
	o, ok := other.(*sequentialCursor[E])
	if !ok || !c.qRoot.Equal(o.qRoot) || len(c.qs) != len(o.qs) {
		return false
	}
	if (c.p == nil) != (o.p == nil) {
		return false
	}
	if c.p != nil && !c.p.Equal(o.p) {
		return false
	}
	for i, q := range c.qs {
		if (q == nil) != (o.qs[i] == nil) {
			return false
		}
		if q != nil && !q.Equal(o.qs[i]) {
			return false
		}
	}
	return true
}
