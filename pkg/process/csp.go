package process

import (
	"fmt"
	"strings"

	"github.com/aretw0/tracery/pkg/event"
)

type opKind int

const (
	opStop opKind = iota
	opSkip
	opPrefix
	opInternalChoice
	opExternalChoice
	opSequentialComposition
)

// CSP is a process term built from the core operators. Terms are immutable
// once constructed and safe to share between compositions; Root produces an
// independent cursor each time it is called.
type CSP[E event.Event[E]] struct {
	kind     opKind
	initial  E
	children []*CSP[E]
}

// Stop is the process that performs no events.
func Stop[E event.Event[E]]() *CSP[E] {
	return &CSP[E]{kind: opStop}
}

// Skip is the process that performs ✔ and then becomes Stop.
func Skip[E event.Event[E]]() *CSP[E] {
	return &CSP[E]{kind: opSkip}
}

// Prefix constructs the process a → P, which performs a and then behaves like
// P. Panics if a is τ or ✔; hidden events cannot be prefixed.
func Prefix[E event.Event[E]](initial E, after *CSP[E]) *CSP[E] {
	if event.IsHidden(initial) {
		panic(fmt.Sprintf("process: cannot prefix hidden event %v", initial))
	}
	return &CSP[E]{kind: opPrefix, initial: initial, children: []*CSP[E]{after}}
}

// InternalChoice constructs P ⊓ Q, which behaves like P or Q with the
// environment having no control over which.
func InternalChoice[E event.Event[E]](p, q *CSP[E]) *CSP[E] {
	return &CSP[E]{kind: opInternalChoice, children: []*CSP[E]{p, q}}
}

// ReplicatedInternalChoice constructs ⊓ Ps over a non-empty collection.
// Panics if ps is empty: the empty internal choice is not a defined process,
// since the choice must resolve to one of its members.
func ReplicatedInternalChoice[E event.Event[E]](ps []*CSP[E]) *CSP[E] {
	if len(ps) == 0 {
		panic("process: cannot perform internal choice over no processes")
	}
	return &CSP[E]{kind: opInternalChoice, children: append([]*CSP[E](nil), ps...)}
}

// ExternalChoice constructs P □ Q, which behaves like P or Q with the
// environment choosing via the first visible event.
func ExternalChoice[E event.Event[E]](p, q *CSP[E]) *CSP[E] {
	return &CSP[E]{kind: opExternalChoice, children: []*CSP[E]{p, q}}
}

// ReplicatedExternalChoice constructs □ Ps. The empty external choice is
// equivalent to Stop: there is nothing for the environment to choose.
func ReplicatedExternalChoice[E event.Event[E]](ps []*CSP[E]) *CSP[E] {
	return &CSP[E]{kind: opExternalChoice, children: append([]*CSP[E](nil), ps...)}
}

// SequentialComposition constructs P ; Q, which behaves like P until it
// terminates and then behaves like Q. P's ✔ shows up as a τ.
func SequentialComposition[E event.Event[E]](p, q *CSP[E]) *CSP[E] {
	return &CSP[E]{kind: opSequentialComposition, children: []*CSP[E]{p, q}}
}

// Root returns a fresh cursor positioned before any event of the process.
func (c *CSP[E]) Root() Cursor[E] {
	switch c.kind {
	case opStop:
		return stopCursor[E]{}
	case opSkip:
		return &skipCursor[E]{}
	case opPrefix:
		return &prefixCursor[E]{initial: c.initial, after: c.children[0].Root()}
	case opInternalChoice:
		return newInternalChoiceCursor(c.children)
	case opExternalChoice:
		return newExternalChoiceCursor(c.children)
	case opSequentialComposition:
		return newSequentialCursor(c.children[0], c.children[1])
	default:
		panic(fmt.Sprintf("process: unknown operator %d", c.kind))
	}
}

// Initials returns the set of events the term can perform immediately, as a
// slice without duplicates. Hidden events are included: choice operators
// surface their τs, Skip surfaces ✔, and a sequential composition reports its
// component's ✔ as τ.
func (c *CSP[E]) Initials() []E {
	var initials []E
	seen := make(map[E]struct{})
	add := func(e E) {
		if _, ok := seen[e]; !ok {
			seen[e] = struct{}{}
			initials = append(initials, e)
		}
	}
	switch c.kind {
	case opStop:
	case opSkip:
		add(event.Tick[E]())
	case opPrefix:
		add(c.initial)
	case opInternalChoice:
		add(event.Tau[E]())
	case opExternalChoice:
		for _, child := range c.children {
			for _, e := range child.Initials() {
				add(e)
			}
		}
	case opSequentialComposition:
		tick := event.Tick[E]()
		for _, e := range c.children[0].Initials() {
			if e == tick {
				e = event.Tau[E]()
			}
			add(e)
		}
	}
	return initials
}

// Afters returns the terms the process can become after performing e, one per
// distinct transition. An event outside Initials yields no afters.
func (c *CSP[E]) Afters(e E) []*CSP[E] {
	switch c.kind {
	case opStop:
		return nil

	case opSkip:
		if e == event.Tick[E]() {
			return []*CSP[E]{Stop[E]()}
		}
		return nil

	case opPrefix:
		if e == c.initial {
			return []*CSP[E]{c.children[0]}
		}
		return nil

	case opInternalChoice:
		if e == event.Tau[E]() {
			return append([]*CSP[E](nil), c.children...)
		}
		return nil

	case opExternalChoice:
		var afters []*CSP[E]
		for i, child := range c.children {
			for _, after := range child.Afters(e) {
				if e == event.Tau[E]() {
					// A τ does not resolve the choice: the child that
					// performed it advances in place, everything else stays.
					tauChildren := append([]*CSP[E](nil), c.children...)
					tauChildren[i] = after
					afters = append(afters, ReplicatedExternalChoice(tauChildren))
				} else {
					afters = append(afters, after)
				}
			}
		}
		return afters

	case opSequentialComposition:
		p, q := c.children[0], c.children[1]
		switch e {
		case event.Tick[E]():
			return nil
		case event.Tau[E]():
			var afters []*CSP[E]
			for _, after := range p.Afters(e) {
				afters = append(afters, SequentialComposition(after, q))
			}
			// P terminating is hidden: if P can perform ✔, the composition
			// performs τ and becomes Q.
			if len(p.Afters(event.Tick[E]())) > 0 {
				afters = append(afters, q)
			}
			return afters
		default:
			var afters []*CSP[E]
			for _, after := range p.Afters(e) {
				afters = append(afters, SequentialComposition(after, q))
			}
			return afters
		}

	default:
		panic(fmt.Sprintf("process: unknown operator %d", c.kind))
	}
}

// Equal reports structural equality of two terms.
func (c *CSP[E]) Equal(other *CSP[E]) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	if c.kind != other.kind || c.initial != other.initial || len(c.children) != len(other.children) {
		return false
	}
	for i, child := range c.children {
		if !child.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

func (c *CSP[E]) String() string {
	switch c.kind {
	case opStop:
		return "Stop"
	case opSkip:
		return "Skip"
	case opPrefix:
		return fmt.Sprintf("%v → %v", c.initial, c.children[0])
	case opInternalChoice:
		return c.formatChoice("⊓")
	case opExternalChoice:
		return c.formatChoice("□")
	case opSequentialComposition:
		return fmt.Sprintf("%v ; %v", c.children[0], c.children[1])
	default:
		panic(fmt.Sprintf("process: unknown operator %d", c.kind))
	}
}

func (c *CSP[E]) formatChoice(op string) string {
	if len(c.children) == 2 {
		return fmt.Sprintf("%v %s %v", c.children[0], op, c.children[1])
	}
	var sb strings.Builder
	sb.WriteString(op)
	sb.WriteString(" {")
	for i, child := range c.children {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", child)
	}
	sb.WriteString("}")
	return sb.String()
}
