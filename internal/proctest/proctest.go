// Package proctest generates random process terms for property tests. Terms
// use numbered events and never contain τ or ✔ as prefix initials, matching
// the contract of the combinators.
package proctest

import (
	"math/rand"

	"github.com/aretw0/tracery/pkg/event"
	"github.com/aretw0/tracery/pkg/process"
)

// maxEvent bounds the alphabet so random terms share events often enough for
// choices to overlap.
const maxEvent = 8

// Event draws a random visible event.
func Event(r *rand.Rand) event.Numbered {
	return event.Number(uint16(r.Intn(maxEvent)))
}

// Trace draws a random sequence of visible events of length up to n.
func Trace(r *rand.Rand, n int) []event.Numbered {
	trace := make([]event.Numbered, r.Intn(n+1))
	for i := range trace {
		trace[i] = Event(r)
	}
	return trace
}

// Term draws a random process term of at most the given operator depth.
func Term(r *rand.Rand, depth int) *process.CSP[event.Numbered] {
	if depth <= 0 {
		return leaf(r)
	}
	switch r.Intn(6) {
	case 0:
		return leaf(r)
	case 1:
		return process.Prefix(Event(r), Term(r, depth-1))
	case 2:
		return process.InternalChoice(Term(r, depth-1), Term(r, depth-1))
	case 3:
		return process.ExternalChoice(Term(r, depth-1), Term(r, depth-1))
	case 4:
		return process.ReplicatedExternalChoice(terms(r, depth-1))
	default:
		return process.SequentialComposition(Term(r, depth-1), Term(r, depth-1))
	}
}

func terms(r *rand.Rand, depth int) []*process.CSP[event.Numbered] {
	children := make([]*process.CSP[event.Numbered], r.Intn(4))
	for i := range children {
		children[i] = Term(r, depth)
	}
	return children
}

func leaf(r *rand.Rand) *process.CSP[event.Numbered] {
	if r.Intn(2) == 0 {
		return process.Stop[event.Numbered]()
	}
	return process.Skip[event.Numbered]()
}
