package trace

import (
	"github.com/aretw0/tracery/pkg/event"
	"github.com/aretw0/tracery/pkg/process"
)

// Transitions materializes the one-step transition relation of a term: each
// initial event mapped to the terms the process can become by performing it.
// An event may map to several terms when distinct branches offer it.
func Transitions[E event.Event[E]](p *process.CSP[E]) map[E][]*process.CSP[E] {
	transitions := make(map[E][]*process.CSP[E])
	for _, e := range p.Initials() {
		transitions[e] = p.Afters(e)
	}
	return transitions
}

// Behavior returns the visible events a term can perform before anything is
// observed, chasing τ steps to the processes they can silently become. The ✔
// of a terminating branch counts as visible.
func Behavior[E event.Event[E]](p *process.CSP[E]) map[E]struct{} {
	behavior := make(map[E]struct{})
	tau := event.Tau[E]()
	var visit func(p *process.CSP[E], path []*process.CSP[E])
	visit = func(p *process.CSP[E], path []*process.CSP[E]) {
		for _, prev := range path {
			if prev.Equal(p) {
				return
			}
		}
		path = append(path, p)
		for _, e := range p.Initials() {
			if e == tau {
				for _, after := range p.Afters(e) {
					visit(after, path)
				}
				continue
			}
			behavior[e] = struct{}{}
		}
	}
	visit(p, nil)
	return behavior
}

// RefinedBy reports whether impl trace-refines spec: every trace of impl is
// also a trace of spec. Both processes must have finite maximal trace sets,
// which the cycle cutting in MaximalFiniteTraces guarantees.
func RefinedBy[E event.Event[E]](spec, impl *process.CSP[E]) bool {
	specTraces := MaximalFiniteTraces[E](spec)
	for _, trace := range MaximalFiniteTraces[E](impl).Traces() {
		if !specTraces.HasPrefix(trace) {
			return false
		}
	}
	return true
}
