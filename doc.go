/*
Package tracery is an engine for building and executing CSP (Communicating
Sequential Processes) algebra terms: primitive processes and composition
operators together with an operational-semantics interpreter that enumerates
the events a process can perform, advances its state, and computes trace-based
behavioral summaries.

# Concept

Tracery treats a concurrent system as an immutable process term built from a
small set of operators: Stop, Skip, prefix (a → P), internal choice (P ⊓ Q),
external choice (P □ Q), and sequential composition (P ; Q). A term never
changes; traversal happens through cursors, mutable snapshots that track what
the process can do right now. The trace engine drives cursors exhaustively,
with cycle detection, to compute finite behavioral summaries.

# Key Features

  - Operational Semantics: hidden τ and ✔ events modeled faithfully, including
    the piecewise τ-interleaving of unresolved external choices.
  - Possible-Worlds Tracking: unresolved nondeterminism is carried as a set of
    candidate subprocess states, pruned retroactively as events rule worlds out.
  - Trace Semantics: maximal finite traces, trace satisfaction, and the full
    transition relation of a term.
  - Pluggable Alphabets: any comparable event type works, as long as it can
    produce its own τ and ✔.

# Usage

Build a term with the combinators in pkg/process, then hand it to an Explorer:

	package main

	import (
		"fmt"

		"github.com/aretw0/tracery"
		"github.com/aretw0/tracery/pkg/event"
		"github.com/aretw0/tracery/pkg/process"
	)

	func main() {
		coin := event.Named("coin")
		tea := event.Named("tea")
		coffee := event.Named("coffee")

		// coin → (tea → Stop □ coffee → Stop)
		machine := process.Prefix(coin, process.ExternalChoice(
			process.Prefix(tea, process.Stop[event.Name]()),
			process.Prefix(coffee, process.Stop[event.Name]()),
		))

		explorer := tracery.New[event.Name]()
		for _, trace := range explorer.MaximalTraces(machine).Traces() {
			fmt.Println(trace)
		}
	}
*/
package tracery
