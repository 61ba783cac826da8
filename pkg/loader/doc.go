/*
Package loader builds process terms from YAML documents.

A document names a library of process definitions plus the one to treat as the
entry point. Definitions may reference each other by name, which is how
repeated subtrees are shared; references must be acyclic.

	root: machine
	definitions:
	  machine:
	    prefix:
	      event: coin
	      then:
	        external:
	          - prefix: {event: tea, then: {stop: true}}
	          - prefix: {event: coffee, then: {ref: refund}}
	  refund:
	    prefix: {event: refund, then: {skip: true}}

Each node sets exactly one operator key: stop, skip, ref, prefix, internal,
external, or sequence.
*/
package loader
