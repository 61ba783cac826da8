/*
Package event defines the contract tracery places on event types, the Alphabet
abstraction for sets of events, and two ready-made alphabets (Name, Numbered).

An event type is an opaque comparable value. Two distinguished values are
reserved in every alphabet: τ (tau), the invisible event that expresses
nondeterminism, and ✔ (tick), the invisible event that signals successful
termination. The engine constructs them through the Tau and Tick methods, which
must be callable on the zero value of the event type.
*/
package event
