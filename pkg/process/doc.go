/*
Package process implements the CSP process algebra: the primitive processes
Stop and Skip, the prefix (→), internal choice (⊓), external choice (□) and
sequential composition (;) operators, and the Process/Cursor protocol that
drives them.

A process is an immutable, structurally shared term built with the combinator
constructors. A cursor is the mutable traversal state of a process: it reports
the events the process is currently willing to perform and advances when one of
them is performed. Cursors are cloneable snapshots, which is what makes
branching enumeration possible.

Performing an event the cursor is not willing to perform is a programming
error, not a recoverable condition, and panics. Well-behaved callers check
CanPerform (or Initials) first.
*/
package process
