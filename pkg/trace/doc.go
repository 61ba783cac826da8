/*
Package trace computes behavioral summaries of processes: maximal finite
traces, trace satisfaction, and the full transition relation.

A trace is a finite sequence of events a process can perform from its root.
Hidden τ steps are walked through but never recorded; ✔ is recorded, so the
traces of Skip are {⟨✔⟩}. Enumeration clones cursors at every branch point and
detects cycles by comparing the current cursor against the states already on
the exploration path.
*/
package trace
