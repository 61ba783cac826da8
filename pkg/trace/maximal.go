package trace

import (
	"fmt"
	"strings"
)

// MaximalTraces is a set of traces in which no member is a proper prefix of
// another. The zero value is not ready to use; NewMaximalTraces seeds the set
// with the empty trace, so a process with no behavior still has {⟨⟩}.
type MaximalTraces[E comparable] struct {
	traces [][]E
}

func NewMaximalTraces[E comparable]() *MaximalTraces[E] {
	return &MaximalTraces[E]{traces: [][]E{{}}}
}

// Insert adds a trace, keeping the set maximal: a trace that is a prefix of
// an existing member is dropped, and existing members that are prefixes of
// the new trace are removed. The trace is copied; callers may reuse the slice.
func (m *MaximalTraces[E]) Insert(trace []E) {
	for _, existing := range m.traces {
		if isPrefix(trace, existing) {
			return
		}
	}
	kept := m.traces[:0]
	for _, existing := range m.traces {
		if !isPrefix(existing, trace) {
			kept = append(kept, existing)
		}
	}
	m.traces = append(kept, append([]E(nil), trace...))
}

// Add inserts every trace of other into m and returns m.
func (m *MaximalTraces[E]) Add(other *MaximalTraces[E]) *MaximalTraces[E] {
	for _, trace := range other.traces {
		m.Insert(trace)
	}
	return m
}

// Traces returns the members of the set. The returned slices are owned by the
// set and must not be mutated.
func (m *MaximalTraces[E]) Traces() [][]E {
	return m.traces
}

func (m *MaximalTraces[E]) Len() int {
	return len(m.traces)
}

// Contains reports whether trace is a member of the set itself, not merely a
// prefix of one.
func (m *MaximalTraces[E]) Contains(trace []E) bool {
	for _, existing := range m.traces {
		if len(existing) == len(trace) && isPrefix(trace, existing) {
			return true
		}
	}
	return false
}

// HasPrefix reports whether trace is a prefix of some member of the set,
// which is exactly when trace is a trace of the summarized process.
func (m *MaximalTraces[E]) HasPrefix(trace []E) bool {
	for _, existing := range m.traces {
		if isPrefix(trace, existing) {
			return true
		}
	}
	return false
}

// Equal reports whether two sets hold the same traces, regardless of
// insertion order.
func (m *MaximalTraces[E]) Equal(other *MaximalTraces[E]) bool {
	if len(m.traces) != len(other.traces) {
		return false
	}
	for _, trace := range m.traces {
		if !other.Contains(trace) {
			return false
		}
	}
	return true
}

func (m *MaximalTraces[E]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, trace := range m.traces {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("⟨")
		for j, e := range trace {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", e)
		}
		sb.WriteString("⟩")
	}
	sb.WriteString("}")
	return sb.String()
}

// isPrefix reports whether a is a (possibly equal) prefix of b.
func isPrefix[E comparable](a, b []E) bool {
	if len(a) > len(b) {
		return false
	}
	for i, e := range a {
		if b[i] != e {
			return false
		}
	}
	return true
}
