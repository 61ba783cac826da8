package event

// Alphabet is a set of events.
//
// For some event types it is not easy (or efficient) to enumerate every
// member, which rules out a plain map. An alphabet is therefore a membership
// predicate; eagerly enumerable sets implement it too.
type Alphabet[E Event[E]] interface {
	Contains(e E) bool
}

// Empty is the alphabet that contains no events.
type Empty[E Event[E]] struct{}

func (Empty[E]) Contains(E) bool { return false }

// Just is the alphabet that contains exactly one event.
type Just[E Event[E]] struct {
	Event E
}

func (j Just[E]) Contains(e E) bool { return e == j.Event }

// Set is an eagerly enumerable alphabet.
type Set[E Event[E]] map[E]struct{}

// NewSet builds a Set from the given events.
func NewSet[E Event[E]](events ...E) Set[E] {
	s := make(Set[E], len(events))
	for _, e := range events {
		s.Add(e)
	}
	return s
}

// Add inserts e into the set.
func (s Set[E]) Add(e E) { s[e] = struct{}{} }

func (s Set[E]) Contains(e E) bool {
	_, ok := s[e]
	return ok
}

// Union is the alphabet containing every event of its member alphabets.
type Union[E Event[E]] []Alphabet[E]

func (u Union[E]) Contains(e E) bool {
	for _, a := range u {
		if a.Contains(e) {
			return true
		}
	}
	return false
}

// Func adapts a predicate into an Alphabet.
type Func[E Event[E]] func(E) bool

func (f Func[E]) Contains(e E) bool { return f(e) }
