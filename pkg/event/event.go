package event

// Event is the type-level contract for caller-supplied event alphabets.
// Events are compared by equality only; no ordering is assumed. Tau and Tick
// return the two reserved hidden events of the alphabet and must work on the
// zero value, since operators synthesize hidden events out of thin air.
type Event[E comparable] interface {
	comparable
	Tau() E
	Tick() E
}

// Tau returns the hidden τ event of the alphabet E.
func Tau[E Event[E]]() E {
	var zero E
	return zero.Tau()
}

// Tick returns the hidden ✔ event of the alphabet E.
func Tick[E Event[E]]() E {
	var zero E
	return zero.Tick()
}

// IsHidden reports whether e is one of the reserved hidden events (τ or ✔).
func IsHidden[E Event[E]](e E) bool {
	return e == Tau[E]() || e == Tick[E]()
}
