package event

// kind distinguishes the reserved hidden events from caller events. The zero
// kind is a visible event, so the zero value of Name and Numbered stays a
// (blank) visible event and never collides with τ or ✔.
type kind uint8

const (
	kindVisible kind = iota
	kindTau
	kindTick
)

// Name is a ready-made event type for string-named alphabets.
type Name struct {
	kind kind
	name string
}

// Named constructs a visible event with the given name.
func Named(name string) Name {
	return Name{name: name}
}

func (Name) Tau() Name  { return Name{kind: kindTau} }
func (Name) Tick() Name { return Name{kind: kindTick} }

// Parse maps a string to an event. "τ"/"tau" and "✔"/"tick" denote the
// hidden events; everything else is a visible event name.
func Parse(raw string) Name {
	switch raw {
	case "τ", "tau":
		return Name{kind: kindTau}
	case "✔", "tick":
		return Name{kind: kindTick}
	default:
		return Named(raw)
	}
}

func (n Name) String() string {
	switch n.kind {
	case kindTau:
		return "τ"
	case kindTick:
		return "✔"
	default:
		return n.name
	}
}
