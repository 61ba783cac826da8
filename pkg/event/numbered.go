package event

import "strings"

// Numbered is an event identified by a number. It makes it easy to construct
// distinct events in test cases and examples.
type Numbered struct {
	kind kind
	n    uint16
}

// Number constructs the visible event Eₙ.
func Number(n uint16) Numbered {
	return Numbered{n: n}
}

func (Numbered) Tau() Numbered  { return Numbered{kind: kindTau} }
func (Numbered) Tick() Numbered { return Numbered{kind: kindTick} }

var subscriptDigits = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

func (n Numbered) String() string {
	switch n.kind {
	case kindTau:
		return "τ"
	case kindTick:
		return "✔"
	}
	if n.n == 0 {
		return "E₀"
	}
	var digits []rune
	for v := n.n; v > 0; v /= 10 {
		digits = append(digits, subscriptDigits[v%10])
	}
	var b strings.Builder
	b.WriteString("E")
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteRune(digits[i])
	}
	return b.String()
}
