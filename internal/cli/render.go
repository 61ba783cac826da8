package cli

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/tracery/pkg/event"
)

// Event colors: hidden events render dim so visible behavior stands out.
const (
	colorVisible = "#818cf8"
	colorTick    = "#34d399"
	colorHidden  = "#6b7280"
)

// RenderEvent styles a single event for terminal output.
func RenderEvent(e event.Name) string {
	p := termenv.ColorProfile()
	switch e {
	case event.Tau[event.Name]():
		return termenv.String(e.String()).Foreground(p.Color(colorHidden)).Faint().String()
	case event.Tick[event.Name]():
		return termenv.String(e.String()).Foreground(p.Color(colorTick)).String()
	default:
		return termenv.String(e.String()).Foreground(p.Color(colorVisible)).String()
	}
}

// RenderTrace styles a trace as ⟨a, b, ✔⟩.
func RenderTrace(trace []event.Name) string {
	var sb strings.Builder
	sb.WriteString("⟨")
	for i, e := range trace {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(RenderEvent(e))
	}
	sb.WriteString("⟩")
	return sb.String()
}
