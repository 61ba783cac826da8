package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/tracery"
	"github.com/aretw0/tracery/pkg/event"
)

// ErrTraceRejected signals that the definition cannot perform the trace.
var ErrTraceRejected = errors.New("trace rejected")

// CheckOptions contains the configuration for the check command.
type CheckOptions struct {
	LibraryPath string
	Name        string
	Logger      *slog.Logger
}

// RunCheck replays a trace against a definition. Returns ErrTraceRejected if
// the definition cannot perform it.
func RunCheck(opts CheckOptions, rawTrace []string) error {
	lib, name, err := LoadLibrary(opts.LibraryPath, opts.Name)
	if err != nil {
		return err
	}
	p, _ := lib.Process(name)

	trace := make([]event.Name, 0, len(rawTrace))
	for _, raw := range rawTrace {
		trace = append(trace, event.Parse(raw))
	}

	explorer := tracery.New(tracery.WithLogger[event.Name](opts.Logger))
	if !explorer.Satisfies(p, trace) {
		fmt.Printf("✗ %s cannot perform %s\n", name, RenderTrace(trace))
		return ErrTraceRejected
	}
	fmt.Printf("✓ %s satisfies %s\n", name, RenderTrace(trace))
	return nil
}
