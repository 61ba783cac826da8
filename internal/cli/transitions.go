package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/aretw0/tracery"
	"github.com/aretw0/tracery/pkg/event"
)

// TransitionsOptions contains the configuration for the transitions command.
type TransitionsOptions struct {
	LibraryPath string
	Name        string
	JSON        bool
	Logger      *slog.Logger
}

// RunTransitions prints the one-step transition relation of a definition.
func RunTransitions(opts TransitionsOptions) error {
	lib, name, err := LoadLibrary(opts.LibraryPath, opts.Name)
	if err != nil {
		return err
	}
	p, _ := lib.Process(name)

	explorer := tracery.New(tracery.WithLogger[event.Name](opts.Logger))
	transitions := explorer.Transitions(p)

	events := make([]event.Name, 0, len(transitions))
	for e := range transitions {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].String() < events[j].String()
	})

	if opts.JSON {
		out := make(map[string][]string, len(transitions))
		for e, afters := range transitions {
			rendered := make([]string, 0, len(afters))
			for _, after := range afters {
				rendered = append(rendered, after.String())
			}
			sort.Strings(rendered)
			out[e.String()] = rendered
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	fmt.Printf("%s = %v\n", name, p)
	for _, e := range events {
		for _, after := range transitions[e] {
			fmt.Printf("  -%s→ %v\n", RenderEvent(e), after)
		}
	}
	return nil
}
