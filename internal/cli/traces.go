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

// TracesOptions contains the configuration for the traces command.
type TracesOptions struct {
	LibraryPath string
	Name        string
	MaxDepth    int
	JSON        bool
	Logger      *slog.Logger
}

// RunTraces enumerates and prints the maximal finite traces of a definition.
func RunTraces(opts TracesOptions) error {
	lib, name, err := LoadLibrary(opts.LibraryPath, opts.Name)
	if err != nil {
		return err
	}
	p, _ := lib.Process(name)

	explorer := tracery.New(
		tracery.WithLogger[event.Name](opts.Logger),
		tracery.WithMaxDepth[event.Name](opts.MaxDepth),
	)

	traces := explorer.MaximalTraces(p).Traces()
	sort.Slice(traces, func(i, j int) bool {
		return traceLess(traces[i], traces[j])
	})

	if opts.JSON {
		out := make([][]string, 0, len(traces))
		for _, tr := range traces {
			rendered := make([]string, 0, len(tr))
			for _, e := range tr {
				rendered = append(rendered, e.String())
			}
			out = append(out, rendered)
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	fmt.Printf("%s: %d maximal trace(s)\n", name, len(traces))
	for _, tr := range traces {
		fmt.Println("  " + RenderTrace(tr))
	}
	return nil
}

func traceLess(a, b []event.Name) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i].String() < b[i].String()
		}
	}
	return len(a) < len(b)
}
