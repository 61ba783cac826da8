package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/tracery/internal/logging"
	"github.com/aretw0/tracery/pkg/loader"
)

// NewLogger builds the application logger from the --log-level flag value.
func NewLogger(level string) (*slog.Logger, error) {
	l, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(l), nil
}

// LoadLibrary reads the process library and resolves the definition to act
// on: the named one, or the document root when name is empty.
func LoadLibrary(path, name string) (*loader.Library, string, error) {
	lib, err := loader.LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	if name == "" {
		name = lib.RootName()
	}
	if _, ok := lib.Process(name); !ok {
		return nil, "", fmt.Errorf("definition %q not found in %s", name, path)
	}
	return lib, name, nil
}
