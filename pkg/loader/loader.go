package loader

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/tracery/pkg/event"
	"github.com/aretw0/tracery/pkg/process"
)

var (
	// ErrUnknownDefinition signals a ref to a name the document never defines.
	ErrUnknownDefinition = errors.New("unknown definition")
	// ErrCyclicReference signals definitions that reference each other in a
	// loop; terms are finite trees, so references must be acyclic.
	ErrCyclicReference = errors.New("cyclic reference")
)

// documentSpec mirrors the top level of a library document. It uses
// "mapstructure" tags to match the YAML keys.
type documentSpec struct {
	Root        string              `mapstructure:"root"`
	Definitions map[string]nodeSpec `mapstructure:"definitions"`
}

// nodeSpec is one node of a process tree. Exactly one operator field may be
// set.
type nodeSpec struct {
	Stop     bool        `mapstructure:"stop"`
	Skip     bool        `mapstructure:"skip"`
	Ref      string      `mapstructure:"ref"`
	Prefix   *prefixSpec `mapstructure:"prefix"`
	Internal []nodeSpec  `mapstructure:"internal"`
	External []nodeSpec  `mapstructure:"external"`
	Sequence *seqSpec    `mapstructure:"sequence"`
}

type prefixSpec struct {
	Event string   `mapstructure:"event"`
	Then  nodeSpec `mapstructure:"then"`
}

type seqSpec struct {
	First nodeSpec `mapstructure:"first"`
	Then  nodeSpec `mapstructure:"then"`
}

// Library holds the named process definitions of one document.
type Library struct {
	rootName string
	defs     map[string]*process.CSP[event.Name]
}

// Load parses a YAML library document and builds every definition.
func Load(data []byte) (*Library, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	var doc documentSpec
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if len(doc.Definitions) == 0 {
		return nil, fmt.Errorf("document has no definitions")
	}
	if doc.Root == "" {
		return nil, fmt.Errorf("document has no root")
	}
	if _, ok := doc.Definitions[doc.Root]; !ok {
		return nil, fmt.Errorf("root %q: %w", doc.Root, ErrUnknownDefinition)
	}

	b := &builder{
		specs:    doc.Definitions,
		built:    make(map[string]*process.CSP[event.Name]),
		building: make(map[string]bool),
	}
	for name := range doc.Definitions {
		if _, err := b.definition(name); err != nil {
			return nil, err
		}
	}

	return &Library{rootName: doc.Root, defs: b.built}, nil
}

// LoadFile reads and parses a YAML library document from disk.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read library: %w", err)
	}
	lib, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Root returns the document's entry-point process.
func (l *Library) Root() *process.CSP[event.Name] {
	return l.defs[l.rootName]
}

// RootName returns the name of the entry-point definition.
func (l *Library) RootName() string {
	return l.rootName
}

// Process looks up a definition by name.
func (l *Library) Process(name string) (*process.CSP[event.Name], bool) {
	p, ok := l.defs[name]
	return p, ok
}

// Names returns every definition name, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.defs))
	for name := range l.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type builder struct {
	specs    map[string]nodeSpec
	built    map[string]*process.CSP[event.Name]
	building map[string]bool
}

func (b *builder) definition(name string) (*process.CSP[event.Name], error) {
	if p, ok := b.built[name]; ok {
		return p, nil
	}
	if b.building[name] {
		return nil, fmt.Errorf("definition %q: %w", name, ErrCyclicReference)
	}
	spec, ok := b.specs[name]
	if !ok {
		return nil, fmt.Errorf("definition %q: %w", name, ErrUnknownDefinition)
	}

	b.building[name] = true
	p, err := b.node(name, spec)
	b.building[name] = false
	if err != nil {
		return nil, err
	}
	b.built[name] = p
	return p, nil
}

func (b *builder) node(name string, spec nodeSpec) (*process.CSP[event.Name], error) {
	if err := validateNode(name, spec); err != nil {
		return nil, err
	}

	switch {
	case spec.Stop:
		return process.Stop[event.Name](), nil

	case spec.Skip:
		return process.Skip[event.Name](), nil

	case spec.Ref != "":
		return b.definition(spec.Ref)

	case spec.Prefix != nil:
		if spec.Prefix.Event == "" {
			return nil, fmt.Errorf("definition %q: prefix requires an event", name)
		}
		after, err := b.node(name, spec.Prefix.Then)
		if err != nil {
			return nil, err
		}
		return process.Prefix(event.Named(spec.Prefix.Event), after), nil

	case spec.Internal != nil:
		if len(spec.Internal) == 0 {
			return nil, fmt.Errorf("definition %q: internal choice over no processes", name)
		}
		children, err := b.nodes(name, spec.Internal)
		if err != nil {
			return nil, err
		}
		return process.ReplicatedInternalChoice(children), nil

	case spec.External != nil:
		// An empty external choice is permitted; it behaves like Stop.
		children, err := b.nodes(name, spec.External)
		if err != nil {
			return nil, err
		}
		return process.ReplicatedExternalChoice(children), nil

	case spec.Sequence != nil:
		first, err := b.node(name, spec.Sequence.First)
		if err != nil {
			return nil, err
		}
		then, err := b.node(name, spec.Sequence.Then)
		if err != nil {
			return nil, err
		}
		return process.SequentialComposition(first, then), nil

	default:
		return nil, fmt.Errorf("definition %q: node sets no operator", name)
	}
}

func (b *builder) nodes(name string, specs []nodeSpec) ([]*process.CSP[event.Name], error) {
	children := make([]*process.CSP[event.Name], 0, len(specs))
	for _, spec := range specs {
		child, err := b.node(name, spec)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func validateNode(name string, spec nodeSpec) error {
	set := 0
	if spec.Stop {
		set++
	}
	if spec.Skip {
		set++
	}
	if spec.Ref != "" {
		set++
	}
	if spec.Prefix != nil {
		set++
	}
	if spec.Internal != nil {
		set++
	}
	if spec.External != nil {
		set++
	}
	if spec.Sequence != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("definition %q: node must set exactly one operator, got %d", name, set)
	}
	return nil
}
