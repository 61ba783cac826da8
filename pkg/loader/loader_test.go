package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tracery/pkg/event"
	"github.com/aretw0/tracery/pkg/loader"
	"github.com/aretw0/tracery/pkg/trace"
)

const vendingMachine = `
root: machine
definitions:
  machine:
    prefix:
      event: coin
      then:
        external:
          - prefix: {event: tea, then: {stop: true}}
          - prefix: {event: coffee, then: {ref: refund}}
  refund:
    prefix: {event: refund, then: {skip: true}}
`

func TestLoadBuildsLibrary(t *testing.T) {
	lib, err := loader.Load([]byte(vendingMachine))
	require.NoError(t, err)

	assert.Equal(t, "machine", lib.RootName())
	assert.Equal(t, []string{"machine", "refund"}, lib.Names())

	machine, ok := lib.Process("machine")
	require.True(t, ok)
	assert.Same(t, lib.Root(), machine)

	coin := event.Named("coin")
	assert.Equal(t, []event.Name{coin}, machine.Initials())

	got := trace.MaximalFiniteTraces[event.Name](machine)
	want := trace.NewMaximalTraces[event.Name]()
	want.Insert([]event.Name{coin, event.Named("tea")})
	want.Insert([]event.Name{coin, event.Named("coffee"), event.Named("refund"), event.Tick[event.Name]()})
	assert.True(t, got.Equal(want), "got %v", got)
}

func TestLoadSharesReferencedSubtrees(t *testing.T) {
	doc := `
root: main
definitions:
  main:
    internal:
      - {ref: leaf}
      - {ref: leaf}
  leaf: {skip: true}
`
	lib, err := loader.Load([]byte(doc))
	require.NoError(t, err)

	main := lib.Root()
	tau := event.Tau[event.Name]()
	afters := main.Afters(tau)
	require.Len(t, afters, 2)
	// Both branches are the same shared term, not copies.
	assert.Same(t, afters[0], afters[1])
}

func TestLoadAllOperators(t *testing.T) {
	doc := `
root: all
definitions:
  all:
    sequence:
      first:
        internal:
          - {skip: true}
          - prefix: {event: a, then: {skip: true}}
      then:
        external: []
`
	lib, err := loader.Load([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "Skip ⊓ a → Skip ; □ {}", lib.Root().String())
}

func TestLoadEmptyExternalChoiceIsPermitted(t *testing.T) {
	doc := `
root: none
definitions:
  none:
    external: []
`
	lib, err := loader.Load([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, lib.Root().Initials())
}

func TestLoadRejectsEmptyInternalChoice(t *testing.T) {
	doc := `
root: bad
definitions:
  bad:
    internal: []
`
	_, err := loader.Load([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal choice over no processes")
}

func TestLoadRejectsUnknownRef(t *testing.T) {
	doc := `
root: main
definitions:
  main: {ref: ghost}
`
	_, err := loader.Load([]byte(doc))
	require.ErrorIs(t, err, loader.ErrUnknownDefinition)
}

func TestLoadRejectsCyclicRefs(t *testing.T) {
	doc := `
root: a
definitions:
  a: {ref: b}
  b: {ref: a}
`
	_, err := loader.Load([]byte(doc))
	require.ErrorIs(t, err, loader.ErrCyclicReference)
}

func TestLoadRejectsAmbiguousNode(t *testing.T) {
	doc := `
root: bad
definitions:
  bad:
    stop: true
    skip: true
`
	_, err := loader.Load([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one operator")
}

func TestLoadRejectsMissingRoot(t *testing.T) {
	_, err := loader.Load([]byte("definitions: {p: {stop: true}}"))
	require.Error(t, err)

	_, err = loader.Load([]byte("root: ghost\ndefinitions: {p: {stop: true}}"))
	require.ErrorIs(t, err, loader.ErrUnknownDefinition)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(vendingMachine), 0o644))

	lib, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "machine", lib.RootName())

	_, err = loader.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
