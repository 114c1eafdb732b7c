// Package generator defines the generator contract, algorithm names, options,
// and sentinel errors for maze generation.
package generator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for generator operations.
var (
	// ErrGridNil is returned when a nil grid is passed to a generator.
	ErrGridNil = errors.New("generator: grid is nil")

	// ErrUnknownAlgorithm is returned when a name is not in the registry.
	ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")

	// ErrOptionViolation is returned when Options carry an invalid value.
	ErrOptionViolation = errors.New("generator: invalid option supplied")
)

// Func carves a maze into g using randomness from rng.
// A nil rng is replaced by the default deterministic stream.
type Func func(g *grid.Grid, rng grid.Rand) error

// Algorithm names accepted by Lookup and Options.Algorithm.
const (
	AlgoAldousBroder         = "aldous-broder"
	AlgoBinaryTree           = "binary-tree"
	AlgoHuntAndKill          = "hunt-and-kill"
	AlgoKruskal              = "kruskal"
	AlgoPrim                 = "prim"
	AlgoRecursiveBacktracker = "recursive-backtracker"
	AlgoSidewinder           = "sidewinder"
	AlgoWilson               = "wilson"
)

// registry maps algorithm names to their implementation.
var registry = map[string]Func{
	AlgoAldousBroder:         AldousBroder,
	AlgoBinaryTree:           BinaryTree,
	AlgoHuntAndKill:          HuntAndKill,
	AlgoKruskal:              Kruskal,
	AlgoPrim:                 Prim,
	AlgoRecursiveBacktracker: RecursiveBacktracker,
	AlgoSidewinder:           Sidewinder,
	AlgoWilson:               Wilson,
}

// Algorithms returns every registered name in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the generator registered under name.
// Returns ErrUnknownAlgorithm for anything else.
func Lookup(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return fn, nil
}

// Options configures a Generate call.
//
// Fields:
//
//	Algorithm string  — registered algorithm name.
//	Seed      int64   — RNG seed; 0 selects the fixed default seed.
//	Braid     float64 — probability in [0,1] of removing each dead end afterwards; 0 disables braiding.
type Options struct {
	Algorithm string
	Seed      int64
	Braid     float64
}

// DefaultOptions returns Options for a recursive backtracker with the default
// seed and no braiding.
func DefaultOptions() Options {
	return Options{
		Algorithm: AlgoRecursiveBacktracker,
		Seed:      0,
		Braid:     0,
	}
}

// Generate resolves opts.Algorithm, seeds an RNG from opts.Seed, carves g,
// and braids it when opts.Braid > 0. Options are validated before g is touched.
//
// Returns ErrGridNil, ErrUnknownAlgorithm or ErrOptionViolation.
func Generate(g *grid.Grid, opts Options) error {
	if g == nil {
		return ErrGridNil
	}
	fn, err := Lookup(opts.Algorithm)
	if err != nil {
		return err
	}
	if err = validateBraid(opts.Braid); err != nil {
		return err
	}

	rng := NewRand(opts.Seed)
	if err = fn(g, rng); err != nil {
		return err
	}
	if opts.Braid > 0 {
		return Braid(g, rng, opts.Braid)
	}

	return nil
}
