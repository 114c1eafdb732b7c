// Package generator - RNG utilities shared by all maze algorithms.
//
// Goals:
//   - Determinism: same seed ⇒ identical mazes across runs.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package generator

import (
	"math/rand"

	"github.com/katalvlaran/lvmaze/grid"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// prepare validates g and resolves a nil rng to the default stream.
// done is true when g has at most one cell and there is nothing to carve.
func prepare(g *grid.Grid, rng grid.Rand) (r grid.Rand, done bool, err error) {
	if g == nil {
		return nil, true, ErrGridNil
	}
	if rng == nil {
		rng = NewRand(0)
	}
	return rng, g.Size() <= 1, nil
}

// sample returns a uniformly chosen element of cells. cells must be non-empty.
func sample(cells []grid.Cell, rng grid.Rand) grid.Cell {
	if len(cells) == 1 {
		return cells[0]
	}
	return cells[rng.Intn(len(cells))]
}

// shuffle performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffle[T any](a []T, rng grid.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
