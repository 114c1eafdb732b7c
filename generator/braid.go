package generator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmaze/grid"
)

// Braid removes dead ends from a carved maze, turning a perfect maze into one
// with loops. Each dead end (in shuffled order) is considered once and, with
// probability p, linked to one of its unlinked neighbors. Neighbors that are
// dead ends themselves are preferred, so one link can clear two dead ends.
//
// Braiding only adds links, so a connected maze stays connected. With p == 1
// and at least two rows and two columns, no dead end survives.
//
// Returns ErrGridNil, or ErrOptionViolation if p is outside [0,1].
//
// Complexity: O(N) time and memory.
func Braid(g *grid.Grid, rng grid.Rand, p float64) error {
	if err := validateBraid(p); err != nil {
		return err
	}
	rng, done, err := prepare(g, rng)
	if done || p == 0 {
		return err
	}

	deadEnds := g.DeadEnds()
	shuffle(deadEnds, rng)

	for _, c := range deadEnds {
		// an earlier link may already have cleared this one
		if g.Degree(c) != 1 || rng.Float64() >= p {
			continue
		}
		neighbors, err := g.Neighbors(c)
		if err != nil {
			return err
		}
		var closed, best []grid.Cell
		for _, n := range neighbors {
			if g.IsLinked(c, n) {
				continue
			}
			closed = append(closed, n)
			if g.Degree(n) == 1 {
				best = append(best, n)
			}
		}
		if len(closed) == 0 {
			continue
		}
		if len(best) == 0 {
			best = closed
		}
		if err = g.Link(c, sample(best, rng)); err != nil {
			return err
		}
	}

	return nil
}

// validateBraid checks that p is a probability.
func validateBraid(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: braid probability must be in [0,1] (got %v)", ErrOptionViolation, p)
	}
	return nil
}
