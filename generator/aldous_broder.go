package generator

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/grid"
)

// AldousBroder produces a uniformly random spanning tree by random walk.
//
// Steps:
//  1. Start at a random cell and mark it visited.
//  2. Step to a uniformly random neighbor.
//  3. If that neighbor was unvisited, link the step and mark it visited.
//  4. Stop once every cell has been visited.
//
// Complexity: expected O(cover time), superlinear in N; O(N) memory.
func AldousBroder(g *grid.Grid, rng grid.Rand) error {
	rng, done, err := prepare(g, rng)
	if done {
		return err
	}

	visited := mapset.New[grid.Cell]()
	cell := g.RandomCell(rng)
	visited.Put(cell)

	for visited.Size() < g.Size() {
		neighbors, err := g.Neighbors(cell)
		if err != nil {
			return err
		}
		next := sample(neighbors, rng)
		if !visited.Has(next) {
			if err = g.Link(cell, next); err != nil {
				return err
			}
			visited.Put(next)
		}
		cell = next
	}

	return nil
}
