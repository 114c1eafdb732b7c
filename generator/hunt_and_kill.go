package generator

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/grid"
)

// HuntAndKill alternates a random walk with a row-major hunt.
//
// Steps:
//  1. Walk: from the current cell, link to a random unvisited neighbor and move there.
//  2. Dead end: scan cells in row-major order for the first unvisited cell that has at
//     least one visited neighbor; link it to one such neighbor chosen at random and
//     resume walking from it.
//  3. Stop when the hunt finds nothing.
//
// Complexity: O(N²) worst case because each hunt rescans from the first row; O(N) memory.
func HuntAndKill(g *grid.Grid, rng grid.Rand) error {
	rng, done, err := prepare(g, rng)
	if done {
		return err
	}

	visited := mapset.New[grid.Cell]()
	current := g.RandomCell(rng)
	visited.Put(current)

	for {
		fresh, err := partition(g, current, visited, false)
		if err != nil {
			return err
		}
		if len(fresh) > 0 {
			next := sample(fresh, rng)
			if err = g.Link(current, next); err != nil {
				return err
			}
			visited.Put(next)
			current = next
			continue
		}

		found := false
		for c := range g.Cells() {
			if visited.Has(c) {
				continue
			}
			seen, err := partition(g, c, visited, true)
			if err != nil {
				return err
			}
			if len(seen) == 0 {
				continue
			}
			if err = g.Link(c, sample(seen, rng)); err != nil {
				return err
			}
			visited.Put(c)
			current = c
			found = true
			break
		}
		if !found {
			return nil
		}
	}
}

// partition returns the neighbors of c whose visited state equals want,
// in N, S, E, W order.
func partition(g *grid.Grid, c grid.Cell, visited mapset.Set[grid.Cell], want bool) ([]grid.Cell, error) {
	neighbors, err := g.Neighbors(c)
	if err != nil {
		return nil, err
	}
	out := neighbors[:0]
	for _, n := range neighbors {
		if visited.Has(n) == want {
			out = append(out, n)
		}
	}
	return out, nil
}
