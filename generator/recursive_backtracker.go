package generator

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/lvmaze/grid"
)

// RecursiveBacktracker is a randomized depth-first search driven by an explicit
// stack instead of recursion, so deep mazes cannot overflow the goroutine stack.
//
// Steps:
//  1. Push a random start cell and mark it visited.
//  2. While the stack is not empty, look at the top cell:
//     a. If it has unvisited neighbors, link to a random one, mark it, push it.
//     b. Otherwise pop.
//
// Complexity: O(N) time, O(N) memory for the stack and visited set.
func RecursiveBacktracker(g *grid.Grid, rng grid.Rand) error {
	rng, done, err := prepare(g, rng)
	if done {
		return err
	}

	visited := mapset.New[grid.Cell]()
	trail := stack.New[grid.Cell]()

	start := g.RandomCell(rng)
	visited.Put(start)
	trail.Push(start)

	for trail.Size() > 0 {
		current := trail.Peek()
		fresh, err := partition(g, current, visited, false)
		if err != nil {
			return err
		}
		if len(fresh) == 0 {
			trail.Pop()
			continue
		}
		next := sample(fresh, rng)
		if err = g.Link(current, next); err != nil {
			return err
		}
		visited.Put(next)
		trail.Push(next)
	}

	return nil
}
