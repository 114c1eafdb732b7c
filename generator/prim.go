package generator

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/grid"
)

// weighted pairs a cell with its random cost.
type weighted struct {
	cell grid.Cell
	cost int
}

// primCostRange bounds the random per-cell costs.
const primCostRange = 100

// Prim grows the maze outward from a random cell, "true Prim" style: each
// cell gets a random cost, and the cheapest active cell is always expanded first.
//
// Steps:
//  1. Assign every cell a cost in [0,primCostRange) and push a random start cell onto a min-heap.
//  2. Peek the cheapest active cell.
//     a. If it has unvisited neighbors, link it to the cheapest of them
//     (ties go to N, S, E, W order), mark that neighbor visited and push it.
//     b. Otherwise pop it: it can never grow again.
//  3. Stop when the heap is empty.
//
// Complexity: O(N log N) time, O(N) memory.
func Prim(g *grid.Grid, rng grid.Rand) error {
	rng, done, err := prepare(g, rng)
	if done {
		return err
	}

	// 1. Random costs.
	cost := make(map[grid.Cell]int, g.Size())
	for c := range g.Cells() {
		cost[c] = rng.Intn(primCostRange)
	}

	active := heap.New[weighted](func(a, b weighted) bool {
		if a.cost != b.cost {
			return a.cost < b.cost
		}
		// deterministic tie-break on position
		if a.cell.Row != b.cell.Row {
			return a.cell.Row < b.cell.Row
		}
		return a.cell.Col < b.cell.Col
	})
	visited := mapset.New[grid.Cell]()

	start := g.RandomCell(rng)
	visited.Put(start)
	active.Push(weighted{cell: start, cost: cost[start]})

	// 2. Expand the cheapest active cell.
	for active.Size() > 0 {
		top, _ := active.Peek()
		fresh, err := partition(g, top.cell, visited, false)
		if err != nil {
			return err
		}
		if len(fresh) == 0 {
			active.Pop()
			continue
		}

		next := fresh[0]
		for _, n := range fresh[1:] {
			if cost[n] < cost[next] {
				next = n
			}
		}
		if err = g.Link(top.cell, next); err != nil {
			return err
		}
		visited.Put(next)
		active.Push(weighted{cell: next, cost: cost[next]})
	}

	return nil
}
