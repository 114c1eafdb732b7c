package generator

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/grid"
)

// Wilson produces a uniformly random spanning tree from loop-erased random walks.
//
// Steps:
//  1. Mark one random cell visited.
//  2. Pick a random unvisited cell and walk randomly from it, recording the path.
//  3. When the walk steps onto a cell already in the path, erase the loop back to it.
//  4. When the walk steps onto a visited cell, link every step of the path and mark its cells visited.
//  5. Repeat from 2 until no unvisited cell remains.
//
// The in-progress path is an ordered slice plus a membership set; both belong to
// this call only.
//
// Complexity: expected superlinear in N (dominated by the first walks); O(N) memory.
func Wilson(g *grid.Grid, rng grid.Rand) error {
	rng, done, err := prepare(g, rng)
	if done {
		return err
	}

	unvisited := newCellPool(g)
	unvisited.remove(g.RandomCell(rng))

	var (
		path   = make([]grid.Cell, 0, g.Size())
		inPath = mapset.New[grid.Cell]()
	)
	for unvisited.len() > 0 {
		path = path[:0]
		inPath.Clear()

		cell := unvisited.random(rng)
		path = append(path, cell)
		inPath.Put(cell)

		for unvisited.has(cell) {
			neighbors, err := g.Neighbors(cell)
			if err != nil {
				return err
			}
			cell = sample(neighbors, rng)
			if inPath.Has(cell) {
				// erase the loop: drop everything after the earlier visit of cell
				for path[len(path)-1] != cell {
					inPath.Remove(path[len(path)-1])
					path = path[:len(path)-1]
				}
				continue
			}
			path = append(path, cell)
			inPath.Put(cell)
		}

		for i := 0; i+1 < len(path); i++ {
			if err = g.Link(path[i], path[i+1]); err != nil {
				return err
			}
			unvisited.remove(path[i])
		}
	}

	return nil
}

// cellPool is a set of cells supporting O(1) membership, removal and uniform sampling.
type cellPool struct {
	cells []grid.Cell
	pos   map[grid.Cell]int
}

// newCellPool returns a pool holding every cell of g in row-major order.
func newCellPool(g *grid.Grid) *cellPool {
	p := &cellPool{
		cells: make([]grid.Cell, 0, g.Size()),
		pos:   make(map[grid.Cell]int, g.Size()),
	}
	for c := range g.Cells() {
		p.pos[c] = len(p.cells)
		p.cells = append(p.cells, c)
	}
	return p
}

func (p *cellPool) len() int { return len(p.cells) }

func (p *cellPool) has(c grid.Cell) bool {
	_, ok := p.pos[c]
	return ok
}

// remove swaps c with the last element and truncates.
func (p *cellPool) remove(c grid.Cell) {
	i, ok := p.pos[c]
	if !ok {
		return
	}
	last := p.cells[len(p.cells)-1]
	p.cells[i] = last
	p.pos[last] = i
	p.cells = p.cells[:len(p.cells)-1]
	delete(p.pos, c)
}

// random returns a uniformly chosen member. The pool must be non-empty.
func (p *cellPool) random(rng grid.Rand) grid.Cell {
	return sample(p.cells, rng)
}
