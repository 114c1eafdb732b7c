package distances

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// PathTo reconstructs a shortest path from the root to target.
// It walks backward from target, each step moving to the first linked neighbor
// (N, S, E, W order) whose distance is exactly one less, until distance 0.
// The returned slice runs root → target; its length is distance(target)+1.
//
// Returns ErrUnreachable if target has no recorded distance.
// Complexity: O(length of path).
func (d *Distances) PathTo(target grid.Cell) ([]grid.Cell, error) {
	cur, ok := d.Get(target)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, target)
	}

	// build reversed path
	path := make([]grid.Cell, cur+1)
	cell := target
	path[cur] = cell
	for cur > 0 {
		stepped := false
		for _, n := range d.g.Links(cell) {
			if v, ok := d.Get(n); ok && v == cur-1 {
				cell, cur = n, v
				stepped = true
				break
			}
		}
		if !stepped {
			// only possible if the grid changed after Build
			return nil, fmt.Errorf("%w: %v (no predecessor at distance %d)", ErrUnreachable, target, cur-1)
		}
		path[cur] = cell
	}

	return path, nil
}

// Breadcrumbs returns a field holding only the cells on PathTo(target), each
// with its original distance. Useful as a render overlay that marks the solution.
//
// Returns ErrUnreachable if target has no recorded distance.
func (d *Distances) Breadcrumbs(target grid.Cell) (*Distances, error) {
	path, err := d.PathTo(target)
	if err != nil {
		return nil, err
	}

	crumbs := &Distances{
		g:     d.g,
		root:  d.root,
		dist:  make([]int, len(d.dist)),
		order: path,
	}
	for i := range crumbs.dist {
		crumbs.dist[i] = -1
	}
	for i, c := range path {
		crumbs.dist[crumbs.mustIndex(c)] = i
	}
	return crumbs, nil
}

// Diameter returns the longest shortest path of g's passage graph, from one
// end to the other. It builds a field from the north-west cell, takes its
// farthest cell as the new root, and walks to that root's farthest cell.
// On a perfect maze (a tree) this is exact.
//
// Returns ErrGridNil if g is nil.
// Complexity: O(N).
func Diameter(g *grid.Grid) ([]grid.Cell, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	first, err := Build(g, grid.Cell{Row: 0, Col: 0})
	if err != nil {
		return nil, err
	}
	start, _ := first.Max()

	second, err := Build(g, start)
	if err != nil {
		return nil, err
	}
	goal, _ := second.Max()

	return second.PathTo(goal)
}
