package generator

import "github.com/katalvlaran/lvmaze/grid"

// BinaryTree visits cells in row-major order and links each one to either its
// north or its east neighbor.
//
// Steps:
//  1. Collect the candidates [north, east] that exist for the cell.
//  2. Two candidates: rng.Intn(2) picks one (0 ⇒ north, 1 ⇒ east).
//  3. One candidate: link it without consuming randomness.
//  4. None (the north-east corner): leave the cell as is.
//
// The result is a spanning tree whose northern row and eastern column are
// unbroken corridors.
//
// Complexity: O(N) time, O(1) extra memory.
func BinaryTree(g *grid.Grid, rng grid.Rand) error {
	rng, done, err := prepare(g, rng)
	if done {
		return err
	}

	candidates := make([]grid.Cell, 0, 2)
	for c := range g.Cells() {
		candidates = candidates[:0]
		if n, ok := g.Neighbor(c, grid.North); ok {
			candidates = append(candidates, n)
		}
		if e, ok := g.Neighbor(c, grid.East); ok {
			candidates = append(candidates, e)
		}
		if len(candidates) == 0 {
			continue
		}
		if err = g.Link(c, sample(candidates, rng)); err != nil {
			return err
		}
	}

	return nil
}
