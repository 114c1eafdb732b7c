package generator

import "github.com/katalvlaran/lvmaze/grid"

// Sidewinder processes rows north to south, growing a run of cells eastward.
//
// For each cell the run is closed when the cell sits on the eastern edge, or
// when the row is not the northern one and rng.Intn(2) == 0. Closing picks one
// run member at random and links it north, then clears the run; otherwise the
// cell is linked east. The northern row therefore never closes early and ends
// up as one corridor.
//
// Complexity: O(N) time, O(C) extra memory for the run.
func Sidewinder(g *grid.Grid, rng grid.Rand) error {
	rng, done, err := prepare(g, rng)
	if done {
		return err
	}

	run := make([]grid.Cell, 0, g.Cols())
	for row := range g.RowCells() {
		run = run[:0]
		for _, c := range row {
			run = append(run, c)

			east, hasEast := g.Neighbor(c, grid.East)
			_, hasNorth := g.Neighbor(c, grid.North)
			closeOut := !hasEast || (hasNorth && rng.Intn(2) == 0)

			if !closeOut {
				if err = g.Link(c, east); err != nil {
					return err
				}
				continue
			}
			if !hasNorth {
				// northern row: the run just ends at the eastern edge
				run = run[:0]
				continue
			}

			member := sample(run, rng)
			if north, ok := g.Neighbor(member, grid.North); ok {
				if err = g.Link(member, north); err != nil {
					return err
				}
			}
			run = run[:0]
		}
	}

	return nil
}
