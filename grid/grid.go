// Package grid provides the rectangular maze lattice and its linkage relation.
//
// Cells are stored in a flat row-major arena; neighbor lookup is arithmetic,
// and each cell keeps a Direction bitmask of its open passages.
package grid

import (
	"fmt"
	"iter"
)

// New constructs a rows×cols Grid with every cell present and unlinked.
// Returns ErrInvalidDimensions if rows or cols is not positive.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rows, cols)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		links: make([]Direction, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// Contains reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// index maps c to its row-major position: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// Index returns the row-major index of c, or ErrOutOfBounds.
func (g *Grid) Index(c Cell) (int, error) {
	if !g.Contains(c) {
		return 0, g.outOfBounds(c)
	}
	return g.index(c), nil
}

// Neighbor returns the cell one step from c in direction d and whether it
// exists within the grid.
// Complexity: O(1).
func (g *Grid) Neighbor(c Cell, d Direction) (Cell, bool) {
	dr, dc := d.offset()
	if dr == 0 && dc == 0 {
		return Cell{}, false
	}
	n := Cell{Row: c.Row + dr, Col: c.Col + dc}
	if !g.Contains(c) || !g.Contains(n) {
		return Cell{}, false
	}
	return n, true
}

// Neighbors returns the in-bounds orthogonal neighbors of c in N, S, E, W order.
// Corner cells have two neighbors, edge cells three, a 1×1 grid none.
// Returns ErrOutOfBounds if c is not a cell of g.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) ([]Cell, error) {
	if !g.Contains(c) {
		return nil, g.outOfBounds(c)
	}
	out := make([]Cell, 0, len(Directions))
	for _, d := range Directions {
		if n, ok := g.Neighbor(c, d); ok {
			out = append(out, n)
		}
	}
	return out, nil
}

// direction returns the Direction leading from a to b when they are orthogonal
// neighbors, or false otherwise.
func direction(a, b Cell) (Direction, bool) {
	switch {
	case b.Row == a.Row-1 && b.Col == a.Col:
		return North, true
	case b.Row == a.Row+1 && b.Col == a.Col:
		return South, true
	case b.Row == a.Row && b.Col == a.Col+1:
		return East, true
	case b.Row == a.Row && b.Col == a.Col-1:
		return West, true
	}
	return 0, false
}

// Link opens the passage between a and b on both sides.
// Linking an already linked pair is a no-op.
// Returns ErrOutOfBounds if either cell is foreign, ErrNotAdjacent if the cells
// are not orthogonal neighbors (this includes a == b). On error nothing changes.
// Complexity: O(1).
func (g *Grid) Link(a, b Cell) error {
	if !g.Contains(a) {
		return g.outOfBounds(a)
	}
	if !g.Contains(b) {
		return g.outOfBounds(b)
	}
	d, ok := direction(a, b)
	if !ok {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}
	g.links[g.index(a)] |= d
	g.links[g.index(b)] |= d.Opposite()

	return nil
}

// IsLinked reports whether a passage is open between a and b.
// Foreign or non-adjacent cells are never linked.
// Complexity: O(1).
func (g *Grid) IsLinked(a, b Cell) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	d, ok := direction(a, b)
	if !ok {
		return false
	}
	return g.links[g.index(a)]&d != 0
}

// IsOpen reports whether the wall of c facing d is open.
// Foreign cells report false.
func (g *Grid) IsOpen(c Cell, d Direction) bool {
	if !g.Contains(c) {
		return false
	}
	return g.links[g.index(c)]&d != 0
}

// Links returns the cells linked to c in N, S, E, W order.
// Foreign cells have no links.
// Complexity: O(1).
func (g *Grid) Links(c Cell) []Cell {
	if !g.Contains(c) {
		return nil
	}
	mask := g.links[g.index(c)]
	out := make([]Cell, 0, 4)
	for _, d := range Directions {
		if mask&d == 0 {
			continue
		}
		if n, ok := g.Neighbor(c, d); ok {
			out = append(out, n)
		}
	}
	return out
}

// Degree returns the number of open passages of c.
func (g *Grid) Degree(c Cell) int {
	if !g.Contains(c) {
		return 0
	}
	mask := g.links[g.index(c)]
	n := 0
	for _, d := range Directions {
		if mask&d != 0 {
			n++
		}
	}
	return n
}

// RandomCell picks one of the rows×cols cells uniformly using rng.
// Complexity: O(1).
func (g *Grid) RandomCell(rng Rand) Cell {
	return g.CellAt(rng.Intn(g.Size()))
}

// Cells yields every cell in row-major order. The sequence is lazy and may be
// ranged over any number of times.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if !yield(Cell{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// RowCells yields each row, north to south, as a fresh slice of its cells.
func (g *Grid) RowCells() iter.Seq[[]Cell] {
	return func(yield func([]Cell) bool) {
		for r := 0; r < g.rows; r++ {
			row := make([]Cell, g.cols)
			for c := range row {
				row[c] = Cell{Row: r, Col: c}
			}
			if !yield(row) {
				return
			}
		}
	}
}

// LinkCount returns the number of linked unordered pairs.
// Only south and east bits are counted so every pair is seen once.
// Complexity: O(R×C).
func (g *Grid) LinkCount() int {
	n := 0
	for _, mask := range g.links {
		if mask&South != 0 {
			n++
		}
		if mask&East != 0 {
			n++
		}
	}
	return n
}

// DeadEnds returns, in row-major order, every cell with exactly one link.
// Complexity: O(R×C).
func (g *Grid) DeadEnds() []Cell {
	var out []Cell
	for c := range g.Cells() {
		if g.Degree(c) == 1 {
			out = append(out, c)
		}
	}
	return out
}

// outOfBounds wraps ErrOutOfBounds with the offending cell and grid extent.
func (g *Grid) outOfBounds(c Cell) error {
	return fmt.Errorf("%w: %v not in %d×%d grid", ErrOutOfBounds, c, g.rows, g.cols)
}
