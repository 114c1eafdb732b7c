// Package grid models a rectangular maze lattice: a fixed rows×cols arena of
// cells plus the undirected "open passage" relation between adjacent cells.
//
// What:
//
//   - Grid is created once at a known size and never resized.
//   - Cells are addressed by (Row, Col); row 0 is the northern edge, column 0 the western edge.
//   - Neighbors are computed arithmetically from the position; nothing is stored per edge
//     except one direction bitmask per cell.
//   - Link opens a passage between two adjacent cells. Both endpoints are updated in the
//     same call, so the relation is always symmetric.
//
// Why:
//
//   - Maze generators only ever need "who is next to me" and "open this wall".
//   - Distance fields and renderers only ever need "is this wall open".
//
// Complexity:
//
//   - New:       O(R×C) time and memory.
//   - Neighbors, Link, IsLinked, Links: O(1).
//   - Cells, DeadEnds, LinkCount:       O(R×C).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols is not positive.
//   - ErrOutOfBounds:       a cell lies outside the grid.
//   - ErrNotAdjacent:       Link was asked to join two cells that are not geometric neighbors.
//
// Concurrency:
//
//	A Grid has no internal locking. A generator owns it while running; afterwards any
//	number of readers may query it concurrently.
//
// Rendering a 3×3 grid with every wall closed:
//
//	+---+---+---+
//	|   |   |   |
//	+---+---+---+
//	|   |   |   |
//	+---+---+---+
//	|   |   |   |
//	+---+---+---+
package grid
