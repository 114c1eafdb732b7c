// Package render serializes a carved maze to fixed-width text.
//
// What
//
//   - Render(g, opts...) draws every cell as a 3-character body framed by walls.
//   - An open passage between two cells renders blank; the outer boundary is always walled.
//   - WithOverlay(o) fills each body with o's value in base 36 (e.g. a *distances.Distances).
//   - WithStyle(StyleBox) swaps the ASCII frame for Unicode box-drawing glyphs.
//   - WithHeatMap(true) tints overlaid bodies by relative value using gookit/color.
//
// Layout
//
// A rows×cols maze renders as 2*rows+1 lines, each 4*cols+1 runes wide and
// terminated by '\n'. Even lines hold corners and horizontal walls, odd lines
// hold vertical walls and cell bodies:
//
//	+---+---+
//	| 0   1 |
//	+---+   +
//	| 3   2 |
//	+---+---+
//
// Overlay bodies are centered: " 5 ", " 1a", "zzz". Values that need more than
// three base-36 digits print as "***"; negative values render blank.
//
// Determinism
//
//	Output depends only on the grid linkage and the overlay. Heat-map escape codes
//	are emitted only when color.Enable is set and the terminal supports color.
//
// Complexity
//
//   - Render: O(N) time and output size, N = rows×cols.
//
// Errors
//
//   - ErrGridNil          – nil grid.
//   - ErrOptionViolation  – unknown style or nil overlay.
package render
