package render

import (
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/katalvlaran/lvmaze/grid"
)

// glyphs is one frame glyph set.
type glyphs struct {
	hWall, hOpen string
	vWall, vOpen string
	corner       func(up, down, left, right bool) string
}

var asciiGlyphs = glyphs{
	hWall: "---", hOpen: "   ",
	vWall: "|", vOpen: " ",
	corner: func(bool, bool, bool, bool) string { return "+" },
}

// boxCorners is indexed by the wall segments meeting at a corner:
// bit 0 up, bit 1 down, bit 2 left, bit 3 right.
var boxCorners = [16]string{
	" ", "╵", "╷", "│",
	"╴", "┘", "┐", "┤",
	"╶", "└", "┌", "├",
	"─", "┴", "┬", "┼",
}

var boxGlyphs = glyphs{
	hWall: "───", hOpen: "   ",
	vWall: "│", vOpen: " ",
	corner: func(up, down, left, right bool) string {
		idx := 0
		for bit, on := range [4]bool{up, down, left, right} {
			if on {
				idx |= 1 << bit
			}
		}
		return boxCorners[idx]
	},
}

// bodyWidth is the number of runes inside each cell.
const bodyWidth = 3

// emptyBody is drawn for cells without an overlay value.
const emptyBody = "   "

// Render draws g as text. See the package documentation for the layout.
//
// Returns ErrGridNil or ErrOptionViolation.
func Render(g *grid.Grid, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return "", o.err
	}

	r := &renderer{g: g, opts: o, glyphs: asciiGlyphs}
	if o.Style == StyleBox {
		r.glyphs = boxGlyphs
	}
	if o.HeatMap && o.Overlay != nil {
		r.heatMax = overlayMax(g, o.Overlay)
	}

	return r.draw(), nil
}

// renderer holds the state of one Render call.
type renderer struct {
	g       *grid.Grid
	opts    Options
	glyphs  glyphs
	heatMax int
	sb      strings.Builder
}

// draw emits the horizontal line above every row, the row itself, and the
// closing southern boundary.
func (r *renderer) draw() string {
	rows, cols := r.g.Rows(), r.g.Cols()
	r.sb.Grow((2*rows + 1) * (4*cols + 2))

	for row := 0; row <= rows; row++ {
		r.horizontalLine(row)
		if row < rows {
			r.cellLine(row)
		}
	}
	return r.sb.String()
}

// horizontalLine draws the corners and walls on the boundary above row
// (row == rows is the southern edge).
func (r *renderer) horizontalLine(row int) {
	cols := r.g.Cols()
	for col := 0; col <= cols; col++ {
		r.sb.WriteString(r.corner(row, col))
		if col == cols {
			break
		}
		if r.hWall(row, col) {
			r.sb.WriteString(r.glyphs.hWall)
		} else {
			r.sb.WriteString(r.glyphs.hOpen)
		}
	}
	r.sb.WriteByte('\n')
}

// cellLine draws the western boundary, then each cell body followed by its east wall.
func (r *renderer) cellLine(row int) {
	cols := r.g.Cols()
	r.sb.WriteString(r.glyphs.vWall)
	for col := 0; col < cols; col++ {
		r.sb.WriteString(r.body(grid.Cell{Row: row, Col: col}))
		if r.vWall(row, col+1) {
			r.sb.WriteString(r.glyphs.vWall)
		} else {
			r.sb.WriteString(r.glyphs.vOpen)
		}
	}
	r.sb.WriteByte('\n')
}

// hWall reports whether a wall runs along the top of cell (row, col).
// row ranges over [0, rows]; rows selects the southern boundary.
func (r *renderer) hWall(row, col int) bool {
	if row == 0 || row == r.g.Rows() {
		return true
	}
	return !r.g.IsLinked(grid.Cell{Row: row - 1, Col: col}, grid.Cell{Row: row, Col: col})
}

// vWall reports whether a wall runs along the west side of cell (row, col).
// col ranges over [0, cols]; cols selects the eastern boundary.
func (r *renderer) vWall(row, col int) bool {
	if col == 0 || col == r.g.Cols() {
		return true
	}
	return !r.g.IsLinked(grid.Cell{Row: row, Col: col - 1}, grid.Cell{Row: row, Col: col})
}

// corner picks the glyph where the wall segments around lattice point (row, col) meet.
func (r *renderer) corner(row, col int) string {
	rows, cols := r.g.Rows(), r.g.Cols()
	up := row > 0 && r.vWall(row-1, col)
	down := row < rows && r.vWall(row, col)
	left := col > 0 && r.hWall(row, col-1)
	right := col < cols && r.hWall(row, col)
	return r.glyphs.corner(up, down, left, right)
}

// body returns the 3-rune content of c, tinted when the heat map is on.
func (r *renderer) body(c grid.Cell) string {
	if r.opts.Overlay == nil {
		return emptyBody
	}
	v, ok := r.opts.Overlay.Get(c)
	if !ok {
		return emptyBody
	}
	text := label(v)
	if !r.opts.HeatMap {
		return text
	}
	return heat(v, r.heatMax).Sprint(text)
}

// label formats v in base 36 centered in bodyWidth runes.
func label(v int) string {
	if v < 0 {
		return emptyBody
	}
	s := strconv.FormatInt(int64(v), 36)
	switch len(s) {
	case 1:
		return " " + s + " "
	case 2:
		return " " + s
	case bodyWidth:
		return s
	}
	return strings.Repeat("*", bodyWidth)
}

// heat maps v relative to top onto a background running from white (v == 0)
// to dark green (v == top).
func heat(v, top int) color.RGBColor {
	intensity := 1.0
	if top > 0 {
		intensity = float64(top-v) / float64(top)
	}
	if intensity < 0 {
		intensity = 0
	}
	dark := uint8(255 * intensity)
	bright := uint8(128 + 127*intensity)
	return color.RGB(dark, bright, dark, true)
}

// overlayMax returns the largest overlay value over the cells of g.
func overlayMax(g *grid.Grid, o Overlay) int {
	best := 0
	for c := range g.Cells() {
		if v, ok := o.Get(c); ok && v > best {
			best = v
		}
	}
	return best
}
