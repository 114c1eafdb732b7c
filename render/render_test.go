package render_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/distances"
	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/render"
)

// firstChoice always picks the first candidate.
type firstChoice struct{}

func (firstChoice) Intn(int) int      { return 0 }
func (firstChoice) Float64() float64 { return 0 }

// mapOverlay is an Overlay backed by a plain map.
type mapOverlay map[grid.Cell]int

func (m mapOverlay) Get(c grid.Cell) (int, bool) {
	v, ok := m[c]
	return v, ok
}

// northRowMaze returns the 4×4 binary tree carved with a north preference:
// an open northern row and open columns below it.
func northRowMaze(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	require.NoError(t, generator.BinaryTree(g, firstChoice{}))
	return g
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

// TestRender_Errors verifies nil grids and bad options are rejected.
func TestRender_Errors(t *testing.T) {
	_, err := render.Render(nil)
	assert.ErrorIs(t, err, render.ErrGridNil)

	g, err := grid.New(2, 2)
	require.NoError(t, err)

	_, err = render.Render(g, render.WithStyle(render.Style(9)))
	assert.ErrorIs(t, err, render.ErrOptionViolation)

	_, err = render.Render(g, render.WithOverlay(nil))
	assert.ErrorIs(t, err, render.ErrOptionViolation)
}

// TestRender_SingleCell draws one fully walled cell in both styles.
func TestRender_SingleCell(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)

	out, err := render.Render(g)
	require.NoError(t, err)
	assert.Equal(t, lines("+---+", "|   |", "+---+"), out)

	out, err = render.Render(g, render.WithStyle(render.StyleBox))
	require.NoError(t, err)
	assert.Equal(t, lines("┌───┐", "│   │", "└───┘"), out)
}

// TestRender_BinaryTreeASCII checks the open northern row and the open columns.
func TestRender_BinaryTreeASCII(t *testing.T) {
	out, err := render.Render(northRowMaze(t))
	require.NoError(t, err)

	want := lines(
		"+---+---+---+---+",
		"|               |",
		"+   +   +   +   +",
		"|   |   |   |   |",
		"+   +   +   +   +",
		"|   |   |   |   |",
		"+   +   +   +   +",
		"|   |   |   |   |",
		"+---+---+---+---+",
	)
	assert.Equal(t, want, out)
}

// TestRender_BinaryTreeBox checks junction-aware corners on the same maze.
func TestRender_BinaryTreeBox(t *testing.T) {
	out, err := render.Render(northRowMaze(t), render.WithStyle(render.StyleBox))
	require.NoError(t, err)

	want := lines(
		"┌───────────────┐",
		"│               │",
		"│   ╷   ╷   ╷   │",
		"│   │   │   │   │",
		"│   │   │   │   │",
		"│   │   │   │   │",
		"│   │   │   │   │",
		"│   │   │   │   │",
		"└───┴───┴───┴───┘",
	)
	assert.Equal(t, want, out)
}

// TestRender_Dimensions checks 2*rows+1 lines of 4*cols+1 runes for every style.
func TestRender_Dimensions(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 7}, {5, 1}, {6, 9}}
	styles := []render.Style{render.StyleASCII, render.StyleBox}

	for _, s := range shapes {
		g, err := grid.New(s[0], s[1])
		require.NoError(t, err)
		require.NoError(t, generator.Wilson(g, generator.NewRand(5)))
		d, err := distances.Build(g, grid.Cell{})
		require.NoError(t, err)

		for _, style := range styles {
			out, err := render.Render(g, render.WithStyle(style), render.WithOverlay(d))
			require.NoError(t, err)
			require.True(t, strings.HasSuffix(out, "\n"))

			rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			assert.Len(t, rows, 2*s[0]+1, "%v %dx%d", style, s[0], s[1])
			for _, line := range rows {
				assert.Equal(t, 4*s[1]+1, utf8.RuneCountInString(line), "%v line %q", style, line)
			}
		}
	}
}

// TestRender_Overlay draws base-36 distances along a corridor.
func TestRender_Overlay(t *testing.T) {
	g, err := grid.New(1, 3)
	require.NoError(t, err)
	require.NoError(t, g.Link(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 1}))
	require.NoError(t, g.Link(grid.Cell{Row: 0, Col: 1}, grid.Cell{Row: 0, Col: 2}))

	d, err := distances.Build(g, grid.Cell{})
	require.NoError(t, err)

	out, err := render.Render(g, render.WithOverlay(d))
	require.NoError(t, err)
	assert.Equal(t, lines("+---+---+---+", "| 0   1   2 |", "+---+---+---+"), out)
}

// TestRender_OverlayLabels covers centering, multi-digit values and overflow.
func TestRender_OverlayLabels(t *testing.T) {
	g, err := grid.New(1, 6)
	require.NoError(t, err)

	o := mapOverlay{
		{Row: 0, Col: 0}: 35,
		{Row: 0, Col: 1}: 46,
		{Row: 0, Col: 2}: 36*36*36 - 1,
		{Row: 0, Col: 3}: 36 * 36 * 36,
		{Row: 0, Col: 4}: -3,
	}
	out, err := render.Render(g, render.WithOverlay(o))
	require.NoError(t, err)
	assert.Equal(t, lines(
		"+---+---+---+---+---+---+",
		"| z | 1a|zzz|***|   |   |",
		"+---+---+---+---+---+---+",
	), out)
}

// TestRender_HeatMapWithoutColor: with colors disabled the heat map adds no escape codes.
func TestRender_HeatMapWithoutColor(t *testing.T) {
	prev := color.Enable
	color.Enable = false
	t.Cleanup(func() { color.Enable = prev })

	g := northRowMaze(t)
	d, err := distances.Build(g, grid.Cell{Row: 3, Col: 0})
	require.NoError(t, err)

	plain, err := render.Render(g, render.WithOverlay(d))
	require.NoError(t, err)
	tinted, err := render.Render(g, render.WithOverlay(d), render.WithHeatMap(true))
	require.NoError(t, err)

	assert.Equal(t, plain, tinted)
	assert.NotContains(t, tinted, "\x1b[")
}

// TestParseStyle maps names both ways.
func TestParseStyle(t *testing.T) {
	for _, s := range []render.Style{render.StyleASCII, render.StyleBox} {
		got, err := render.ParseStyle(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := render.ParseStyle("fancy")
	assert.ErrorIs(t, err, render.ErrOptionViolation)
}
