package generator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/distances"
	"github.com/katalvlaran/lvmaze/grid"
)

// scriptedRand replays a fixed sequence of choices. Intn(n) returns the next
// scripted value reduced modulo n; the script wraps around. Float64 always
// returns 0 so every probability check passes.
type scriptedRand struct {
	seq   []int
	i     int
	calls int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.seq[s.i%len(s.seq)] % n
	s.i++
	s.calls++
	return v
}

func (s *scriptedRand) Float64() float64 {
	s.calls++
	return 0
}

// always returns a scriptedRand that answers v to every Intn call.
func always(v int) *scriptedRand {
	return &scriptedRand{seq: []int{v}}
}

// linkSet captures the linkage relation as a set of (cell, east|south) entries.
func linkSet(g *grid.Grid) map[[2]grid.Cell]bool {
	out := make(map[[2]grid.Cell]bool)
	for c := range g.Cells() {
		for _, n := range g.Links(c) {
			if n.Row > c.Row || n.Col > c.Col {
				out[[2]grid.Cell{c, n}] = true
			}
		}
	}
	return out
}

// requireSpanningTree asserts g is connected with exactly Size()-1 links and
// that the relation is symmetric.
func requireSpanningTree(t *testing.T, g *grid.Grid) {
	t.Helper()
	require.Equal(t, g.Size()-1, g.LinkCount(), "spanning tree edge count")

	d, err := distances.Build(g, grid.Cell{})
	require.NoError(t, err)
	require.Equal(t, g.Size(), d.Len(), "every cell reachable")

	for c := range g.Cells() {
		for _, n := range g.Links(c) {
			require.True(t, g.IsLinked(n, c), "symmetry %v-%v", c, n)
		}
	}
}
