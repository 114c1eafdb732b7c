package grid_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/grid"
)

// BenchmarkLinkRows links every cell of a 500×500 grid to its east neighbor.
// Complexity: O(R×C)
func BenchmarkLinkRows(b *testing.B) {
	const n = 500
	for i := 0; i < b.N; i++ {
		g, err := grid.New(n, n)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		for c := range g.Cells() {
			if e, ok := g.Neighbor(c, grid.East); ok {
				_ = g.Link(c, e)
			}
		}
	}
}

// BenchmarkDeadEnds measures DeadEnds on a 500×500 comb-shaped maze.
func BenchmarkDeadEnds(b *testing.B) {
	const n = 500
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for c := range g.Cells() {
		if s, ok := g.Neighbor(c, grid.South); ok {
			_ = g.Link(c, s)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.DeadEnds()
	}
}
