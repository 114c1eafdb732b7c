package generator

import "github.com/katalvlaran/lvmaze/grid"

// wall is one interior wall: the pair of adjacent cells it separates.
type wall struct {
	a, b grid.Cell
}

// Kruskal treats every interior wall as an edge of equal weight, shuffles them,
// and knocks a wall down whenever its two cells still belong to different sets.
// It uses a disjoint-set (union-find) structure with path compression and union by rank.
//
// Steps:
//  1. Collect every south and east wall (each interior wall exactly once).
//  2. Shuffle the walls with rng.
//  3. Initialize DSU arrays parent[i] = i, rank[i] = 0 over row-major indices.
//  4. For each wall (a,b): if find(a) != find(b), union them and link a–b.
//  5. Stop once N-1 links exist.
//
// Complexity: O(N·α(N)) after the O(N) shuffle; O(N) memory.
func Kruskal(g *grid.Grid, rng grid.Rand) error {
	rng, done, err := prepare(g, rng)
	if done {
		return err
	}

	// 1. Collect walls.
	walls := make([]wall, 0, 2*g.Size())
	for c := range g.Cells() {
		if s, ok := g.Neighbor(c, grid.South); ok {
			walls = append(walls, wall{a: c, b: s})
		}
		if e, ok := g.Neighbor(c, grid.East); ok {
			walls = append(walls, wall{a: c, b: e})
		}
	}

	// 2. Random order stands in for random weights.
	shuffle(walls, rng)

	// 3. DSU over row-major indices.
	n := g.Size()
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			// Path compression: make u point to its grandparent.
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	// Union by rank merges two disjoint sets; reports whether a merge happened.
	union := func(u, v int) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
		return true
	}

	// 4. Knock down walls between different sets.
	links := 0
	for _, w := range walls {
		ia, err := g.Index(w.a)
		if err != nil {
			return err
		}
		ib, err := g.Index(w.b)
		if err != nil {
			return err
		}
		if !union(ia, ib) {
			continue
		}
		if err = g.Link(w.a, w.b); err != nil {
			return err
		}
		// 5. A spanning tree over N cells has N-1 edges.
		links++
		if links == n-1 {
			break
		}
	}

	return nil
}
