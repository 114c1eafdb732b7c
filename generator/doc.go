// Package generator carves perfect mazes into a grid.Grid using a family of
// randomized spanning-tree algorithms, and can braid them afterwards.
//
// What
//
//   - Every algorithm has the signature Func: func(g *grid.Grid, rng grid.Rand) error.
//   - Each one mutates g in place, opening exactly Size()-1 passages so that every cell
//     is reachable from every other along exactly one simple path (a spanning tree).
//   - Braid post-processes a perfect maze, removing dead ends and thereby adding loops.
//   - A registry maps stable algorithm names to functions for CLI-style selection.
//
// Algorithms
//
//   - BinaryTree            per cell, link north or east.          Biased: clear north row and east column.
//   - Sidewinder            row runs closed by coin flips.         Biased: clear north row.
//   - AldousBroder          random walk, link first entries.       Uniform spanning tree, slow to finish.
//   - Wilson                loop-erased random walks.              Uniform spanning tree, slow to start.
//   - HuntAndKill           random walk plus row-major hunt.       Long winding corridors.
//   - RecursiveBacktracker  random DFS with an explicit stack.     Long corridors, few dead ends.
//   - Kruskal               shuffled walls plus union-find.        Many short dead ends.
//   - Prim                  min-heap over random cell weights.     Radial texture.
//
// Determinism
//
//	Generators read randomness only from the rng argument. The same rng sequence on
//	equally sized grids yields identical linkage. A nil rng falls back to NewRand(0).
//
// Degenerate grids
//
//	A grid with a single cell is already a complete maze: generators return nil at once
//	without consuming randomness.
//
// Complexity (N = rows×cols)
//
//   - BinaryTree, Sidewinder:         O(N)
//   - HuntAndKill:                    O(N²) worst case (row-major hunt)
//   - RecursiveBacktracker:           O(N)
//   - Kruskal:                        O(N·α(N))
//   - Prim:                           O(N log N)
//   - AldousBroder, Wilson:           expected superlinear (cover time of the grid graph)
//
// Usage
//
//	g, _ := grid.New(10, 10)
//	if err := generator.Wilson(g, generator.NewRand(42)); err != nil {
//		// handle ErrGridNil
//	}
//
//	// Or by name, with braiding:
//	opts := generator.DefaultOptions()
//	opts.Algorithm = generator.AlgoKruskal
//	opts.Seed = 42
//	opts.Braid = 0.5
//	err := generator.Generate(g, opts)
//
// Errors
//
//   - ErrGridNil           if g is nil.
//   - ErrUnknownAlgorithm  if a name is not registered.
//   - ErrOptionViolation   if Braid is outside [0,1].
package generator
