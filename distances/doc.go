// Package distances computes shortest-path distance fields over a carved maze
// by breadth-first propagation across open passages.
//
// What
//
//   - Build(g, root, opts...) returns a *Distances: hop count from root to every reachable cell.
//   - Distances records the traversal order so Max breaks ties deterministically.
//   - PathTo(target) walks strictly decreasing distances from target back to root.
//   - Breadcrumbs(target) restricts the field to that path, for render overlays.
//   - Diameter(g) finds the longest shortest path with two BFS passes.
//
// Why
//
//   - Solve a maze (root = entrance, PathTo(exit)).
//   - Pick interesting entrances: the two ends of the diameter are the farthest pair.
//   - Visualize texture: coloring cells by distance shows the algorithm's bias.
//
// Determinism
//
//	Neighbors are expanded in the grid's N, S, E, W order, so the visit order, Max and
//	PathTo are fully reproducible for a given grid.
//
// Complexity (N = rows×cols; a maze has at most 2N links)
//
//   - Build:        O(N) time, O(N) memory.
//   - Max:          O(N).
//   - PathTo:       O(length of path).
//   - Diameter:     two Builds, O(N).
//
// Options
//
//   - WithMaxDepth(d):  stop propagating past depth d (>0); 0 means no limit.
//   - WithOnVisit(fn):  hook on each dequeued cell; returning an error aborts Build.
//
// Errors
//
//   - ErrGridNil          if g is nil.
//   - grid.ErrOutOfBounds if root is not a cell of g.
//   - ErrOptionViolation  for invalid options (negative MaxDepth).
//   - ErrUnreachable      if PathTo/Breadcrumbs target has no recorded distance.
//   - Wrapped hook errors from OnVisit.
//
// Concurrency
//
//	Build only reads the grid. Several fields may be built concurrently over the same
//	completed grid, never while a generator is still mutating it.
package distances
