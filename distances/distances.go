// Package distances provides breadth-first search over a grid.Grid's open
// passages, returning hop-count distances and the visit order.
package distances

import (
	"fmt"

	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/lvmaze/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  grid.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	g     *grid.Grid
	opts  Options
	queue *queue.Queue[queueItem]
	res   *Distances
}

// Build runs breadth-first propagation on g from root, applying any Options.
// Each cell's distance is set exactly once, when it is first reached, which
// yields shortest distances in the unweighted passage graph. Cells not
// reachable from root are absent from the result.
//
// Returns ErrGridNil, grid.ErrOutOfBounds for a foreign root,
// ErrOptionViolation for bad options, or a wrapped OnVisit error.
func Build(g *grid.Grid, root grid.Cell, opts ...Option) (*Distances, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// Validate root
	if !g.Contains(root) {
		return nil, fmt.Errorf("%w: root %v", grid.ErrOutOfBounds, root)
	}

	n := g.Size()
	w := &walker{
		g:     g,
		opts:  o,
		queue: queue.New[queueItem](),
		res: &Distances{
			g:     g,
			root:  root,
			dist:  make([]int, n),
			order: make([]grid.Cell, 0, n),
		},
	}
	for i := range w.res.dist {
		w.res.dist[i] = -1
	}

	w.enqueue(root, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// enqueue records c at depth d and adds it to the queue.
func (w *walker) enqueue(c grid.Cell, d int) {
	w.res.dist[w.res.mustIndex(c)] = d
	w.res.order = append(w.res.order, c)
	w.queue.Enqueue(queueItem{cell: c, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		item := w.queue.Dequeue()
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return fmt.Errorf("distances: OnVisit error at %v: %w", item.cell, err)
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.g.Links(item.cell) {
			// first time seen?
			if w.res.dist[w.res.mustIndex(nbr)] < 0 {
				w.enqueue(nbr, nextDepth)
			}
		}
	}
	return nil
}
