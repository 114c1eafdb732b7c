// Package distances provides tunable options, error definitions and the
// Distances result type for breadth-first distance fields.
package distances

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for distance computation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("distances: grid is nil")

	// ErrUnreachable is returned when a path is requested to a cell with no recorded distance.
	ErrUnreachable = errors.New("distances: cell is unreachable from root")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distances: invalid option supplied")
)

// Option configures Build via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when Build is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize Build.
type Options struct {
	// OnVisit is called for each cell as it is dequeued, with its distance.
	// Returning an error aborts Build.
	OnVisit func(c grid.Cell, depth int) error

	// MaxDepth, if > 0, stops propagation beyond this distance.
	// A value of 0 disables any limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(grid.Cell, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback to run on each visited cell.
func WithOnVisit(fn func(c grid.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops propagation at the given distance (inclusive).
//
//	d > 0: cells farther than d are left unrecorded
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Distances is an immutable distance field rooted at one cell.
// dist is indexed row-major; -1 marks cells without a recorded distance.
type Distances struct {
	g     *grid.Grid
	root  grid.Cell
	dist  []int
	order []grid.Cell
}

// Root returns the cell the field was built from.
func (d *Distances) Root() grid.Cell { return d.root }

// Len returns the number of cells with a recorded distance.
func (d *Distances) Len() int { return len(d.order) }

// Get returns the distance of c and whether it was recorded.
// Complexity: O(1).
func (d *Distances) Get(c grid.Cell) (int, bool) {
	idx, err := d.g.Index(c)
	if err != nil || d.dist[idx] < 0 {
		return 0, false
	}
	return d.dist[idx], true
}

// Order returns the recorded cells in traversal order (non-decreasing distance).
// The returned slice is a copy.
func (d *Distances) Order() []grid.Cell {
	out := make([]grid.Cell, len(d.order))
	copy(out, d.order)
	return out
}

// Max returns the cell with the greatest distance and that distance.
// Ties go to the cell encountered first in traversal order.
// Complexity: O(N).
func (d *Distances) Max() (grid.Cell, int) {
	best, bestDist := d.root, 0
	for _, c := range d.order {
		if v := d.dist[d.mustIndex(c)]; v > bestDist {
			best, bestDist = c, v
		}
	}
	return best, bestDist
}

// mustIndex is Index for cells already known to belong to the grid.
func (d *Distances) mustIndex(c grid.Cell) int {
	idx, _ := d.g.Index(c)
	return idx
}
