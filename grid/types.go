// Package grid defines cell coordinates, directions, the random source contract,
// and sentinel errors for maze grids.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates rows or cols is zero or negative.
	ErrInvalidDimensions = errors.New("grid: rows and cols must be positive")
	// ErrOutOfBounds indicates a cell coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrNotAdjacent indicates an attempt to link cells that are not geometric neighbors.
	ErrNotAdjacent = errors.New("grid: cells are not adjacent")
)

// Cell identifies one grid position. Row grows southward, Col grows eastward.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction names one of the four orthogonal neighbors of a cell.
type Direction uint8

const (
	// North is the neighbor at Row-1.
	North Direction = 1 << iota
	// South is the neighbor at Row+1.
	South
	// East is the neighbor at Col+1.
	East
	// West is the neighbor at Col-1.
	West
)

// Directions lists all directions in the canonical N, S, E, W order used by
// Neighbors and Links.
var Directions = [4]Direction{North, South, East, West}

// offsets maps a direction to its (dRow, dCol) step.
func (d Direction) offset() (int, int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return 0
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Rand is the random source consumed by RandomCell and by maze generators.
// *math/rand.Rand satisfies it. Implementations are not expected to be
// goroutine-safe; each generation run should own its source.
type Rand interface {
	// Intn returns a uniform integer in [0,n). n > 0.
	Intn(n int) int
	// Float64 returns a uniform float in [0.0,1.0).
	Float64() float64
}

// Grid is a fixed rows×cols maze lattice with a symmetric linkage relation.
// links[i] holds the Direction bits open from the cell with row-major index i.
type Grid struct {
	rows, cols int
	links      []Direction
}
