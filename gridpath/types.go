// Package gridpath defines the result types and errors of the right/down
// grid shortest-path solver.
package gridpath

import "errors"

var (
	// ErrEmptyGrid indicates a grid with zero rows or zero columns.
	ErrEmptyGrid = errors.New("gridpath: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridpath: all rows must have the same length")
)

// Coord addresses one cell.
type Coord struct {
	Row int
	Col int
}

// Move records how the cheapest route entered a cell.
type Move uint8

const (
	// MoveStart marks the top-left cell.
	MoveStart Move = iota
	// MoveFromAbove means the route came down from (r-1, c).
	MoveFromAbove
	// MoveFromLeft means the route came right from (r, c-1).
	MoveFromLeft
)

// String returns a short human-readable name.
func (m Move) String() string {
	switch m {
	case MoveStart:
		return "start"
	case MoveFromAbove:
		return "above"
	case MoveFromLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Result holds the solved grid.
//
//   - Cost  — cheapest total from (0,0) to (rows-1, cols-1), both ends included.
//   - Path  — visited cells in travel order, starting at (0,0).
//   - Table — Table[r][c] is the cheapest total reaching (r,c).
//   - Moves — Moves[r][c] is the step chosen to enter (r,c).
type Result struct {
	Cost  float64
	Path  []Coord
	Table [][]float64
	Moves [][]Move
}
