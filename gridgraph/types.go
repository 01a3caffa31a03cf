package gridgraph

import "fmt"

// CellState is the passability of a single grid cell.
type CellState uint8

const (
	// Blocked cells are never entered by a traversal.
	Blocked CellState = iota
	// Passable cells may be entered and expanded.
	Passable
)

// String returns "passable" or "blocked".
func (s CellState) String() string {
	if s == Passable {
		return "passable"
	}
	return "blocked"
}

// Coordinate addresses a cell by row and column. Two coordinates are equal
// iff both components match, so Coordinate is usable as a map key.
type Coordinate struct {
	Row, Col int
}

// At is shorthand for Coordinate{Row: row, Col: col}.
func At(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Add returns c shifted by the given row and column deltas.
func (c Coordinate) Add(dRow, dCol int) Coordinate {
	return Coordinate{Row: c.Row + dRow, Col: c.Col + dCol}
}

// String renders the coordinate as "(row, col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// PassableThreshold specifies the minimum cell value considered passable.
	PassableThreshold int
}

// DefaultGridOptions returns GridOptions with PassableThreshold=1
// (1 = passable, 0 = blocked).
func DefaultGridOptions() GridOptions {
	return GridOptions{PassableThreshold: 1}
}

// Grid is an immutable R×C passability map. It has no mutators; every
// accessor is safe for concurrent use.
type Grid struct {
	rows, cols int
	cells      []CellState // row-major, len == rows*cols
}
