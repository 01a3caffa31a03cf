package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// values[r][c] ≥ opts.PassableThreshold marks (r,c) passable.
// The input is copied; later changes to values do not affect the Grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	rows, cols, err := dims(len(values), func(r int) int { return len(values[r]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]CellState, rows*cols)}
	for r, row := range values {
		for c, v := range row {
			if v >= opts.PassableThreshold {
				g.cells[r*cols+c] = Passable
			}
		}
	}

	return g, nil
}

// From2D builds a Grid with DefaultGridOptions (1 = passable, 0 = blocked).
func From2D(values [][]int) (*Grid, error) {
	return NewGrid(values, DefaultGridOptions())
}

// FromBools constructs a Grid where true marks a passable cell.
// Same validation rules as NewGrid.
func FromBools(values [][]bool) (*Grid, error) {
	rows, cols, err := dims(len(values), func(r int) int { return len(values[r]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]CellState, rows*cols)}
	for r, row := range values {
		for c, ok := range row {
			if ok {
				g.cells[r*cols+c] = Passable
			}
		}
	}

	return g, nil
}

// dims validates the shape reported by rowLen and returns (rows, cols).
func dims(rows int, rowLen func(r int) int) (int, int, error) {
	if rows == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	cols := rowLen(0)
	for r := 1; r < rows; r++ {
		if rowLen(r) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, rowLen(r), cols)
		}
	}

	return rows, cols, nil
}

// Rows returns R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns C.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total cell count R×C.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies within [0,R)×[0,C).
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// State returns the state of cell c, or ErrOutOfBounds.
func (g *Grid) State(c Coordinate) (CellState, error) {
	if !g.InBounds(c) {
		return Blocked, fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return g.cells[g.Index(c)], nil
}

// IsPassable reports whether cell c is passable.
// Fails with ErrOutOfBounds if c lies outside the grid.
// Complexity: O(1).
func (g *Grid) IsPassable(c Coordinate) (bool, error) {
	s, err := g.State(c)
	if err != nil {
		return false, err
	}
	return s == Passable, nil
}

// PassableCount returns the number of passable cells.
// Complexity: O(R×C).
func (g *Grid) PassableCount() int {
	n := 0
	for _, s := range g.cells {
		if s == Passable {
			n++
		}
	}
	return n
}

// Index maps c to its row-major index: Row*C + Col.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coordinate) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.cols, Col: idx % g.cols}
}

// Values returns a fresh [][]int copy of the grid (1 = passable, 0 = blocked).
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := range out[r] {
			if g.cells[r*g.cols+c] == Passable {
				out[r][c] = 1
			}
		}
	}
	return out
}

// String renders the grid one row per line, '1' for passable and '0' for blocked.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] == Passable {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
