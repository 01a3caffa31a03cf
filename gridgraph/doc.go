// Package gridgraph models a fixed-size 2D grid of passable and blocked cells
// as an immutable passability map addressed by (row, col) coordinates.
//
// What:
//
//   - Grid wraps a rectangular [][]int (or [][]bool) input, deep-copied on build.
//   - Cells with value ≥ PassableThreshold are Passable; everything else is Blocked.
//   - Coordinate is a comparable (Row, Col) value; equality is structural.
//   - Row-major Index/Coordinate helpers let callers keep dense per-cell state.
//
// Why:
//
//   - Traversals borrow a *Grid read-only, so one Grid may be shared by any
//     number of concurrent traversals without locking.
//   - Bounds are checked on every query: IsPassable fails with ErrOutOfBounds
//     instead of panicking on a bad index.
//
// Complexity:
//
//   - NewGrid / FromBools: O(R×C) time and memory (one copy).
//   - InBounds, IsPassable, State, Index, Coordinate: O(1).
//   - PassableCount: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: coordinate outside [0,R)×[0,C).
package gridgraph
