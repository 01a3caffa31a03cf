// Package builder provides deterministic generators for gridgraph.Grid
// fixtures: fully open grids and grids with randomly placed obstacles.
//
// The package offers the following key components:
//
//   - Constructors:
//     – Open(rows, cols):          every cell passable.
//     – Random(rows, cols, opts):  each cell blocked with probability Density.
//   - Configuration primitives:
//     – Option:        a function that mutates builderConfig before use.
//     – WithSeed:      fixes the RNG so the same seed yields the same grid.
//     – WithDensity:   blocked-cell probability in [0,1].
//     – WithClearCell: forces specific cells passable (e.g. a traversal start).
//
// Guarantees:
//
//   - Deterministic output for a fixed seed and option list.
//   - Sentinel errors only (ErrTooFewCells, ErrInvalidProbability); never panics.
//   - O(rows·cols) time and memory per constructor.
//
// Used by benchmarks, examples and the `gridbfs generate` command.
package builder
