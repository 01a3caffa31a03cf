// SPDX-License-Identifier: MIT
// Package: gridbfs/builder
//
// impl_grid.go — Open(rows, cols) and Random(rows, cols, opts...) constructors.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewCells).
//   • Cells are drawn in row-major order, one RNG draw per cell.
//   • WithClearCell cells are applied last and always end up passable.
//
// Complexity:
//   • Time: O(rows*cols).
//   • Space: O(rows*cols) for the value matrix handed to gridgraph.
//
// Determinism:
//   • Stable draw order: row-major (r asc, then c asc).
//   • Identical output for identical (rows, cols, seed, density, clear).

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridbfs/gridgraph"
)

// File-local constants: method tags and minima.
const (
	methodOpen   = "Open"
	methodRandom = "Random"
	minGridDim   = 1
)

// Open returns a rows×cols grid with every cell passable.
func Open(rows, cols int) (*gridgraph.Grid, error) {
	if err := validateDims(methodOpen, rows, cols); err != nil {
		return nil, err
	}
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			values[r][c] = 1
		}
	}
	return gridgraph.From2D(values)
}

// Random returns a rows×cols grid where each cell is blocked with the
// configured density (default 0), then applies WithClearCell.
func Random(rows, cols int, opts ...Option) (*gridgraph.Grid, error) {
	// 1) Validate parameters early (fail fast; no partial work).
	if err := validateDims(methodRandom, rows, cols); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, builderErrorf(methodRandom, "options", cfg.err)
	}

	// 2) Draw every cell in row-major order; one draw per cell keeps the
	//    stream aligned regardless of density.
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			if cfg.rng.Float64() >= cfg.density {
				values[r][c] = 1
			}
		}
	}

	// 3) Force requested cells open.
	for _, cell := range cfg.clear {
		if cell.Row >= 0 && cell.Row < rows && cell.Col >= 0 && cell.Col < cols {
			values[cell.Row][cell.Col] = 1
		}
	}

	return gridgraph.From2D(values)
}

// validateDims enforces rows, cols ≥ minGridDim.
func validateDims(method string, rows, cols int) error {
	if rows < minGridDim || cols < minGridDim {
		return builderErrorf(method, fmt.Sprintf("rows=%d, cols=%d (each must be ≥ %d)", rows, cols, minGridDim), ErrTooFewCells)
	}
	return nil
}
