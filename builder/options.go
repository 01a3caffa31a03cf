// SPDX-License-Identifier: MIT
// Package: gridbfs/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Invalid values are recorded and returned by the constructor as
//     sentinel errors; constructors never panic.
//   • Determinism is explicit: seeding is done via WithSeed.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gridbfs/gridgraph"
)

// Option customizes a constructor by mutating a builderConfig before the
// grid is generated.
type Option func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDensity sets the probability p ∈ [0,1] that a generated cell is blocked.
// Out-of-range values make the constructor fail with ErrInvalidProbability.
func WithDensity(p float64) Option {
	return func(c *builderConfig) {
		if p < 0 || p > 1 || math.IsNaN(p) {
			if c.err == nil {
				c.err = fmt.Errorf("density=%v: %w", p, ErrInvalidProbability)
			}
			return
		}
		c.density = p
	}
}

// WithClearCell forces the given cells passable after obstacles are placed.
// Out-of-bounds cells are ignored.
func WithClearCell(cells ...gridgraph.Coordinate) Option {
	return func(c *builderConfig) {
		c.clear = append(c.clear, cells...)
	}
}
