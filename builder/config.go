// SPDX-License-Identifier: MIT
// Package: gridbfs/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • seed    = defaultSeed
//   • density = 0.0   (open grid)
//   • clear   = none

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gridbfs/gridgraph"
)

// defaultSeed is used when no WithSeed is given, keeping Random reproducible.
const defaultSeed int64 = 1

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// RNG for obstacle placement.
	rng *rand.Rand
	// Probability that a cell is blocked.
	density float64
	// Cells forced passable after generation.
	clear []gridgraph.Coordinate
	// First option validation failure, surfaced by the constructor.
	err error
}

// newBuilderConfig applies options in order (later overrides earlier).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{rng: rand.New(rand.NewSource(defaultSeed))}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
