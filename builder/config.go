// SPDX-License-Identifier: MIT
// Package: sparsepath/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                (stochastic constructors require WithSeed/WithRand)
//   • weightFn = DefaultWeightFn    (uniform integer in [1,10])
//   • firstID  = 1                  (node keys 1..n)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/sparsepath/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Key of the first generated node; node i (0-based) gets firstID+i.
	firstID core.NodeID
}

const defaultFirstID core.NodeID = 1

// newBuilderConfig starts from the defaults and applies opts in order
// (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		firstID:  defaultFirstID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nodeID maps a 0-based index to its node key.
func (c builderConfig) nodeID(i int) core.NodeID {
	return c.firstID + core.NodeID(i)
}
