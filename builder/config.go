// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                          (stochastic calls fail fast)
//   • weightFn = UniformIntWeightFn(1, 10)
//   • mode     = RealizeTracked

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value.
type builderConfig struct {
	rng      *rand.Rand  // nil means “no randomness available”
	weightFn WeightFn    // per-edge weight generator
	constant bool        // weightFn ignores rng (WithConstantWeight)
	mode     RealizeMode // Havel–Hakimi bookkeeping variant
}

// newBuilderConfig applies options in order (last wins) over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: UniformIntWeightFn(DefaultMinWeight, DefaultMaxWeight),
		mode:     RealizeTracked,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
