// SPDX-License-Identifier: MIT

// Package builder provides helper functions and types for configuring
// edge-weight distributions used by AssignWeights.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 1: a zero weight would erase the edge.
// Complexity: O(1).
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformIntWeightFn returns a WeightFn sampling integers uniformly in
// [min, max] inclusive. Panics unless 1 ≤ min ≤ max.
// If rng is nil, yields min as a deterministic fallback.
// Complexity: O(1).
func UniformIntWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
// AssignWeights then runs without an RNG.
func WithConstantWeight(w int64) BuilderOption {
	fn := ConstantWeightFn(w)
	return func(c *builderConfig) {
		c.weightFn = fn
		c.constant = true
	}
}

// WithUniformWeight sets weights ~U{min..max} via UniformIntWeightFn.
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformIntWeightFn(min, max))
}
