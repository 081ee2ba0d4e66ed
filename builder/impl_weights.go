// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_weights.go — overlay random weights on an existing edge set.
//
// Contract:
//   • Every edge (u<v) present in a receives weightFn(rng), written to both
//     directions. Non-edges stay 0.
//   • Edges are visited in (u,v) ascending order, so a fixed seed yields a
//     fixed weighting.
//   • cfg.rng must be non-nil (else ErrNeedRandSource) unless the weight
//     function was set by WithConstantWeight.
//   • A weight ≤ 0 from a custom WeightFn → ErrOptionViolation.
//
// Complexity: O(n²) dense / O(V+E) sparse.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/adjacency"
)

// AssignWeights replaces the weight of every existing edge of a.
func AssignWeights(a adjacency.Adjacency, opts ...BuilderOption) error {
	if a == nil {
		return builderErrorf(MethodAssignWeights, ErrNilGraph, "adjacency store")
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && !cfg.constant {
		return builderErrorf(MethodAssignWeights, ErrNeedRandSource, "n=%d", a.Order())
	}

	for _, e := range adjacency.Edges(a) {
		w := cfg.weightFn(cfg.rng)
		if w < 1 {
			return builderErrorf(MethodAssignWeights, ErrOptionViolation, "edge %d-%d got weight %d", e.U, e.V, w)
		}
		if err := a.SetEdge(e.U, e.V, w); err != nil {
			return fmt.Errorf("%s: SetEdge(%d,%d): %w", MethodAssignWeights, e.U, e.V, err)
		}
	}

	return nil
}
