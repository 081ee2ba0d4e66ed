// SPDX-License-Identifier: MIT

// Package builder provides validation helpers that enforce parameter
// contracts in the constructors.
package builder

import "github.com/katalvlaran/graphkit/adjacency"

// validateMin ensures got ≥ min, returning ErrTooFewVertices with context otherwise.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateStore ensures a is non-nil and has exactly n vertices.
// Complexity: O(1).
func validateStore(method string, a adjacency.Adjacency, n int) error {
	if a == nil {
		return builderErrorf(method, ErrNilGraph, "adjacency store")
	}
	if a.Order() != n {
		return builderErrorf(method, ErrDimensionMismatch, "len(seq)=%d, order=%d", n, a.Order())
	}

	return nil
}
