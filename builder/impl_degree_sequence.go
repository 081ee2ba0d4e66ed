// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_degree_sequence.go — random candidate degree sequences.
//
// Contract:
//   • n ≥ 0 (else ErrTooFewVertices); n == 0 yields an empty, non-nil slice.
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Each value is drawn independently from [0, n-1]; the result is sorted
//     non-increasing. It is a candidate only: graphicality is not checked.
//
// Complexity: O(n log n) time, O(n) space.

package builder

import "sort"

// DegreeSequence draws n degrees uniformly from [0, n-1] and sorts them
// in non-increasing order.
func DegreeSequence(n int, opts ...BuilderOption) ([]int, error) {
	if err := validateMin(MethodDegreeSequence, n, 0); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodDegreeSequence, ErrNeedRandSource, "n=%d", n)
	}

	seq := make([]int, n)
	for i := 0; i < n; i++ {
		seq[i] = cfg.rng.Intn(n)
	}
	SortDescending(seq)

	return seq, nil
}

// SortDescending sorts seq in place into non-increasing order.
// Complexity: O(n log n).
func SortDescending(seq []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(seq)))
}

// IsNonIncreasing reports whether seq[i] ≥ seq[i+1] for every i.
// Complexity: O(n).
func IsNonIncreasing(seq []int) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i] > seq[i-1] {
			return false
		}
	}

	return true
}
