// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached at the detection site with "%s: ...: %w".
//   • Algorithms never panic; option constructors may.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter is below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNotGraphical indicates that Havel–Hakimi could not realize the sequence:
// either the largest remaining degree is ≥ n, or a reduction step drove some
// degree below zero. It is a terminal outcome for the sequence, not a crash.
var ErrNotGraphical = errors.New("builder: degree sequence is not graphical")

// ErrDimensionMismatch indicates that len(seq) != a.Order().
var ErrDimensionMismatch = errors.New("builder: sequence length does not match vertex count")

// ErrNilGraph indicates a nil adjacency store.
var ErrNilGraph = errors.New("builder: graph is nil")

// ErrOptionViolation indicates that a configured function produced a value
// the builder cannot store (e.g. a weight ≤ 0, which would erase the edge).
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf wraps a sentinel with the method context:
// "<Method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
