// SPDX-License-Identifier: MIT

// Package builder defines shared constants used to prefix errors with the
// constructor name and to fix weight defaults.
package builder

const (
	// MethodDegreeSequence is the canonical name for the DegreeSequence generator.
	MethodDegreeSequence = "DegreeSequence"
	// MethodHavelHakimi is the canonical name for the HavelHakimi realizer.
	MethodHavelHakimi = "HavelHakimi"
	// MethodRealize is the canonical name for the Realize convenience constructor.
	MethodRealize = "Realize"
	// MethodAssignWeights is the canonical name for the AssignWeights overlay.
	MethodAssignWeights = "AssignWeights"
)

const (
	// DefaultMinWeight is the lower bound of the default weight distribution.
	DefaultMinWeight int64 = 1
	// DefaultMaxWeight is the upper bound of the default weight distribution.
	DefaultMaxWeight int64 = 10
	// unweightedEdge marks “edge present” during realization.
	unweightedEdge int64 = 1
)
