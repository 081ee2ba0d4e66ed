// SPDX-License-Identifier: MIT

package eulerian

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil adjacency store.
	ErrNilGraph = errors.New("eulerian: graph is nil")

	// ErrVertexOutOfRange indicates a start vertex outside [0,n).
	ErrVertexOutOfRange = errors.New("eulerian: start vertex out of range")

	// ErrMalformedTrail indicates a sequence that does not use every edge
	// exactly once along consecutive pairs.
	ErrMalformedTrail = errors.New("eulerian: malformed trail")

	// ErrNotEulerian indicates a graph with neither 0 nor 2 odd-degree vertices.
	ErrNotEulerian = errors.New("eulerian: graph has no Eulerian trail")
)

// Kind is the Eulerian classification of a graph.
type Kind int

const (
	// None: more than two odd-degree vertices.
	None Kind = iota
	// Path: exactly two odd-degree vertices; a trail must start at one of them.
	Path
	// Circuit: every degree is even; a closed trail exists.
	Circuit
)

// String returns "none", "path" or "circuit".
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Path:
		return "path"
	case Circuit:
		return "circuit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Analysis is the full read-only inspection of a graph.
type Analysis struct {
	Kind        Kind  // parity classification
	OddVertices []int // odd-degree vertices, ascending
	Edges       int   // |E|
	Connected   bool  // all edges lie in one component
}

// Eulerian reports whether the parity condition holds (Circuit or Path).
func (an Analysis) Eulerian() bool {
	return an.Kind != None
}

// Traversable reports whether Trail from StartVertex is guaranteed to
// produce a valid trail.
func (an Analysis) Traversable() bool {
	return an.Eulerian() && an.Connected
}
