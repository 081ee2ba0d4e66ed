// SPDX-License-Identifier: MIT

package adjacency

import (
	"errors"
	"fmt"
)

// Sentinel errors for adjacency stores.
var (
	// ErrBadOrder indicates a negative vertex count was requested.
	ErrBadOrder = errors.New("adjacency: vertex count must be ≥ 0")

	// ErrOutOfRange indicates a vertex index outside [0,n).
	ErrOutOfRange = errors.New("adjacency: vertex index out of range")

	// ErrSelfLoop indicates an attempt to store an edge (i,i).
	ErrSelfLoop = errors.New("adjacency: self-loop not allowed")

	// ErrNegativeWeight indicates an attempt to store a negative weight.
	ErrNegativeWeight = errors.New("adjacency: negative weight not allowed")

	// ErrAsymmetric indicates that cell (i,j) differs from cell (j,i).
	ErrAsymmetric = errors.New("adjacency: matrix is not symmetric")

	// ErrNilGraph indicates a nil Adjacency was passed to a helper.
	ErrNilGraph = errors.New("adjacency: graph is nil")
)

// Adjacency is the accessor capability every algorithm is written against.
// Implementations must keep the store symmetric and loop-free.
type Adjacency interface {
	// Order returns the number of vertices n.
	Order() int

	// Weight returns the weight of edge (u,v), or 0 if absent or out of range.
	Weight(u, v int) int64

	// HasEdge reports whether Weight(u,v) > 0.
	HasEdge(u, v int) bool

	// SetEdge stores weight w on (u,v) and (v,u). w == 0 removes the edge.
	SetEdge(u, v int, w int64) error

	// RemoveEdge clears (u,v) and (v,u). Removing a missing edge is a no-op.
	RemoveEdge(u, v int) error

	// Neighbors returns the vertices adjacent to u in ascending order.
	Neighbors(u int) []int

	// Clone returns an independent deep copy.
	Clone() Adjacency
}

// Edge is an undirected edge with U < V.
type Edge struct {
	U, V   int
	Weight int64
}

// String renders the edge as "U-V(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.U, e.V, e.Weight)
}

// checkPair validates a write against the shared invariants.
func checkPair(method string, n, u, v int, w int64) error {
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("%s(%d,%d): %w", method, u, v, ErrOutOfRange)
	}
	if u == v {
		return fmt.Errorf("%s(%d,%d): %w", method, u, v, ErrSelfLoop)
	}
	if w < 0 {
		return fmt.Errorf("%s(%d,%d): weight=%d: %w", method, u, v, w, ErrNegativeWeight)
	}

	return nil
}
