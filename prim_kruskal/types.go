// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphkit/adjacency"
)

// ErrInvalidGraph indicates that MST algorithms require a non-nil graph
// with non-negative weights.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil graph with non-negative weights")

// ErrUnknownMethod indicates a method name other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrRootOutOfRange indicates a Prim root outside [0,n).
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that the tree does not reach every vertex.
// Returned only by Compute when RequireSpanning is set.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

const (
	// NoParent marks the root and every vertex the tree never reached.
	NoParent = -1

	// Unreached is the key of a vertex no tree edge touches.
	Unreached int64 = math.MaxInt64
)

// MethodPrim selects Prim's algorithm (grow from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Tree is the result of an MST computation.
//
// Parent[v] is the tree neighbour of v on the way to its root, NoParent for
// roots and unreached vertices. Key[v] is the weight of edge (Parent[v], v),
// 0 for roots and Unreached for unreached vertices. Edges lists tree edges in
// the order they were accepted, oriented parent→child.
type Tree struct {
	Root   int
	Parent []int
	Key    []int64
	Edges  []adjacency.Edge
	Weight int64
}

// Spanning reports whether the tree reaches every vertex, i.e. exactly one
// vertex has no parent. An empty graph is trivially spanned.
func (t *Tree) Spanning() bool {
	if len(t.Parent) == 0 {
		return true
	}

	return len(t.Edges) == len(t.Parent)-1
}

// Reached reports whether v belongs to the tree.
func (t *Tree) Reached(v int) bool {
	return v >= 0 && v < len(t.Key) && t.Key[v] != Unreached
}

// MSTOptions configures which MST algorithm to run.
//
// Fields:
//
//	Method          – MethodPrim or MethodKruskal.
//	Root            – start vertex for Prim; ignored by Kruskal.
//	RequireSpanning – fail with ErrDisconnected when the result is a forest.
type MSTOptions struct {
	Method          string
	Root            int
	RequireSpanning bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithRequireSpanning makes Compute reject spanning forests.
func WithRequireSpanning() Option {
	return func(opts *MSTOptions) {
		opts.RequireSpanning = true
	}
}

// DefaultOptions returns MSTOptions initialized for Prim, matching ParseMethod(""):
//
//	– Method = MethodPrim
//	– Root   = 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   0,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ParseMethod validates a method name; "" selects MethodPrim.
func ParseMethod(s string) (string, error) {
	switch s {
	case "", MethodPrim:
		return MethodPrim, nil
	case MethodKruskal:
		return MethodKruskal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(a).
//	– MethodPrim:    Prim(a, opts.Root).
//	– otherwise:     ErrUnknownMethod.
func Compute(a adjacency.Adjacency, opts MSTOptions) (*Tree, error) {
	var (
		t   *Tree
		err error
	)
	switch opts.Method {
	case MethodKruskal:
		t, err = Kruskal(a)
	case MethodPrim:
		t, err = Prim(a, opts.Root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
	if err != nil {
		return nil, err
	}
	if opts.RequireSpanning && !t.Spanning() {
		return nil, fmt.Errorf("%w: %d of %d vertices in tree", ErrDisconnected, len(t.Edges)+1, len(t.Parent))
	}

	return t, nil
}

// validate rejects nil graphs and negative weights.
func validate(a adjacency.Adjacency) error {
	if a == nil {
		return ErrInvalidGraph
	}
	for u := 0; u < a.Order(); u++ {
		for _, v := range a.Neighbors(u) {
			if w := a.Weight(u, v); w < 0 {
				return fmt.Errorf("%w: edge %d-%d weight=%d", ErrInvalidGraph, u, v, w)
			}
		}
	}

	return nil
}

// newTree returns a tree over n vertices with every vertex unreached.
func newTree(n, root int) *Tree {
	t := &Tree{
		Root:   root,
		Parent: make([]int, n),
		Key:    make([]int64, n),
		Edges:  make([]adjacency.Edge, 0, max(n-1, 0)),
	}
	for v := 0; v < n; v++ {
		t.Parent[v] = NoParent
		t.Key[v] = Unreached
	}

	return t
}
