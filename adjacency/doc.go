// SPDX-License-Identifier: MIT

// Package adjacency provides the adjacency accessor capability shared by every
// algorithm in graphkit, plus two interchangeable stores.
//
// A graph over n vertices is addressed by integer IDs 0..n-1. Cell (i,j) holds
// 0 when there is no edge and a positive weight otherwise. During unweighted
// construction any positive value simply means “edge present” (weight 1).
//
// Invariants enforced by every store on write:
//
//   - Symmetry: SetEdge(i,j,w) also writes (j,i); RemoveEdge clears both.
//   - No self-loops: SetEdge(i,i,·) → ErrSelfLoop.
//   - Non-negative weights: SetEdge(·,·,w<0) → ErrNegativeWeight.
//   - Bounds: any index outside [0,n) on write → ErrOutOfRange.
//
// Reads never fail: Weight/HasEdge return 0/false for out-of-range pairs, so
// algorithms validate their entry vertex once and then iterate freely.
//
// Stores:
//
//	Dense  — row-major flat []int64 of length n·n. O(1) reads and writes,
//	         O(n) Neighbors. The reference representation.
//	Sparse — map-of-maps adjacency list. O(1) expected reads and writes,
//	         O(d·log d) Neighbors (sorted for determinism).
//
// Helpers operating on the interface:
//
//	Degree, Degrees, EdgeCount, Edges, TotalWeight, Validate
//
// Complexity notes are given per method.
package adjacency
