// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over an adjacency.Adjacency,
// returning unweighted hop distances, parent links and visit order, plus
// connected-component helpers built on top of it.
//
// Neighbours are visited in ascending vertex order, so results are fully
// deterministic. Hooks (OnVisit) and a depth limit (WithMaxDepth) mirror the
// knobs of the other traversal packages; a context allows cancellation.
//
// Complexity: O(n²) on Dense stores (Neighbors is a row scan), O(V+E·log d)
// on Sparse stores.
package bfs
