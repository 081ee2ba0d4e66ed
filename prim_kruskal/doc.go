// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning trees on an
// adjacency.Adjacency with non-negative integer weights.
//
// Algorithms Provided
//
//   - Prim(a, root) (*Tree, error)
//
//   - Strategy: array form. Every vertex carries a key (cheapest known edge
//     into the tree) and a parent. Each round moves the outside vertex with
//     the smallest finite key into the tree (lowest id on ties) and lowers
//     the keys of its outside neighbours with a strict < comparison.
//
//   - Complexity: O(n²) time, O(n) space. No heap: scanning a dense row
//     already costs O(n) per vertex.
//
//   - Vertices the root cannot reach keep Parent == NoParent and
//     Key == Unreached. This is reported by Tree.Spanning, not as an error.
//
//   - Kruskal(a) (*Tree, error)
//
//   - Strategy: sort all edges by weight (stable, so ties keep (U,V) order)
//     and merge components with a disjoint-set forest using path
//     compression and union by rank.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - The result is a spanning forest, oriented from the lowest vertex of
//     each component so it shares the Tree shape with Prim.
//
// On a connected graph both algorithms return trees of equal total weight.
// The edge sets may differ when several minimum trees exist.
//
// Compute dispatches on MSTOptions.Method; with RequireSpanning set it turns
// an incomplete tree into ErrDisconnected.
//
// Errors (sentinel):
//
//   - ErrInvalidGraph   nil graph or negative weight.
//   - ErrUnknownMethod  method name other than prim or kruskal.
//   - ErrRootOutOfRange Prim root outside [0,n).
//   - ErrDisconnected   only from Compute with RequireSpanning.
package prim_kruskal
