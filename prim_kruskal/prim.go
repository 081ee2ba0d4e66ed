// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/graphkit/adjacency"
)

// Prim grows a minimum spanning tree from root.
//
// Error Conditions:
//   - ErrInvalidGraph   : a is nil or carries a negative weight.
//   - ErrRootOutOfRange : root outside [0,n), including n == 0.
//
// Steps:
//  1. key[root] = 0, every other key Unreached, every parent NoParent.
//  2. Up to n rounds: take the outside vertex with the smallest finite key
//     (lowest id on ties); stop when none is finite.
//  3. Add it to the tree, record edge (parent, v) unless v is the root.
//  4. For each outside neighbour u with weight(v,u) < key[u]: key[u] = weight,
//     parent[u] = v.
//
// Complexity: O(n²) time, O(n) memory. a is never modified.
func Prim(a adjacency.Adjacency, root int) (*Tree, error) {
	if err := validate(a); err != nil {
		return nil, err
	}
	n := a.Order()
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, root, n)
	}

	t := newTree(n, root)
	t.Key[root] = 0
	inTree := make([]bool, n)

	for round := 0; round < n; round++ {
		v := lightest(t.Key, inTree)
		if v < 0 {
			break
		}
		inTree[v] = true
		if p := t.Parent[v]; p != NoParent {
			t.Edges = append(t.Edges, adjacency.Edge{U: p, V: v, Weight: t.Key[v]})
			t.Weight += t.Key[v]
		}
		for _, u := range a.Neighbors(v) {
			if inTree[u] {
				continue
			}
			if w := a.Weight(v, u); w < t.Key[u] {
				t.Key[u] = w
				t.Parent[u] = v
			}
		}
	}

	return t, nil
}

// lightest returns the outside vertex with the smallest finite key, lowest
// id on ties, or -1.
func lightest(key []int64, inTree []bool) int {
	best, bestKey := -1, Unreached
	for v, k := range key {
		if !inTree[v] && k < bestKey {
			best, bestKey = v, k
		}
	}

	return best
}
