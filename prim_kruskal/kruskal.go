// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphkit/adjacency"
	"github.com/katalvlaran/graphkit/bfs"
)

// Kruskal computes a minimum spanning forest of a.
//
// Error Conditions:
//   - ErrInvalidGraph : a is nil or carries a negative weight.
//
// Steps:
//  1. Collect edges (U<V, ascending) and stable-sort them by weight.
//  2. Union-find with path compression and union by rank; accept an edge
//     when its endpoints lie in different sets.
//  3. Stop at n-1 accepted edges.
//  4. Orient the accepted edges from the lowest vertex of each component
//     so Parent and Key read like Prim's output.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(a adjacency.Adjacency) (*Tree, error) {
	if err := validate(a); err != nil {
		return nil, err
	}
	n := a.Order()
	root := NoParent
	if n > 0 {
		root = 0
	}
	t := newTree(n, root)
	if n == 0 {
		return t, nil
	}

	edges := adjacency.Edges(a)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds := newDisjointSet(n)
	accepted := make([]adjacency.Edge, 0, n-1)
	for _, e := range edges {
		if !ds.union(e.U, e.V) {
			continue
		}
		accepted = append(accepted, e)
		if len(accepted) == n-1 {
			break
		}
	}

	if err := orient(t, accepted); err != nil {
		return nil, err
	}

	return t, nil
}

// orient fills Parent, Key and Edges of t from an acyclic edge set by
// walking each component breadth-first from its lowest vertex.
func orient(t *Tree, accepted []adjacency.Edge) error {
	n := len(t.Parent)
	forest, err := adjacency.NewSparse(n)
	if err != nil {
		return err
	}
	for _, e := range accepted {
		if err = forest.SetEdge(e.U, e.V, e.Weight); err != nil {
			return fmt.Errorf("prim_kruskal: forest edge %v: %w", e, err)
		}
	}

	seen := make([]bool, n)
	for r := 0; r < n; r++ {
		if seen[r] {
			continue
		}
		res, err := bfs.BFS(forest, r)
		if err != nil {
			return fmt.Errorf("prim_kruskal: orient from %d: %w", r, err)
		}
		for _, v := range res.Order {
			seen[v] = true
			if p := res.Parent[v]; p != bfs.Unvisited {
				t.Parent[v] = p
				t.Key[v] = forest.Weight(p, v)
			} else {
				t.Key[v] = 0
			}
		}
	}

	t.Edges = t.Edges[:0]
	for _, e := range accepted {
		if t.Parent[e.U] == e.V {
			e.U, e.V = e.V, e.U
		}
		t.Edges = append(t.Edges, e)
		t.Weight += e.Weight
	}

	return nil
}

// disjointSet is a union-find forest over 0..n-1.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the set representative with iterative path halving.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
