// SPDX-License-Identifier: MIT

package adjacency

import "fmt"

// Degree counts the non-zero cells in row u, independent of weight.
// Complexity: O(deg) for Sparse, O(n) for Dense.
func Degree(a Adjacency, u int) int {
	return len(a.Neighbors(u))
}

// Degrees returns Degree for every vertex, indexed by vertex id.
// Complexity: O(n²) dense, O(V+E·log d) sparse.
func Degrees(a Adjacency) []int {
	n := a.Order()
	out := make([]int, n)
	for u := 0; u < n; u++ {
		out[u] = Degree(a, u)
	}

	return out
}

// EdgeCount returns |E| (each undirected edge counted once).
func EdgeCount(a Adjacency) int {
	total := 0
	for _, d := range Degrees(a) {
		total += d
	}

	return total / 2
}

// Edges lists every edge once with U < V, ordered by (U,V).
func Edges(a Adjacency) []Edge {
	n := a.Order()
	out := make([]Edge, 0)
	for u := 0; u < n; u++ {
		for _, v := range a.Neighbors(u) {
			if v > u {
				out = append(out, Edge{U: u, V: v, Weight: a.Weight(u, v)})
			}
		}
	}

	return out
}

// TotalWeight sums the weights of all edges.
func TotalWeight(a Adjacency) int64 {
	var sum int64
	for _, e := range Edges(a) {
		sum += e.Weight
	}

	return sum
}

// Validate re-checks the store invariants cell by cell: symmetry, empty
// diagonal and non-negative weights. Stores built through SetEdge always
// pass; Validate exists for adapters and fixtures.
// Complexity: O(n²).
func Validate(a Adjacency) error {
	if a == nil {
		return ErrNilGraph
	}
	n := a.Order()
	for u := 0; u < n; u++ {
		if a.Weight(u, u) != 0 {
			return fmt.Errorf("Validate(%d,%d): %w", u, u, ErrSelfLoop)
		}
		for v := u + 1; v < n; v++ {
			w := a.Weight(u, v)
			if w != a.Weight(v, u) {
				return fmt.Errorf("Validate(%d,%d): %w", u, v, ErrAsymmetric)
			}
			if w < 0 {
				return fmt.Errorf("Validate(%d,%d): %w", u, v, ErrNegativeWeight)
			}
		}
	}

	return nil
}
