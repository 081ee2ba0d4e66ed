// SPDX-License-Identifier: MIT

package adjacency

import (
	"fmt"
	"sort"
)

// Sparse stores only present edges: adj[u][v] = weight.
// Both directions are always stored so reads stay O(1).
type Sparse struct {
	n   int
	adj map[int]map[int]int64
}

var _ Adjacency = (*Sparse)(nil)

// NewSparse returns an empty store over n vertices.
// Complexity: O(1).
func NewSparse(n int) (*Sparse, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewSparse(%d): %w", n, ErrBadOrder)
	}

	return &Sparse{n: n, adj: make(map[int]map[int]int64)}, nil
}

// Order returns n.
func (s *Sparse) Order() int { return s.n }

// Weight returns the weight of (u,v), or 0 when absent.
// Complexity: O(1) expected.
func (s *Sparse) Weight(u, v int) int64 {
	if nbrs, ok := s.adj[u]; ok {
		return nbrs[v]
	}

	return 0
}

// HasEdge reports whether (u,v) is stored.
func (s *Sparse) HasEdge(u, v int) bool {
	return s.Weight(u, v) > 0
}

// SetEdge stores w on both directions; w == 0 deletes the edge.
// Complexity: O(1) expected.
func (s *Sparse) SetEdge(u, v int, w int64) error {
	if err := checkPair("Sparse.SetEdge", s.n, u, v, w); err != nil {
		return err
	}
	if w == 0 {
		s.drop(u, v)
		s.drop(v, u)
		return nil
	}
	s.put(u, v, w)
	s.put(v, u, w)

	return nil
}

// RemoveEdge deletes both directions of (u,v).
// Complexity: O(1) expected.
func (s *Sparse) RemoveEdge(u, v int) error {
	if err := checkPair("Sparse.RemoveEdge", s.n, u, v, 0); err != nil {
		return err
	}
	s.drop(u, v)
	s.drop(v, u)

	return nil
}

// Neighbors returns adjacent vertices sorted ascending.
// Complexity: O(d·log d).
func (s *Sparse) Neighbors(u int) []int {
	if u < 0 || u >= s.n {
		return nil
	}
	nbrs := s.adj[u]
	out := make([]int, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Clone returns a deep copy.
// Complexity: O(V+E).
func (s *Sparse) Clone() Adjacency {
	c := &Sparse{n: s.n, adj: make(map[int]map[int]int64, len(s.adj))}
	for u, nbrs := range s.adj {
		row := make(map[int]int64, len(nbrs))
		for v, w := range nbrs {
			row[v] = w
		}
		c.adj[u] = row
	}

	return c
}

func (s *Sparse) put(u, v int, w int64) {
	row, ok := s.adj[u]
	if !ok {
		row = make(map[int]int64)
		s.adj[u] = row
	}
	row[v] = w
}

func (s *Sparse) drop(u, v int) {
	row, ok := s.adj[u]
	if !ok {
		return
	}
	delete(row, v)
	if len(row) == 0 {
		delete(s.adj, u)
	}
}
