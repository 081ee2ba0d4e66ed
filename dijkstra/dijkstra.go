// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/graphkit/adjacency"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of a.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance, or Unreached.
//   - prev: predecessor array when WithReturnPath is set (nil otherwise).
//     prev[v] == u means one shortest path to v ends with the edge u→v.
//   - err:  ErrNilGraph, ErrSourceOutOfRange or ErrNegativeWeight.
//
// Preconditions are checked in that order. a is never modified.
//
// Complexity: O(n²) time, O(n) extra space.
func Dijkstra(a adjacency.Adjacency, opts ...Option) ([]int64, []int, error) {
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	if a == nil {
		return nil, nil, ErrNilGraph
	}
	n := a.Order()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, n)
	}

	// Fail fast on negative weights before touching any state.
	for u := 0; u < n; u++ {
		for _, v := range a.Neighbors(u) {
			if w := a.Weight(u, v); w < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, u, v, w)
			}
		}
	}

	r := newRunner(a, cfg)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	a       adjacency.Adjacency // read-only input
	options Options
	dist    []int64 // current best distance per vertex
	prev    []int   // predecessor per vertex
	visited []bool  // settled vertices
}

func newRunner(a adjacency.Adjacency, cfg Options) *runner {
	n := a.Order()
	r := &runner{
		a:       a,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = Unreached
		r.prev[v] = NoPredecessor
	}
	r.dist[cfg.Source] = 0

	return r
}

// process runs up to n-1 selection rounds. It stops early once no unvisited
// vertex has a finite distance.
func (r *runner) process() {
	n := len(r.dist)
	for round := 0; round < n-1; round++ {
		u := r.closest()
		if u < 0 {
			return
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// closest returns the unvisited vertex with the smallest finite distance,
// lowest id on ties, or -1.
func (r *runner) closest() int {
	best, bestDist := -1, Unreached
	for v, d := range r.dist {
		if !r.visited[v] && d < bestDist {
			best, bestDist = v, d
		}
	}

	return best
}

// relax improves dist[v] for every unvisited neighbour v of u.
// Strict < keeps the first predecessor found on equal-length paths.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, v := range r.a.Neighbors(u) {
		if r.visited[v] {
			continue
		}
		w := r.a.Weight(u, v)
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w > Unreached-du {
			continue // would overflow
		}
		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
	}
}
