// SPDX-License-Identifier: MIT

package bfs

import (
	"context"

	"github.com/katalvlaran/graphkit/adjacency"
)

// Components labels every vertex with a component index. Components are
// numbered in order of their lowest vertex, so vertex 0 is always in 0.
// Isolated vertices form singleton components.
// Complexity: one BFS per component, O(n²) total on Dense.
func Components(ctx context.Context, g adjacency.Adjacency) ([]int, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.Order()
	label := filled(n, Unvisited)
	count := 0
	for s := 0; s < n; s++ {
		if label[s] != Unvisited {
			continue
		}
		id := count
		_, err := BFS(g, s, WithContext(ctx), WithOnVisit(func(v, _ int) error {
			label[v] = id
			return nil
		}))
		if err != nil {
			return nil, 0, err
		}
		count++
	}

	return label, count, nil
}

// EdgesConnected reports whether all edges of g lie in a single component,
// ignoring isolated vertices. A graph with no edges is trivially connected.
// This is the connectivity condition an Eulerian trail needs.
func EdgesConnected(ctx context.Context, g adjacency.Adjacency) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	n := g.Order()
	start := Unvisited
	for v := 0; v < n; v++ {
		if adjacency.Degree(g, v) > 0 {
			start = v
			break
		}
	}
	if start == Unvisited {
		return true, nil
	}

	res, err := BFS(g, start, WithContext(ctx))
	if err != nil {
		return false, err
	}
	for v := 0; v < n; v++ {
		if !res.Reached(v) && adjacency.Degree(g, v) > 0 {
			return false, nil
		}
	}

	return true, nil
}
