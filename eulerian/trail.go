// SPDX-License-Identifier: MIT

package eulerian

import (
	"fmt"

	"github.com/katalvlaran/graphkit/adjacency"
)

// frame is one vertex on the explicit walk stack. next is the lowest
// neighbour id not yet scanned from v.
type frame struct {
	v    int
	next int
}

// Trail walks a from start, consuming every reachable edge, and returns the
// vertices in post-order. On return a has no edges left in start's component.
//
// Complexity: O(n·(n+E)) dense: each frame scans its row once.
func Trail(a adjacency.Adjacency, start int) ([]int, error) {
	if a == nil {
		return nil, ErrNilGraph
	}
	n := a.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, start, n)
	}

	trail := make([]int, 0, adjacency.EdgeCount(a)+1)
	stack := []frame{{v: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		u := top.v
		descended := false
		for ; top.next < n; top.next++ {
			v := top.next
			if !a.HasEdge(u, v) {
				continue
			}
			if err := a.RemoveEdge(u, v); err != nil {
				return nil, fmt.Errorf("eulerian: RemoveEdge(%d,%d): %w", u, v, err)
			}
			top.next++
			stack = append(stack, frame{v: v})
			descended = true
			break
		}
		if !descended {
			trail = append(trail, u)
			stack = stack[:len(stack)-1]
		}
	}

	return trail, nil
}

// Verify checks trail against g, an untouched copy of the graph Trail
// consumed: the trail must have |E|+1 vertices and every consecutive pair
// must be a distinct edge of g.
// Complexity: O(|trail|) plus an O(n²) dense edge count.
func Verify(g adjacency.Adjacency, trail []int) error {
	if g == nil {
		return ErrNilGraph
	}
	want := adjacency.EdgeCount(g) + 1
	if len(trail) != want {
		return fmt.Errorf("%w: length %d, want %d", ErrMalformedTrail, len(trail), want)
	}

	used := make(map[adjacency.Edge]bool, want-1)
	for i := 0; i+1 < len(trail); i++ {
		u, v := trail[i], trail[i+1]
		if !g.HasEdge(u, v) {
			return fmt.Errorf("%w: step %d: %d-%d is not an edge", ErrMalformedTrail, i, u, v)
		}
		if u > v {
			u, v = v, u
		}
		key := adjacency.Edge{U: u, V: v}
		if used[key] {
			return fmt.Errorf("%w: step %d: %d-%d used twice", ErrMalformedTrail, i, u, v)
		}
		used[key] = true
	}

	return nil
}

// Extract checks degree parity, picks StartVertex and runs Trail on a.
// The edge set of a is consumed. Connectivity is not checked; pair with
// Verify on a clone when the graph may be disconnected.
func Extract(a adjacency.Adjacency) ([]int, error) {
	if a == nil {
		return nil, ErrNilGraph
	}
	if odd := len(OddVertices(a)); kindOf(odd) == None {
		return nil, fmt.Errorf("%w: %d odd-degree vertices", ErrNotEulerian, odd)
	}

	return Trail(a, StartVertex(a))
}
