// SPDX-License-Identifier: MIT

package eulerian

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphkit/adjacency"
	"github.com/katalvlaran/graphkit/bfs"
)

// OddVertices returns the vertices of odd degree in ascending order.
// Complexity: O(n²) dense.
func OddVertices(a adjacency.Adjacency) []int {
	odd := make([]int, 0)
	for v, d := range adjacency.Degrees(a) {
		if d%2 != 0 {
			odd = append(odd, v)
		}
	}

	return odd
}

// Classify counts odd-degree vertices and maps the count onto a Kind.
// Read-only. Complexity: O(n²) dense.
func Classify(a adjacency.Adjacency) Kind {
	return kindOf(len(OddVertices(a)))
}

// IsEulerian reports whether the odd-degree count is 0 or 2.
func IsEulerian(a adjacency.Adjacency) bool {
	return Classify(a) != None
}

// Analyze classifies a and checks that its edges form one component.
func Analyze(ctx context.Context, a adjacency.Adjacency) (Analysis, error) {
	if a == nil {
		return Analysis{}, ErrNilGraph
	}
	odd := OddVertices(a)
	connected, err := bfs.EdgesConnected(ctx, a)
	if err != nil {
		return Analysis{}, fmt.Errorf("eulerian: connectivity: %w", err)
	}

	return Analysis{
		Kind:        kindOf(len(odd)),
		OddVertices: odd,
		Edges:       adjacency.EdgeCount(a),
		Connected:   connected,
	}, nil
}

// StartVertex picks where Trail should begin: the lowest odd-degree vertex
// if there is one, else the lowest vertex with an edge, else 0.
func StartVertex(a adjacency.Adjacency) int {
	if odd := OddVertices(a); len(odd) > 0 {
		return odd[0]
	}
	n := a.Order()
	for v := 0; v < n; v++ {
		if adjacency.Degree(a, v) > 0 {
			return v
		}
	}

	return 0
}

func kindOf(odd int) Kind {
	switch odd {
	case 0:
		return Circuit
	case 2:
		return Path
	default:
		return None
	}
}
