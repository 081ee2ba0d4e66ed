// SPDX-License-Identifier: MIT

package eulerian_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/adjacency"
	"github.com/katalvlaran/graphkit/eulerian"
)

// ExampleTrail extracts the circuit of a square 0-1-2-3-0.
func ExampleTrail() {
	g, _ := adjacency.NewDense(4)
	_ = g.SetEdge(0, 1, 1)
	_ = g.SetEdge(1, 2, 1)
	_ = g.SetEdge(2, 3, 1)
	_ = g.SetEdge(3, 0, 1)

	fmt.Println(eulerian.Classify(g))
	trail, _ := eulerian.Trail(g, eulerian.StartVertex(g))
	fmt.Println(trail, adjacency.EdgeCount(g))
	// Output:
	// circuit
	// [0 3 2 1 0] 0
}
