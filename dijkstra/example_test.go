// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/adjacency"
	"github.com/katalvlaran/graphkit/dijkstra"
)

// ExampleDijkstra shows distances and one reconstructed path on a small house graph.
//
//	    (4)
//	  3/   \4
//	  /     \
//	(2)──10─(3)
//	 |       |
//	2|       |5
//	 |       |
//	(0)──4──(1)
func ExampleDijkstra() {
	g, _ := adjacency.NewDense(5)
	for _, e := range []adjacency.Edge{
		{U: 0, V: 1, Weight: 4},
		{U: 0, V: 2, Weight: 2},
		{U: 1, V: 3, Weight: 5},
		{U: 2, V: 3, Weight: 10},
		{U: 2, V: 4, Weight: 3},
		{U: 4, V: 3, Weight: 4},
	} {
		_ = g.SetEdge(e.U, e.V, e.Weight)
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := dijkstra.PathTo(prev, 0, 3)
	fmt.Println(dist)
	fmt.Println(path)
	// Output:
	// [0 4 2 9 5]
	// [0 1 3]
}
