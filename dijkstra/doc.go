// SPDX-License-Identifier: MIT

// Package dijkstra implements single-source shortest paths on an
// adjacency.Adjacency with non-negative integer weights.
//
// The solver uses the array form of Dijkstra's algorithm: at most n-1 rounds,
// each selecting the unvisited vertex with the smallest finite distance
// (lowest id on ties) and relaxing its unvisited neighbours. No heap is used,
// which matches the O(n²) cost of scanning a dense matrix row anyway.
//
// Complexity:
//
//   - Time:  O(n²)
//   - Space: O(n) for the distance, predecessor and visited arrays.
//
// Options:
//
//   - Source(int):             starting vertex, must lie in [0,n).
//   - WithReturnPath():        also return the predecessor array.
//   - WithMaxDistance(int64):  do not settle vertices farther than the cap.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable.
//
// Errors (sentinel):
//
//   - ErrNilGraph         the graph is nil.
//   - ErrSourceOutOfRange the source lies outside [0,n).
//   - ErrNegativeWeight   a negative weight was found by the pre-scan.
//   - ErrBadMaxDistance   MaxDistance < 0 (panic from the option constructor).
//   - ErrBadInfThreshold  threshold ≤ 0 (panic from the option constructor).
//
// Unreached vertices keep dist == Unreached (math.MaxInt64) and
// prev == NoPredecessor (-1). PathTo rebuilds a vertex sequence from prev.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := dijkstra.PathTo(prev, 0, 3)
//	fmt.Println(dist[3], path)
package dijkstra
