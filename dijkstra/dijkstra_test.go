// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/adjacency"
	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/dijkstra"
)

type wedge struct {
	U, V int
	W    int64
}

func build(t testing.TB, n int, edges []wedge) *adjacency.Dense {
	t.Helper()
	g, err := adjacency.NewDense(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.SetEdge(e.U, e.V, e.W))
	}

	return g
}

// negativeStore reports a negative weight on 0-1; adjacency stores refuse
// to hold one, so the pre-scan is exercised through this stub.
type negativeStore struct{ adjacency.Adjacency }

func (s negativeStore) Weight(u, v int) int64 {
	if (u == 0 && v == 1) || (u == 1 && v == 0) {
		return -3
	}

	return s.Adjacency.Weight(u, v)
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := build(t, 3, nil)
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(3))
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(-1))
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	empty := build(t, 0, nil)
	_, _, err = dijkstra.Dijkstra(empty)
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	neg := negativeStore{build(t, 2, []wedge{{0, 1, 1}})}
	_, _, err = dijkstra.Dijkstra(neg)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(0) })
}

// ------------------------------------------------------------------------
// 2. Small graphs
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	g := build(t, 3, []wedge{{0, 1, 1}, {1, 2, 2}, {0, 2, 5}})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3}, dist)
	assert.Equal(t, []int{dijkstra.NoPredecessor, 0, 1}, prev)

	path, err := dijkstra.PathTo(prev, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestDijkstra_PrevNilWithoutReturnPath(t *testing.T) {
	g := build(t, 2, []wedge{{0, 1, 4}})
	dist, prev, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 4}, dist)
	assert.Nil(t, prev)
}

func TestDijkstra_SingleVertex(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(build(t, 1, nil), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, dist)
	assert.Equal(t, []int{dijkstra.NoPredecessor}, prev)
}

func TestDijkstra_Unreached(t *testing.T) {
	// 0-1 and an isolated pair 2-3.
	g := build(t, 4, []wedge{{0, 1, 2}, {2, 3, 1}})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 0, dijkstra.Unreached, dijkstra.Unreached}, dist)
	assert.Equal(t, dijkstra.NoPredecessor, prev[2])
	assert.Equal(t, dijkstra.NoPredecessor, prev[3])

	_, err = dijkstra.PathTo(prev, 1, 3)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_TieKeepsFirstPredecessor(t *testing.T) {
	// Square 0-1-3 and 0-2-3, both of length 2.
	g := build(t, 4, []wedge{{0, 1, 1}, {0, 2, 1}, {1, 3, 1}, {2, 3, 1}})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist[3])
	// Vertex 1 is settled before 2 on the tie, so it relaxes 3 first.
	assert.Equal(t, 1, prev[3])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := build(t, 4, []wedge{{0, 1, 2}, {1, 2, 2}, {2, 3, 2}})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 4, dijkstra.Unreached}, dist)
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := build(t, 3, []wedge{{0, 1, 2}, {1, 2, 4}, {0, 2, 10}})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.WithInfEdgeThreshold(3))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, dijkstra.Unreached}, dist)
}

func TestDijkstra_SparseMatchesDense(t *testing.T) {
	edges := []wedge{{0, 1, 4}, {0, 2, 2}, {1, 3, 5}, {2, 3, 10}, {2, 4, 3}, {4, 3, 4}}
	d := build(t, 5, edges)
	s, err := adjacency.NewSparse(5)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, s.SetEdge(e.U, e.V, e.W))
	}

	dd, dp, err := dijkstra.Dijkstra(d, dijkstra.WithReturnPath())
	require.NoError(t, err)
	sd, sp, err := dijkstra.Dijkstra(s, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, dd, sd)
	assert.Equal(t, dp, sp)
	assert.Equal(t, []int64{0, 4, 2, 9, 5}, dd)
}

func TestDijkstra_DoesNotModifyGraph(t *testing.T) {
	g := build(t, 3, []wedge{{0, 1, 1}, {1, 2, 2}})
	before := g.Clone()
	_, _, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	assert.Equal(t, adjacency.Edges(before), adjacency.Edges(g))
}

// ------------------------------------------------------------------------
// 3. Properties on random realized graphs
// ------------------------------------------------------------------------

// bellmanFord is an independent reference.
func bellmanFord(a adjacency.Adjacency, src int) []int64 {
	n := a.Order()
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = dijkstra.Unreached
	}
	dist[src] = 0
	edges := adjacency.Edges(a)
	for i := 0; i < n; i++ {
		for _, e := range edges {
			if dist[e.U] != dijkstra.Unreached && dist[e.U]+e.Weight < dist[e.V] {
				dist[e.V] = dist[e.U] + e.Weight
			}
			if dist[e.V] != dijkstra.Unreached && dist[e.V]+e.Weight < dist[e.U] {
				dist[e.U] = dist[e.V] + e.Weight
			}
		}
	}

	return dist
}

func TestDijkstra_RandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 120; seed++ {
		rng := rand.New(rand.NewSource(seed))
		n := 2 + rng.Intn(9)
		seq, err := builder.DegreeSequence(n, builder.WithRand(rng))
		require.NoError(t, err)
		g, err := builder.Realize(seq)
		if err != nil {
			continue
		}
		require.NoError(t, builder.AssignWeights(g, builder.WithRand(rng)))
		src := rng.Intn(n)

		dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())
		require.NoError(t, err)
		assert.Equal(t, int64(0), dist[src])
		assert.Equal(t, bellmanFord(g, src), dist, "seed=%d", seed)

		// Triangle inequality across every edge between reached vertices.
		for _, e := range adjacency.Edges(g) {
			if dist[e.U] == dijkstra.Unreached || dist[e.V] == dijkstra.Unreached {
				assert.Equal(t, dist[e.U], dist[e.V], "edge %v joins reached and unreached", e)
				continue
			}
			assert.LessOrEqual(t, dist[e.V], dist[e.U]+e.Weight)
			assert.LessOrEqual(t, dist[e.U], dist[e.V]+e.Weight)
		}

		// Every reached vertex has a path whose weight equals its distance.
		for v := range dist {
			if dist[v] == dijkstra.Unreached {
				continue
			}
			path, err := dijkstra.PathTo(prev, src, v)
			require.NoError(t, err)
			var sum int64
			for i := 1; i < len(path); i++ {
				sum += g.Weight(path[i-1], path[i])
			}
			assert.Equal(t, dist[v], sum)
		}
	}
}

// ------------------------------------------------------------------------
// 4. PathTo
// ------------------------------------------------------------------------

func TestPathTo(t *testing.T) {
	prev := []int{dijkstra.NoPredecessor, 0, 1, 2}

	path, err := dijkstra.PathTo(prev, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	path, err = dijkstra.PathTo(prev, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	_, err = dijkstra.PathTo(prev, 0, 4)
	assert.ErrorIs(t, err, dijkstra.ErrBadPredecessors)

	// Cycle 1→2→1 never reaches 0.
	_, err = dijkstra.PathTo([]int{dijkstra.NoPredecessor, 2, 1}, 0, 1)
	assert.ErrorIs(t, err, dijkstra.ErrBadPredecessors)

	// Chain ends at a vertex other than src.
	_, err = dijkstra.PathTo([]int{dijkstra.NoPredecessor, 0, 1}, 1, 2)
	require.NoError(t, err)
	_, err = dijkstra.PathTo([]int{dijkstra.NoPredecessor, 0, 1}, 2, 1)
	assert.ErrorIs(t, err, dijkstra.ErrBadPredecessors)
}
