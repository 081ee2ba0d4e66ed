// SPDX-License-Identifier: MIT

package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/adjacency"
)

// stores returns one fresh instance of every implementation for table tests.
func stores(t *testing.T, n int) map[string]adjacency.Adjacency {
	t.Helper()
	d, err := adjacency.NewDense(n)
	require.NoError(t, err)
	s, err := adjacency.NewSparse(n)
	require.NoError(t, err)

	return map[string]adjacency.Adjacency{"dense": d, "sparse": s}
}

func TestNew_NegativeOrder(t *testing.T) {
	_, err := adjacency.NewDense(-1)
	assert.ErrorIs(t, err, adjacency.ErrBadOrder)
	_, err = adjacency.NewSparse(-1)
	assert.ErrorIs(t, err, adjacency.ErrBadOrder)
}

func TestNew_ZeroOrder(t *testing.T) {
	for name, a := range stores(t, 0) {
		assert.Equal(t, 0, a.Order(), name)
		assert.Empty(t, adjacency.Edges(a), name)
		assert.NoError(t, adjacency.Validate(a), name)
	}
}

func TestSetEdge_Symmetric(t *testing.T) {
	for name, a := range stores(t, 4) {
		require.NoError(t, a.SetEdge(0, 2, 7), name)
		assert.Equal(t, int64(7), a.Weight(0, 2), name)
		assert.Equal(t, int64(7), a.Weight(2, 0), name)
		assert.True(t, a.HasEdge(2, 0), name)
		assert.False(t, a.HasEdge(0, 1), name)
		assert.NoError(t, adjacency.Validate(a), name)
	}
}

func TestSetEdge_Invariants(t *testing.T) {
	cases := []struct {
		name    string
		u, v    int
		w       int64
		wantErr error
	}{
		{"self-loop", 1, 1, 1, adjacency.ErrSelfLoop},
		{"negative weight", 0, 1, -3, adjacency.ErrNegativeWeight},
		{"u out of range", -1, 1, 1, adjacency.ErrOutOfRange},
		{"v out of range", 0, 3, 1, adjacency.ErrOutOfRange},
	}
	for _, tc := range cases {
		for name, a := range stores(t, 3) {
			err := a.SetEdge(tc.u, tc.v, tc.w)
			assert.ErrorIs(t, err, tc.wantErr, "%s/%s", name, tc.name)
		}
	}
}

func TestSetEdge_ZeroRemoves(t *testing.T) {
	for name, a := range stores(t, 3) {
		require.NoError(t, a.SetEdge(0, 1, 4))
		require.NoError(t, a.SetEdge(0, 1, 0))
		assert.False(t, a.HasEdge(0, 1), name)
		assert.Empty(t, a.Neighbors(0), name)
	}
}

func TestRemoveEdge(t *testing.T) {
	for name, a := range stores(t, 3) {
		require.NoError(t, a.SetEdge(0, 1, 1))
		require.NoError(t, a.RemoveEdge(1, 0))
		assert.False(t, a.HasEdge(0, 1), name)
		// Removing a missing edge is a no-op.
		assert.NoError(t, a.RemoveEdge(1, 2), name)
		assert.ErrorIs(t, a.RemoveEdge(0, 9), adjacency.ErrOutOfRange, name)
	}
}

func TestWeight_OutOfRangeReadsZero(t *testing.T) {
	for name, a := range stores(t, 2) {
		assert.Zero(t, a.Weight(-1, 0), name)
		assert.Zero(t, a.Weight(0, 5), name)
		assert.Nil(t, a.Neighbors(7), name)
	}
}

func TestNeighbors_Sorted(t *testing.T) {
	for name, a := range stores(t, 6) {
		require.NoError(t, a.SetEdge(3, 5, 1))
		require.NoError(t, a.SetEdge(3, 0, 1))
		require.NoError(t, a.SetEdge(3, 4, 1))
		assert.Equal(t, []int{0, 4, 5}, a.Neighbors(3), name)
	}
}

func TestClone_Independent(t *testing.T) {
	for name, a := range stores(t, 3) {
		require.NoError(t, a.SetEdge(0, 1, 2))
		c := a.Clone()
		require.NoError(t, c.RemoveEdge(0, 1))
		assert.True(t, a.HasEdge(0, 1), name)
		assert.False(t, c.HasEdge(0, 1), name)
		assert.Equal(t, a.Order(), c.Order(), name)
	}
}

func TestHelpers(t *testing.T) {
	for name, a := range stores(t, 4) {
		// Path 0-1-2-3 plus chord 0-2.
		require.NoError(t, a.SetEdge(0, 1, 1))
		require.NoError(t, a.SetEdge(1, 2, 2))
		require.NoError(t, a.SetEdge(2, 3, 3))
		require.NoError(t, a.SetEdge(0, 2, 4))

		assert.Equal(t, []int{2, 2, 3, 1}, adjacency.Degrees(a), name)
		assert.Equal(t, 3, adjacency.Degree(a, 2), name)
		assert.Equal(t, 4, adjacency.EdgeCount(a), name)
		assert.Equal(t, int64(10), adjacency.TotalWeight(a), name)
		assert.Equal(t, []adjacency.Edge{
			{U: 0, V: 1, Weight: 1},
			{U: 0, V: 2, Weight: 4},
			{U: 1, V: 2, Weight: 2},
			{U: 2, V: 3, Weight: 3},
		}, adjacency.Edges(a), name)
	}
}

func TestNewDenseFrom(t *testing.T) {
	m, err := adjacency.NewDenseFrom([][]int64{
		{0, 1, 0},
		{1, 0, 5},
		{0, 5, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), m.Weight(2, 1))
	assert.Equal(t, "[0 1 0]\n[1 0 5]\n[0 5 0]\n", m.String())
	assert.Equal(t, [][]int64{{0, 1, 0}, {1, 0, 5}, {0, 5, 0}}, m.Rows())

	_, err = adjacency.NewDenseFrom([][]int64{{0, 1}, {2, 0}})
	assert.ErrorIs(t, err, adjacency.ErrAsymmetric)

	_, err = adjacency.NewDenseFrom([][]int64{{1, 0}, {0, 0}})
	assert.ErrorIs(t, err, adjacency.ErrSelfLoop)

	_, err = adjacency.NewDenseFrom([][]int64{{0, -1}, {-1, 0}})
	assert.ErrorIs(t, err, adjacency.ErrNegativeWeight)

	_, err = adjacency.NewDenseFrom([][]int64{{0, 1}, {1}})
	assert.ErrorIs(t, err, adjacency.ErrOutOfRange)
}

func TestNewDenseFrom_ShortLaterRow(t *testing.T) {
	var err error
	require.NotPanics(t, func() {
		_, err = adjacency.NewDenseFrom([][]int64{{0, 1, 0}, {1, 0, 0}, {0}})
	})
	assert.ErrorIs(t, err, adjacency.ErrOutOfRange)
	assert.Contains(t, err.Error(), "row 2")

	require.NotPanics(t, func() {
		_, err = adjacency.NewDenseFrom([][]int64{{0, 1, 0}, {1, 0}, {0, 0, 0}})
	})
	assert.ErrorIs(t, err, adjacency.ErrOutOfRange)
}

func TestValidate_Nil(t *testing.T) {
	assert.ErrorIs(t, adjacency.Validate(nil), adjacency.ErrNilGraph)
}
