// SPDX-License-Identifier: MIT

// Package adjacency - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Cache-friendly n×n buffer with the explicit index formula u*n + v.
//   - Writes validate and return errors instead of panicking.
//   - Deterministic iteration: Neighbors scans columns in ascending order.

package adjacency

import (
	"fmt"
	"strings"
)

// Formatting literals for String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
)

// Dense is a symmetric n×n weight table stored row-major.
type Dense struct {
	n    int     // vertex count
	data []int64 // flat backing storage, len == n*n
}

// Compile-time assertions.
var (
	_ Adjacency    = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense allocates a zero-initialized n×n table.
// n == 0 is legal and yields an empty graph.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrBadOrder)
	}

	return &Dense{n: n, data: make([]int64, n*n)}, nil
}

// NewDenseFrom builds a Dense from a square table, validating every invariant.
// Useful for fixtures: rows[i][j] is the weight of (i,j).
// Complexity: O(n²).
func NewDenseFrom(rows [][]int64) (*Dense, error) {
	m, err := NewDense(len(rows))
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if len(rows[i]) != m.n {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d cells, want %d: %w", i, len(rows[i]), m.n, ErrOutOfRange)
		}
	}
	for i := range rows {
		for j := range rows[i] {
			if rows[i][j] != rows[j][i] {
				return nil, fmt.Errorf("NewDenseFrom(%d,%d): %w", i, j, ErrAsymmetric)
			}
			if i == j {
				if rows[i][j] != 0 {
					return nil, fmt.Errorf("NewDenseFrom(%d,%d): %w", i, j, ErrSelfLoop)
				}
				continue
			}
			if rows[i][j] < 0 {
				return nil, fmt.Errorf("NewDenseFrom(%d,%d): %w", i, j, ErrNegativeWeight)
			}
			m.data[i*m.n+j] = rows[i][j]
		}
	}

	return m, nil
}

// Order returns n. Complexity: O(1).
func (m *Dense) Order() int { return m.n }

// Weight returns cell (u,v), or 0 when out of range. Complexity: O(1).
func (m *Dense) Weight(u, v int) int64 {
	if u < 0 || u >= m.n || v < 0 || v >= m.n {
		return 0
	}

	return m.data[u*m.n+v]
}

// HasEdge reports whether (u,v) carries a positive weight. Complexity: O(1).
func (m *Dense) HasEdge(u, v int) bool {
	return m.Weight(u, v) > 0
}

// SetEdge writes w into (u,v) and (v,u). Complexity: O(1).
func (m *Dense) SetEdge(u, v int, w int64) error {
	if err := checkPair("Dense.SetEdge", m.n, u, v, w); err != nil {
		return err
	}
	m.data[u*m.n+v] = w
	m.data[v*m.n+u] = w

	return nil
}

// RemoveEdge clears (u,v) and (v,u). Complexity: O(1).
func (m *Dense) RemoveEdge(u, v int) error {
	if err := checkPair("Dense.RemoveEdge", m.n, u, v, 0); err != nil {
		return err
	}
	m.data[u*m.n+v] = 0
	m.data[v*m.n+u] = 0

	return nil
}

// Neighbors scans row u and returns adjacent vertices in ascending order.
// Complexity: O(n).
func (m *Dense) Neighbors(u int) []int {
	if u < 0 || u >= m.n {
		return nil
	}
	row := m.data[u*m.n : (u+1)*m.n]
	out := make([]int, 0)
	for v, w := range row {
		if w > 0 {
			out = append(out, v)
		}
	}

	return out
}

// Clone returns a deep copy. Complexity: O(n²).
func (m *Dense) Clone() Adjacency {
	data := make([]int64, len(m.data))
	copy(data, m.data)

	return &Dense{n: m.n, data: data}
}

// Rows materializes the table as [][]int64 (copy).
// Complexity: O(n²).
func (m *Dense) Rows() [][]int64 {
	out := make([][]int64, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = append([]int64(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return out
}

// String renders one bracketed row per line.
// Complexity: O(n²).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.n; j++ {
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
			if j < m.n-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
