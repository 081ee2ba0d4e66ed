// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_havel_hakimi.go — realize a degree sequence as a simple graph.
//
// Loop (both modes):
//   1) sort remaining degrees non-increasing;
//   2) top degree 0 → done;
//   3) d = top degree; d ≥ n → ErrNotGraphical;
//   4) zero the top, connect it to the next d entries, decrement each;
//      a decrement below zero → ErrNotGraphical.
//
// Contract:
//   • a must be zero-initialized with Order() == len(seq).
//   • seq is never mutated; the algorithm consumes a private copy.
//   • On failure a may hold a partial realization; callers discard it.
//
// Complexity: O(n² log n) time (≤ n rounds, each sorting n entries),
// O(n) extra space.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphkit/adjacency"
)

// RealizeMode selects how Havel–Hakimi maps sorted positions back to vertices.
type RealizeMode int

const (
	// RealizeTracked keeps (vertexID, degree) pairs together through every sort.
	RealizeTracked RealizeMode = iota
	// RealizePositional records edges against post-sort positions.
	RealizePositional
)

// String returns "tracked" or "positional".
func (m RealizeMode) String() string {
	switch m {
	case RealizeTracked:
		return "tracked"
	case RealizePositional:
		return "positional"
	default:
		return fmt.Sprintf("RealizeMode(%d)", int(m))
	}
}

// ParseRealizeMode maps "tracked"/"positional" onto a RealizeMode.
func ParseRealizeMode(s string) (RealizeMode, error) {
	switch s {
	case "tracked", "":
		return RealizeTracked, nil
	case "positional":
		return RealizePositional, nil
	default:
		return 0, fmt.Errorf("builder: unknown realize mode %q: %w", s, ErrOptionViolation)
	}
}

// HavelHakimi populates a with a simple undirected graph whose degree
// sequence is seq, or returns an error wrapping ErrNotGraphical.
// Edges are stored with weight 1.
func HavelHakimi(seq []int, a adjacency.Adjacency, opts ...BuilderOption) error {
	n := len(seq)
	if err := validateStore(MethodHavelHakimi, a, n); err != nil {
		return err
	}
	for i, d := range seq {
		if d < 0 {
			return builderErrorf(MethodHavelHakimi, ErrNotGraphical, "seq[%d]=%d is negative", i, d)
		}
	}

	cfg := newBuilderConfig(opts...)
	if cfg.mode == RealizePositional {
		return havelHakimiPositional(seq, a)
	}

	return havelHakimiTracked(seq, a)
}

// Realize allocates an n×n Dense store and runs HavelHakimi into it.
func Realize(seq []int, opts ...BuilderOption) (*adjacency.Dense, error) {
	m, err := adjacency.NewDense(len(seq))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRealize, err)
	}
	if err = HavelHakimi(seq, m, opts...); err != nil {
		return nil, err
	}

	return m, nil
}

// slot pairs a vertex with its remaining degree.
type slot struct {
	id  int
	deg int
}

// byDegreeDesc orders slots by remaining degree, largest first.
type byDegreeDesc []slot

func (s byDegreeDesc) Len() int           { return len(s) }
func (s byDegreeDesc) Less(i, j int) bool { return s[i].deg > s[j].deg }
func (s byDegreeDesc) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func havelHakimiTracked(seq []int, a adjacency.Adjacency) error {
	n := len(seq)
	slots := make([]slot, n)
	for i, d := range seq {
		slots[i] = slot{id: i, deg: d}
	}

	for n > 0 {
		// Stable: ties keep their previous relative order.
		sort.Stable(byDegreeDesc(slots))
		if slots[0].deg == 0 {
			return nil
		}
		d := slots[0].deg
		if d >= n {
			return builderErrorf(MethodHavelHakimi, ErrNotGraphical,
				"vertex %d needs degree %d but only %d other vertices exist", slots[0].id, d, n-1)
		}

		top := slots[0].id
		slots[0].deg = 0
		for k := 1; k <= d; k++ {
			slots[k].deg--
			if slots[k].deg < 0 {
				return builderErrorf(MethodHavelHakimi, ErrNotGraphical,
					"vertex %d would need a negative remaining degree", slots[k].id)
			}
			if err := a.SetEdge(top, slots[k].id, unweightedEdge); err != nil {
				return fmt.Errorf("%s: SetEdge(%d,%d): %w", MethodHavelHakimi, top, slots[k].id, err)
			}
		}
	}

	return nil
}

func havelHakimiPositional(seq []int, a adjacency.Adjacency) error {
	n := len(seq)
	deg := append([]int(nil), seq...)

	for n > 0 {
		SortDescending(deg)
		if deg[0] == 0 {
			return nil
		}
		d := deg[0]
		if d >= n {
			return builderErrorf(MethodHavelHakimi, ErrNotGraphical,
				"position 0 needs degree %d but only %d other vertices exist", d, n-1)
		}

		deg[0] = 0
		for i := 1; i <= d; i++ {
			deg[i]--
			if deg[i] < 0 {
				return builderErrorf(MethodHavelHakimi, ErrNotGraphical,
					"position %d would need a negative remaining degree", i)
			}
			if err := a.SetEdge(0, i, unweightedEdge); err != nil {
				return fmt.Errorf("%s: SetEdge(0,%d): %w", MethodHavelHakimi, i, err)
			}
		}
	}

	return nil
}
