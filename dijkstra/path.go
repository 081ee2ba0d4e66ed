// SPDX-License-Identifier: MIT

package dijkstra

import "fmt"

// PathTo rebuilds the vertex sequence src → … → dst from a predecessor array
// returned with WithReturnPath.
//
// Returns ErrNoPath when dst was never reached and ErrBadPredecessors when
// prev is too short, points out of range, or cycles without hitting src.
// Complexity: O(len(path)).
func PathTo(prev []int, src, dst int) ([]int, error) {
	n := len(prev)
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return nil, fmt.Errorf("%w: src=%d dst=%d n=%d", ErrBadPredecessors, src, dst, n)
	}
	if dst == src {
		return []int{src}, nil
	}
	if prev[dst] == NoPredecessor {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dst)
	}

	path := []int{dst}
	for v := dst; v != src; {
		v = prev[v]
		if v < 0 || v >= n || len(path) > n {
			return nil, fmt.Errorf("%w: walking back from %d", ErrBadPredecessors, dst)
		}
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
