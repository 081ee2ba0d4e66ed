// SPDX-License-Identifier: MIT

package builder

// IsGraphical reports whether seq is the degree sequence of some simple
// undirected graph, using the Erdős–Gallai inequalities:
//
//	Σ d is even, and for every k in 1..n:
//	Σ_{i≤k} d_i ≤ k(k−1) + Σ_{i>k} min(d_i, k)   (d sorted non-increasing)
//
// It never touches a graph and serves as an oracle for HavelHakimi.
// Complexity: O(n²) time, O(n) space.
func IsGraphical(seq []int) bool {
	d := append([]int(nil), seq...)
	SortDescending(d)

	sum := 0
	for _, v := range d {
		if v < 0 {
			return false
		}
		sum += v
	}
	if sum%2 != 0 {
		return false
	}

	n := len(d)
	left := 0
	for k := 1; k <= n; k++ {
		left += d[k-1]
		right := k * (k - 1)
		for i := k; i < n; i++ {
			if d[i] < k {
				right += d[i]
			} else {
				right += k
			}
		}
		if left > right {
			return false
		}
	}

	return true
}
