// SPDX-License-Identifier: MIT

package channel

import "math"

// Deletion is the i.i.d. deletion channel: every transmitted bit is dropped
// independently with probability Rate and the survivors arrive in order.
//
// For |x| = n and |y| = m ≤ n:
//
//	P(y | x) = N(x, y) · d^(n−m) · (1−d)^m,  d = Rate
//
// where N(x, y) is the number of ways y embeds in x as a subsequence.
// A received word longer than the transmitted one has probability 0.
type Deletion struct {
	Rate float64
}

// Prob implements Provider[Word].
// Complexity: O(n·m).
func (c Deletion) Prob(transmitted, received Word) float64 {
	n, m := transmitted.Len, received.Len
	if m > n {
		return 0
	}
	ways := embeddings(transmitted, received)
	if ways == 0 {
		return 0
	}

	return ways * math.Pow(c.Rate, float64(n-m)) * math.Pow(1-c.Rate, float64(m))
}

// embeddings counts subsequence embeddings of y in x with a single rolling row.
// ways[j] holds the count for the prefix y[:j] against the x prefix seen so far.
// Complexity: O(|x|·|y|) time, O(|y|) memory.
func embeddings(x, y Word) float64 {
	m := y.Len
	ways := make([]float64, m+1)
	ways[0] = 1
	for i := 0; i < x.Len; i++ {
		xb := x.Bit(i)
		// Descending j so each x bit is used at most once per embedding.
		for j := m; j >= 1; j-- {
			if y.Bit(j-1) == xb {
				ways[j] += ways[j-1]
			}
		}
	}

	return ways[m]
}
