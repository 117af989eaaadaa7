// SPDX-License-Identifier: MIT

package channel

import (
	"math"
	"math/bits"
)

// BinarySymmetric is the memoryless binary symmetric channel applied bitwise
// to fixed-width words: every bit is flipped independently with probability Flip.
//
//	P(y | x) = Flip^d · (1−Flip)^(n−d),  d = Hamming distance, n = word length
//
// Words of different lengths have transition probability 0. Bits above Len
// do not count towards the distance.
type BinarySymmetric struct {
	Flip float64
}

// Prob implements Provider[Word].
// Complexity: O(1).
func (c BinarySymmetric) Prob(transmitted, received Word) float64 {
	if transmitted.Len != received.Len {
		return 0
	}
	d := bits.OnesCount64((transmitted.Bits ^ received.Bits) & transmitted.mask())
	n := transmitted.Len

	// math.Pow(0, 0) == 1 keeps the noiseless endpoints exact.
	return math.Pow(c.Flip, float64(d)) * math.Pow(1-c.Flip, float64(n-d))
}
