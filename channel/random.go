// SPDX-License-Identifier: MIT
// Deterministic random channels.
//
//   - Determinism: same seed ⇒ identical table across platforms.
//   - No time-based sources: seed==0 maps to a fixed default seed.
//   - math/rand.Rand is NOT goroutine-safe; each call owns its own stream.

package channel

import (
	"fmt"
	"math/rand"
)

// defaultRandomSeed is the fixed seed used when callers pass seed==0.
const defaultRandomSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand (seed==0 ⇒ defaultRandomSeed).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRandomSeed
	}
	return rand.New(rand.NewSource(seed))
}

// RandomTable returns an nI×nJ row-stochastic Table: every row is a random
// probability vector over the nJ received symbols.
//
// Errors: ErrBadShape if nI<=0 or nJ<=0.
// Complexity: O(nI·nJ).
func RandomTable(nI, nJ int, seed int64) (*Table, error) {
	if nI <= 0 || nJ <= 0 {
		return nil, fmt.Errorf("RandomTable: %dx%d: %w", nI, nJ, ErrBadShape)
	}
	rng := rngFromSeed(seed)
	data := make([]float64, nI*nJ)
	for i := 0; i < nI; i++ {
		row := data[i*nJ : (i+1)*nJ]
		var sum float64
		for j := range row {
			// Shift away from 0 so every row sum is strictly positive.
			row[j] = rng.Float64() + 1e-3
			sum += row[j]
		}
		for j := range row {
			row[j] /= sum
		}
	}

	return tableFromData(nI, nJ, data)
}

// RandomDistribution returns a random probability vector of length n
// drawn from the stream selected by seed. Returns nil for n<=0.
func RandomDistribution(n int, seed int64) []float64 {
	if n <= 0 {
		return nil
	}
	rng := rngFromSeed(seed)
	q := make([]float64, n)
	var sum float64
	for i := range q {
		q[i] = rng.Float64() + 1e-3
		sum += q[i]
	}
	for i := range q {
		q[i] /= sum
	}

	return q
}
