// SPDX-License-Identifier: MIT

package baa

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/chancap/channel"
)

// Rate returns the mutual information, in nats, between the input
// distributed as q over transmitted and the channel output over received.
//
// Reference variant:
//  1. Materialize the n_I×n_J table P[k][j] = P(received[j] | transmitted[k]).
//  2. W[j] = Σ_k P[k][j]·q[k], in the linear domain.
//  3. rate = Σ_{k,j} q[k]·P[k][j]·log(P[k][j]/W[j]), skipping P < RateTableSkipThreshold.
//
// Marginals that are NaN or below DenominatorFloor are clamped to DenominatorFloor.
//
// Errors: ErrNilProvider, ErrEmptyInput, ErrDimensionMismatch.
// Complexity: O(n_I·n_J) provider calls and memory.
func Rate[C any](p channel.Provider[C], transmitted, received []C, q []float64) (float64, error) {
	const op = "Rate"
	if p == nil {
		return 0, opErrorf(op, ErrNilProvider)
	}
	nI, nJ := len(transmitted), len(received)
	if nI == 0 || nJ == 0 {
		return 0, opErrorf(op, ErrEmptyInput)
	}
	if len(q) != nI {
		return 0, opErrorf(op, ErrDimensionMismatch)
	}

	table := mat.NewDense(nI, nJ, nil)
	for k := 0; k < nI; k++ {
		table.SetRow(k, row(p, transmitted[k], received))
	}

	// Wᵀ = Pᵀ·q, one marginal per received symbol.
	var den mat.VecDense
	den.MulVec(table.T(), mat.NewVecDense(nI, q))
	for j := 0; j < nJ; j++ {
		if w := den.AtVec(j); math.IsNaN(w) || w < DenominatorFloor {
			den.SetVec(j, DenominatorFloor)
		}
	}

	var rate float64
	for k := 0; k < nI; k++ {
		probs := table.RawRowView(k)
		for j, pjk := range probs {
			if pjk < RateTableSkipThreshold {
				continue
			}
			rate += q[k] * pjk * math.Log(pjk/den.AtVec(j))
		}
	}

	return rate, nil
}

// RateEfficient returns the mutual information, in nats, reusing a
// precomputed log-denominator vector instead of recomputing marginals and
// without materializing the probability table:
//
//	rate = Σ_i q[i] Σ_j P(j|i)·(log P(j|i) − logDen[j]),  skipping P < RateRowSkipThreshold
//
// With logDen = log of the true marginals it agrees with Rate. The sum is
// additive over transmitted symbols: calls over disjoint transmitted ranges
// (with the matching q ranges and the full logDen) sum to the full rate.
// Nothing is cached; callers must pass a logDen consistent with q.
// Symbols with q[i] == 0 are skipped without calling the provider.
//
// Errors: ErrNilProvider, ErrDimensionMismatch.
// Complexity: O(n_I·n_J) provider calls, O(n_J) memory.
func RateEfficient[C any](p channel.Provider[C], transmitted, received []C, logDen, q []float64) (float64, error) {
	const op = "RateEfficient"
	if p == nil {
		return 0, opErrorf(op, ErrNilProvider)
	}
	if len(q) != len(transmitted) || len(logDen) != len(received) {
		return 0, opErrorf(op, ErrDimensionMismatch)
	}

	return rateEfficient(p, transmitted, received, logDen, q), nil
}

// rateEfficient is the unchecked kernel behind RateEfficient.
func rateEfficient[C any](p channel.Provider[C], transmitted, received []C, logDen, q []float64) float64 {
	var rate float64
	for i, t := range transmitted {
		qi := q[i]
		// A zero-prior row contributes nothing; its outputs may have logDen = −Inf.
		if qi == 0 {
			continue
		}
		probs := row(p, t, received)
		for j, pji := range probs {
			if pji < RateRowSkipThreshold {
				continue
			}
			rate += qi * pji * (math.Log(pji) - logDen[j])
		}
	}

	return rate
}

// Bits converts a rate in nats to bits.
func Bits(nats float64) float64 {
	return nats / math.Ln2
}
