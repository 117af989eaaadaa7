// SPDX-License-Identifier: MIT

package baa

import (
	"math"

	"github.com/katalvlaran/chancap/channel"
)

// LogAlpha returns the unnormalized log weight the next BAA iteration assigns
// to transmitted, whose current probability is qk:
//
//	log α = Σ_j P(j|k)·(log qk + log P(j|k) − logDen[j])
//
// Terms with P(j|k) < AlphaSkipThreshold are skipped. A symbol with qk == 0
// keeps zero mass: the result is −Inf.
//
// Errors: ErrNilProvider, ErrDimensionMismatch (len(logDen) != len(received)).
// Complexity: O(n_J) provider calls.
func LogAlpha[C any](p channel.Provider[C], transmitted C, received []C, qk float64, logDen []float64) (float64, error) {
	const op = "LogAlpha"
	if p == nil {
		return 0, opErrorf(op, ErrNilProvider)
	}
	if len(logDen) != len(received) {
		return 0, opErrorf(op, ErrDimensionMismatch)
	}

	return logAlpha(p, transmitted, received, qk, logDen), nil
}

// logAlpha is the unchecked kernel behind LogAlpha.
func logAlpha[C any](p channel.Provider[C], transmitted C, received []C, qk float64, logDen []float64) float64 {
	if qk == 0 {
		return math.Inf(-1)
	}
	logQk := math.Log(qk)
	probs := row(p, transmitted, received)

	var sum float64
	for j, pjk := range probs {
		if pjk < AlphaSkipThreshold {
			continue
		}
		sum += pjk * (logQk + math.Log(pjk) - logDen[j])
	}

	return sum
}

// LogAlphas evaluates LogAlpha for every transmitted symbol, with q[i] as the
// prior of transmitted[i]. Symbols are independent of each other, so any
// sub-range of transmitted (with the matching sub-range of q) yields the
// matching slice of the full result.
//
// Errors: ErrNilProvider, ErrDimensionMismatch.
// Complexity: O(n_I·n_J) provider calls.
func LogAlphas[C any](p channel.Provider[C], transmitted, received []C, q, logDen []float64) ([]float64, error) {
	const op = "LogAlphas"
	if p == nil {
		return nil, opErrorf(op, ErrNilProvider)
	}
	if len(q) != len(transmitted) || len(logDen) != len(received) {
		return nil, opErrorf(op, ErrDimensionMismatch)
	}

	return logAlphas(p, transmitted, received, q, logDen), nil
}

// logAlphas is the unchecked kernel behind LogAlphas.
func logAlphas[C any](p channel.Provider[C], transmitted, received []C, q, logDen []float64) []float64 {
	out := make([]float64, len(transmitted))
	for i, t := range transmitted {
		out[i] = logAlpha(p, t, received, q[i], logDen)
	}

	return out
}
