// SPDX-License-Identifier: MIT

package baa

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/chancap/channel"
)

// Step performs exactly one Blahut–Arimoto iteration and returns the updated
// input distribution (same length as q, non-negative, summing to 1).
//
// Stages:
//  1. logDen  ← LogDenominators(p, transmitted, received, q)
//  2. logα    ← LogAlphas(p, transmitted, received, q, logDen)
//  3. Q'      ← Normalize(logα)
//
// Errors: ErrNilProvider, ErrEmptyInput, ErrDimensionMismatch, ErrOddLength,
// ErrZeroMass, ErrNonFinite.
// Complexity: O(n_I·n_J) provider calls.
func Step[C any](p channel.Provider[C], transmitted, received []C, q []float64) ([]float64, error) {
	const op = "Step"
	if len(transmitted) == 0 {
		return nil, opErrorf(op, ErrEmptyInput)
	}
	logDen, err := LogDenominators(p, transmitted, received, q)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	next, err := Normalize(logAlphas(p, transmitted, received, q, logDen))
	if err != nil {
		return nil, opErrorf(op, err)
	}

	return next, nil
}

// Normalize turns log weights into a probability vector with the log-sum-exp
// trick: subtract the maximum, exponentiate, divide by the sum. The shift keeps
// every exponent ≤ 0, so no entry overflows and the largest one is exactly 1.
// The input is not modified.
//
// Errors:
//   - ErrEmptyInput — empty logAlpha.
//   - ErrNonFinite  — a NaN entry or a +Inf maximum.
//   - ErrZeroMass   — every entry is −Inf (no symbol carries mass).
//
// Complexity: O(n).
func Normalize(logAlpha []float64) ([]float64, error) {
	const op = "Normalize"
	if len(logAlpha) == 0 {
		return nil, opErrorf(op, ErrEmptyInput)
	}
	if floats.HasNaN(logAlpha) {
		return nil, opErrorf(op, ErrNonFinite)
	}
	maxLogAlpha := floats.Max(logAlpha)
	if math.IsInf(maxLogAlpha, 1) {
		return nil, opErrorf(op, ErrNonFinite)
	}
	if math.IsInf(maxLogAlpha, -1) {
		return nil, opErrorf(op, ErrZeroMass)
	}

	alphas := make([]float64, len(logAlpha))
	for i, la := range logAlpha {
		alphas[i] = math.Exp(la - maxLogAlpha)
	}
	floats.Scale(1/floats.Sum(alphas), alphas)

	return alphas, nil
}
