// SPDX-License-Identifier: MIT

package baa

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/chancap/channel"
)

// Marginal returns W = Σ_i P(received | transmitted[i])·q[i], the probability of
// observing received under the input distribution q.
//
// Errors: ErrNilProvider, ErrDimensionMismatch (len(q) != len(transmitted)).
// Complexity: O(n_I) provider calls.
func Marginal[C any](p channel.Provider[C], transmitted []C, received C, q []float64) (float64, error) {
	if p == nil {
		return 0, opErrorf("Marginal", ErrNilProvider)
	}
	if len(q) != len(transmitted) {
		return 0, opErrorf("Marginal", ErrDimensionMismatch)
	}

	return marginal(p, transmitted, received, q), nil
}

// marginal is the unchecked kernel behind Marginal.
func marginal[C any](p channel.Provider[C], transmitted []C, received C, q []float64) float64 {
	return floats.Dot(col(p, transmitted, received), q)
}

// LogDenominators returns the log marginal of every received symbol under q,
// with the pairing symmetry applied: for each pair (2m, 2m+1) both marginals
// are computed, averaged, and log of the average is written to both slots.
//
// Precondition (not verified): received[2m] and received[2m+1] are symmetric
// counterparts under the channel. See the package documentation.
//
// Partial evaluation:
//   - transmitted/q restricted to a sub-range give the log of the partial
//     marginal; combine partials over disjoint ranges with CombineLogDenominators.
//   - received restricted to an even-aligned sub-range gives the matching
//     slice of the full result.
//
// A received pair no input can produce yields −Inf.
//
// Errors: ErrNilProvider, ErrDimensionMismatch, ErrOddLength.
// Complexity: O(n_I·n_J) provider calls.
func LogDenominators[C any](p channel.Provider[C], transmitted, received []C, q []float64) ([]float64, error) {
	const op = "LogDenominators"
	if p == nil {
		return nil, opErrorf(op, ErrNilProvider)
	}
	if len(q) != len(transmitted) {
		return nil, opErrorf(op, ErrDimensionMismatch)
	}
	if len(received)%2 != 0 {
		return nil, opErrorf(op, ErrOddLength)
	}

	return logDenominators(p, transmitted, received, q), nil
}

// logDenominators is the unchecked kernel behind LogDenominators.
func logDenominators[C any](p channel.Provider[C], transmitted, received []C, q []float64) []float64 {
	logDen := make([]float64, len(received))
	for j := 0; j < len(received); j += 2 {
		den1 := marginal(p, transmitted, received[j], q)
		den2 := marginal(p, transmitted, received[j+1], q)
		entry := math.Log((den1 + den2) / 2)
		logDen[j] = entry
		logDen[j+1] = entry
	}

	return logDen
}

// CombineLogDenominators merges log-denominator vectors computed over
// disjoint transmitted sub-ranges: out[j] = log Σ_k exp(parts[k][j]).
//
// Errors: ErrEmptyInput (no parts), ErrDimensionMismatch (ragged parts).
// Complexity: O(len(parts)·n_J).
func CombineLogDenominators(parts ...[]float64) ([]float64, error) {
	const op = "CombineLogDenominators"
	if len(parts) == 0 {
		return nil, opErrorf(op, ErrEmptyInput)
	}
	n := len(parts[0])
	for _, part := range parts[1:] {
		if len(part) != n {
			return nil, opErrorf(op, ErrDimensionMismatch)
		}
	}

	out := make([]float64, n)
	column := make([]float64, len(parts)) // reused per received symbol
	for j := range out {
		for k, part := range parts {
			column[k] = part[j]
		}
		out[j] = floats.LogSumExp(column)
	}

	return out, nil
}
