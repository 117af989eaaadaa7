// SPDX-License-Identifier: MIT

package baa

import "github.com/katalvlaran/chancap/channel"

// Row returns P(received[j] | transmitted) for every received symbol j.
//
// The provider is called exactly once per received symbol; nothing is cached.
// Errors: ErrNilProvider.
// Complexity: O(n_J) provider calls.
func Row[C any](p channel.Provider[C], transmitted C, received []C) ([]float64, error) {
	if p == nil {
		return nil, opErrorf("Row", ErrNilProvider)
	}

	return row(p, transmitted, received), nil
}

// Col returns P(received | transmitted[i]) for every transmitted symbol i.
//
// Errors: ErrNilProvider.
// Complexity: O(n_I) provider calls.
func Col[C any](p channel.Provider[C], transmitted []C, received C) ([]float64, error) {
	if p == nil {
		return nil, opErrorf("Col", ErrNilProvider)
	}

	return col(p, transmitted, received), nil
}

// row is the unchecked kernel behind Row.
func row[C any](p channel.Provider[C], transmitted C, received []C) []float64 {
	res := make([]float64, len(received))
	for j, r := range received {
		res[j] = p.Prob(transmitted, r)
	}

	return res
}

// col is the unchecked kernel behind Col.
func col[C any](p channel.Provider[C], transmitted []C, received C) []float64 {
	res := make([]float64, len(transmitted))
	for i, t := range transmitted {
		res[i] = p.Prob(t, received)
	}

	return res
}
