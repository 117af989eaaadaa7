// SPDX-License-Identifier: MIT
// Test fixtures shared by the baa tests.
//
//   - Small deterministic channels (BSC, Z, deletion, random tables).
//   - Codeword sets ordered as (w, complement(w)) pairs, the layout the
//     pair-averaged log-denominators expect.

package baa_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chancap/baa"
	"github.com/katalvlaran/chancap/channel"
)

// tol is the default absolute tolerance for float comparisons.
const tol = 1e-9

// complementPairs returns every n-bit word ordered as (w, w̄) pairs,
// taking w over the words whose leading bit is 0.
func complementPairs(n int) []channel.Word {
	out := make([]channel.Word, 0, 1<<n)
	for b := uint64(0); b < 1<<(n-1); b++ {
		w := channel.Word{Bits: b, Len: n}
		out = append(out, w, w.Complement())
	}
	return out
}

// singleBits returns the 1-bit alphabet {0, 1}.
func singleBits() []channel.Word {
	return []channel.Word{{Bits: 0, Len: 1}, {Bits: 1, Len: 1}}
}

// uniform returns the uniform distribution over n symbols.
func uniform(n int) []float64 {
	q := make([]float64, n)
	for i := range q {
		q[i] = 1 / float64(n)
	}
	return q
}

// zChannel returns the Z channel with P(0|1)=0.5, each output column
// duplicated so that received pairs (0,1) and (2,3) are exact symmetric twins.
// Capacity: ln(1.25) nats at Q = [0.6, 0.4].
func zChannel(t testing.TB) *channel.Table {
	t.Helper()
	tbl, err := channel.NewTable([][]float64{
		{0.5, 0.5, 0, 0},
		{0.25, 0.25, 0.25, 0.25},
	})
	require.NoError(t, err)
	return tbl
}

// randomTable wraps channel.RandomTable for tests.
func randomTable(t testing.TB, nI, nJ int, seed int64) *channel.Table {
	t.Helper()
	tbl, err := channel.RandomTable(nI, nJ, seed)
	require.NoError(t, err)
	return tbl
}

// trueLogMarginals returns log W_j without pair averaging.
func trueLogMarginals[C any](t testing.TB, p channel.Provider[C], transmitted, received []C, q []float64) []float64 {
	t.Helper()
	out := make([]float64, len(received))
	for j, r := range received {
		w, err := baa.Marginal(p, transmitted, r, q)
		require.NoError(t, err)
		out[j] = math.Log(w)
	}
	return out
}

// countingProvider counts Prob calls of a wrapped provider.
type countingProvider[C any] struct {
	inner channel.Provider[C]
	calls int
}

func (c *countingProvider[C]) Prob(transmitted, received C) float64 {
	c.calls++
	return c.inner.Prob(transmitted, received)
}
