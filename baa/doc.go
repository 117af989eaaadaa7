// SPDX-License-Identifier: MIT
// Package baa implements the Blahut–Arimoto Algorithm (BAA) for estimating the
// capacity of a discrete memoryless channel, together with two mutual
// information (rate) computations.
//
// 🚀 What is BAA?
//
//	Given a channel P(j | i) and an input distribution Q over the transmitted
//	symbols, one BAA iteration computes
//	  W_j      = Σ_i P(j|i)·Q_i                        (output marginal)
//	  log α_k  = Σ_j P(j|k)·(log Q_k + log P(j|k) − log W_j)
//	  Q'_k     = exp(log α_k) / Σ_i exp(log α_i)
//	Repeating the step drives Q toward the capacity-achieving distribution.
//	Deciding when to stop is left to the caller.
//
// ✨ Key features:
//   - Row/Col       — expand a channel.Provider into rows or columns.
//   - LogDenominators — pair-averaged log marginals (received[2m], received[2m+1]).
//   - LogAlphas     — per-symbol log weights, independent per transmitted symbol.
//   - Step          — one full iteration with log-sum-exp stabilization.
//   - Rate          — reference mutual information over an explicit table.
//   - RateEfficient — table-free rate reusing precomputed log-denominators.
//   - Symmetries    — one representative per symmetric codeword pair.
//   - Executor      — the same step/rate over index ranges on a worker pool.
//
// ⚙️ Usage:
//
//	bsc := channel.BinarySymmetric{Flip: 0.1}
//	received := []channel.Word{{0b00, 2}, {0b11, 2}, {0b01, 2}, {0b10, 2}}
//	transmitted, _ := baa.Symmetries(received) // 00, 01
//	q := []float64{0.8, 0.2}
//	for it := 0; it < 30; it++ {
//	  q, _ = baa.Step[channel.Word](bsc, transmitted, received, q)
//	}
//	logDen, _ := baa.LogDenominators[channel.Word](bsc, transmitted, received, q)
//	rate, _ := baa.RateEfficient[channel.Word](bsc, transmitted, received, logDen, q) // nats
//
// Received-set pairing:
//
//	LogDenominators (and therefore Step) assume the received set is ordered so
//	that received[2m] and received[2m+1] are symmetric counterparts under the
//	channel (e.g. a word and its complement). The two marginals are averaged
//	and the same log value is written to both slots. This is exact when the
//	pairing reflects a true channel symmetry and the transmitted set holds one
//	representative per symmetric input pair; it is NOT verified here.
//
// Numeric policy:
//
//	Probabilities below fixed thresholds are treated as exactly zero (see
//	AlphaSkipThreshold, RateRowSkipThreshold, RateTableSkipThreshold) and
//	denominators that are NaN or below DenominatorFloor are clamped. No error
//	is raised for these; errors are reserved for caller bugs such as length
//	mismatches or odd-length symmetric sets.
//
// Complexity:
//
//   - Step, Rate, RateEfficient: O(n_I·n_J) provider calls.
//   - Row, Col: O(n_J), O(n_I) provider calls.
package baa
