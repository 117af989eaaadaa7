// SPDX-License-Identifier: MIT
// Package channel supplies Transition Probability Providers for the
// Blahut–Arimoto core in package baa.
//
// A provider answers a single question: given a transmitted codeword x and a
// received codeword y, what is P(y | x)? The core treats codewords as opaque,
// index-addressable values, so any type can be used as long as a Provider for
// it exists.
//
// ✨ Providers in this package:
//   - BinarySymmetric — fixed-width bit words, each bit flipped with probability p.
//   - Deletion        — variable-length bit words, each bit deleted with probability d.
//   - Table           — explicit transition matrix over integer symbols (gonum/mat).
//   - Func            — adapter turning any func(x, y C) float64 into a Provider.
//
// ⚙️ Usage:
//
//	bsc := channel.BinarySymmetric{Flip: 0.1}
//	x, _ := channel.ParseWord("0110")
//	y, _ := channel.ParseWord("0111")
//	p := bsc.Prob(x, y) // 0.1 · 0.9³
//
// Providers are deterministic, perform no I/O and never memoize: every call
// recomputes the probability from its inputs.
package channel
