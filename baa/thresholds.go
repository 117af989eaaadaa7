// SPDX-License-Identifier: MIT

package baa

// Numeric policy. These values keep log(0) and division by zero out of every
// sum; changing them changes results.
const (
	// AlphaSkipThreshold: transition probabilities below it contribute nothing
	// to a log-alpha sum.
	AlphaSkipThreshold = 1e-12

	// RateRowSkipThreshold: transition probabilities below it contribute
	// nothing to RateEfficient.
	RateRowSkipThreshold = 1e-20

	// RateTableSkipThreshold: transition probabilities below it contribute
	// nothing to Rate.
	RateTableSkipThreshold = 1e-30

	// DenominatorFloor: Rate clamps NaN marginals and marginals below it to
	// this value before dividing.
	DenominatorFloor = 1e-50
)
