// SPDX-License-Identifier: MIT
// Package baa: sentinel error set.
//
// Every message is prefixed with "baa: ". Operations wrap these with their
// name via fmt.Errorf("Op: %w", ErrX); callers match with errors.Is.
// Numeric edge cases (tiny probabilities, zero denominators) are never errors.

package baa

import (
	"errors"
	"fmt"
)

var (
	// ErrNilProvider indicates that a nil channel.Provider was passed.
	ErrNilProvider = errors.New("baa: nil transition probability provider")

	// ErrDimensionMismatch indicates inconsistent vector lengths, e.g.
	// len(q) != len(transmitted) or len(logDen) != len(received).
	ErrDimensionMismatch = errors.New("baa: dimension mismatch")

	// ErrOddLength indicates that a sequence required to hold symmetric pairs
	// has an odd number of elements.
	ErrOddLength = errors.New("baa: odd-length symmetric sequence")

	// ErrEmptyInput indicates an empty transmitted/received set or log-alpha vector.
	ErrEmptyInput = errors.New("baa: empty input")

	// ErrZeroMass indicates that no transmitted symbol carries probability mass,
	// so the next distribution cannot be normalized.
	ErrZeroMass = errors.New("baa: distribution has no probability mass")

	// ErrNonFinite indicates a NaN or +Inf log weight, which only arises from
	// NaN provider output or a log-denominator vector inconsistent with q.
	ErrNonFinite = errors.New("baa: non-finite log weight")

	// ErrBadRange indicates an invalid partition request or index range.
	ErrBadRange = errors.New("baa: invalid index range")
)

// opErrorf tags err with the operation name.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
