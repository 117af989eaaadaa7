// SPDX-License-Identifier: MIT
// Package channel: sentinel errors.
//
// Every message is prefixed with "channel: ". Constructors wrap these with the
// operation name; callers match with errors.Is.

package channel

import "errors"

var (
	// ErrBadShape is returned when a transition table has no rows, no columns,
	// or ragged rows.
	ErrBadShape = errors.New("channel: invalid table shape")

	// ErrBadProbability is returned when a table entry is NaN, ±Inf or outside [0,1].
	ErrBadProbability = errors.New("channel: probability outside [0,1]")

	// ErrBadWord is returned by ParseWord for characters other than '0'/'1'.
	ErrBadWord = errors.New("channel: invalid bit word")

	// ErrWordTooLong is returned when a word exceeds MaxWordLen bits.
	ErrWordTooLong = errors.New("channel: word longer than MaxWordLen bits")
)
