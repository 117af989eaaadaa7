// SPDX-License-Identifier: MIT

package channel

import (
	"fmt"
	"strings"
)

// MaxWordLen is the longest bit word a Word can hold.
const MaxWordLen = 64

// Word is a bit-string codeword of length Len (0..MaxWordLen).
//
// Bit k (0-based, left to right) lives at position Len-1-k of Bits, so the
// integer value of Bits equals the binary number spelled by the word:
// "0110" has Bits == 6. ParseWord and Complement keep bits above Len zero;
// providers ignore them on hand-built words.
type Word struct {
	Bits uint64
	Len  int
}

// ParseWord builds a Word from a string of '0' and '1' characters.
// The empty string yields the empty word.
func ParseWord(s string) (Word, error) {
	if len(s) > MaxWordLen {
		return Word{}, fmt.Errorf("ParseWord: %d bits: %w", len(s), ErrWordTooLong)
	}
	var w Word
	for k := 0; k < len(s); k++ {
		w.Bits <<= 1
		switch s[k] {
		case '0':
		case '1':
			w.Bits |= 1
		default:
			return Word{}, fmt.Errorf("ParseWord: %q at %d: %w", s[k], k, ErrBadWord)
		}
	}
	w.Len = len(s)

	return w, nil
}

// Bit returns bit k (0-based from the left) as 0 or 1.
// Complexity: O(1).
func (w Word) Bit(k int) uint8 {
	return uint8((w.Bits >> uint(w.Len-1-k)) & 1)
}

// Complement flips every bit of w, keeping its length.
func (w Word) Complement() Word {
	return Word{Bits: ^w.Bits & w.mask(), Len: w.Len}
}

// mask has ones in the low Len positions.
func (w Word) mask() uint64 {
	switch {
	case w.Len <= 0:
		return 0
	case w.Len >= MaxWordLen:
		return ^uint64(0)
	}

	return ^uint64(0) >> uint(MaxWordLen-w.Len)
}

// String renders w as a string of '0'/'1' characters.
func (w Word) String() string {
	var sb strings.Builder
	sb.Grow(w.Len)
	for k := 0; k < w.Len; k++ {
		sb.WriteByte('0' + w.Bit(k))
	}

	return sb.String()
}
