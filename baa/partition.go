// SPDX-License-Identifier: MIT

package baa

import "fmt"

// Range is the half-open index range [Lo, Hi) of a symbol set.
type Range struct {
	Lo, Hi int
}

// Len returns Hi-Lo.
func (r Range) Len() int { return r.Hi - r.Lo }

// String renders r as "[lo,hi)".
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Lo, r.Hi) }

// Partition splits [0, n) into at most parts contiguous ranges of equal size
// ceil(n/parts), rounded up to a multiple of align; the last range takes the
// remainder. Use align=2 when ranges of the received set must keep the
// (2m, 2m+1) pairs together. n == 0 yields no ranges.
//
// Errors: ErrBadRange if n < 0, parts < 1 or align < 1.
// Complexity: O(parts).
func Partition(n, parts, align int) ([]Range, error) {
	if n < 0 || parts < 1 || align < 1 {
		return nil, fmt.Errorf("Partition(n=%d, parts=%d, align=%d): %w", n, parts, align, ErrBadRange)
	}
	if n == 0 {
		return nil, nil
	}
	size := (n + parts - 1) / parts
	if rem := size % align; rem != 0 {
		size += align - rem
	}

	ranges := make([]Range, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		ranges = append(ranges, Range{Lo: lo, Hi: min(lo+size, n)})
	}

	return ranges, nil
}
