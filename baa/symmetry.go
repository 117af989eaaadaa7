// SPDX-License-Identifier: MIT

package baa

// Symmetries returns one representative per symmetric pair of codewords:
// the even-indexed elements all[0], all[2], all[4], … in their original order.
//
// The caller asserts that all is ordered as (x, mirror(x)) pairs under the
// channel model; this is not verified.
//
// Errors: ErrOddLength if len(all) is odd.
// Complexity: O(n).
func Symmetries[C any](all []C) ([]C, error) {
	if len(all)%2 != 0 {
		return nil, opErrorf("Symmetries", ErrOddLength)
	}
	even := make([]C, 0, len(all)/2)
	for i := 0; i < len(all); i += 2 {
		even = append(even, all[i])
	}

	return even, nil
}
