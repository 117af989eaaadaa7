// SPDX-License-Identifier: MIT

package baa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chancap/baa"
	"github.com/katalvlaran/chancap/channel"
)

// TestRowCol_Consistency checks Row(i)[j] == Col(j)[i] == Prob(i, j).
func TestRowCol_Consistency(t *testing.T) {
	tbl := randomTable(t, 4, 6, 7)
	transmitted, received := tbl.Transmitted(), tbl.Received()

	for i, x := range transmitted {
		row, err := baa.Row[int](tbl, x, received)
		require.NoError(t, err)
		require.Len(t, row, len(received))
		for j, y := range received {
			col, err := baa.Col[int](tbl, transmitted, y)
			require.NoError(t, err)
			require.Len(t, col, len(transmitted))
			assert.Equal(t, tbl.Prob(x, y), row[j])
			assert.Equal(t, row[j], col[i], "row/col mismatch at (%d,%d)", i, j)
		}
	}
}

// TestRowCol_WordChannel repeats the consistency check on the deletion channel.
func TestRowCol_WordChannel(t *testing.T) {
	c := channel.Deletion{Rate: 0.2}
	transmitted := complementPairs(3)
	received := complementPairs(2)
	for i, x := range transmitted {
		row, err := baa.Row[channel.Word](c, x, received)
		require.NoError(t, err)
		for j, y := range received {
			col, err := baa.Col[channel.Word](c, transmitted, y)
			require.NoError(t, err)
			assert.Equal(t, row[j], col[i])
		}
	}
}

// TestRowCol_ProviderCalls checks one provider call per entry, no caching.
func TestRowCol_ProviderCalls(t *testing.T) {
	p := &countingProvider[int]{inner: randomTable(t, 3, 5, 1)}
	received := channel.Symbols(5)

	_, err := baa.Row[int](p, 0, received)
	require.NoError(t, err)
	assert.Equal(t, 5, p.calls)

	_, err = baa.Row[int](p, 0, received)
	require.NoError(t, err)
	assert.Equal(t, 10, p.calls, "second call recomputes")

	_, err = baa.Col[int](p, channel.Symbols(3), 2)
	require.NoError(t, err)
	assert.Equal(t, 13, p.calls)
}

// TestRowCol_Empty returns empty vectors for empty symbol sets.
func TestRowCol_Empty(t *testing.T) {
	tbl := randomTable(t, 2, 2, 1)
	row, err := baa.Row[int](tbl, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, row)
	col, err := baa.Col[int](tbl, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, col)
}

// TestRowCol_NilProvider surfaces ErrNilProvider.
func TestRowCol_NilProvider(t *testing.T) {
	_, err := baa.Row[int](nil, 0, []int{0})
	assert.ErrorIs(t, err, baa.ErrNilProvider)
	_, err = baa.Col[int](nil, []int{0}, 0)
	assert.ErrorIs(t, err, baa.ErrNilProvider)
}
