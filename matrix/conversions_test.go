// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the interop converters:
// row-slice and packed-byte round trips, plus the FromEdges builder.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gf2/matrix"
)

func TestRows_RoundTrip(t *testing.T) {
	t.Parallel()

	rows := [][]matrix.Bit{
		{1, 0, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1},
	}
	m := MustMatRows(t, rows)

	out, err := m.ToRows()
	require.NoError(t, err)
	require.Equal(t, rows, out)

	// Snapshot semantics: mutating the export must not touch the matrix.
	out[0][0] = 0
	v, err := m.GetBit(0, 0)
	require.NoError(t, err)
	require.Equal(t, matrix.One, v)
}

func TestMatFromRows_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.MatFromRows(nil)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.MatFromRows([][]matrix.Bit{{}})
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)

	// Ragged input is structural breakage, not data to be padded.
	_, err = matrix.MatFromRows([][]matrix.Bit{{1, 0}, {1}})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Default bit policy rejects non-{0,1} values.
	_, err = matrix.MatFromRows([][]matrix.Bit{{1, 2}})
	AssertErrorIs(t, err, matrix.ErrNotBinary)

	// Relaxed policy reduces mod 2 instead.
	m, err := matrix.MatFromRows([][]matrix.Bit{{1, 2}}, matrix.WithValidateBits(false))
	require.NoError(t, err)
	CompareExact(t, [][]matrix.Bit{{1, 0}}, m.Mtx())
}

func TestPacked_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{
		{1, 8},  // exact byte
		{3, 5},  // padding within one byte
		{2, 13}, // two-byte stride with padding
		{4, 64}, // word-aligned
	} {
		m := MustMat(t, tc.rows, tc.cols)
		FillPattern(t, m.Mtx())

		data, err := m.ToPacked()
		require.NoError(t, err)
		require.Len(t, data, tc.rows*((tc.cols+7)/8))

		back, err := matrix.MatFromPacked(tc.rows, tc.cols, data)
		require.NoError(t, err)

		eq, err := matrix.Equal(m.Mtx(), back.Mtx())
		require.NoError(t, err)
		require.True(t, eq, "packed round trip must be exact for %dx%d", tc.rows, tc.cols)
	}
}

func TestToPacked_MSBFirstLayout(t *testing.T) {
	t.Parallel()

	// Column 0 maps to the high bit of the first byte of the row.
	m := MustMatRows(t, [][]matrix.Bit{{1, 0, 0, 0, 0, 0, 0, 1, 1}})
	data, err := m.ToPacked()
	require.NoError(t, err)
	require.Equal(t, []byte{0x81, 0x80}, data)
}

func TestMatFromPacked_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.MatFromPacked(0, 8, nil)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)

	// Wrong payload length for the declared shape.
	_, err = matrix.MatFromPacked(2, 8, []byte{0xFF})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Dirty padding: 5 data bits, then a stray bit in the padding area.
	_, err = matrix.MatFromPacked(1, 5, []byte{0x01})
	AssertErrorIs(t, err, matrix.ErrNotBinary)
}

func TestFromEdges(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromEdges(4, [][2]int{
		{0, 1},
		{1, 2},
		{1, 2}, // duplicate, idempotent
		{3, 3}, // loop sets the diagonal
	})
	require.NoError(t, err)
	CompareExact(t, [][]matrix.Bit{
		{0, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}, m.Mtx())

	// Adjacency of an undirected graph is symmetric: A == Aᵀ.
	tr, err := m.T()
	require.NoError(t, err)
	eq, err := m.Equal(tr)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestFromEdges_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromEdges(0, nil)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromEdges(3, [][2]int{{0, 3}})
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.FromEdges(3, [][2]int{{-1, 0}})
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
}
