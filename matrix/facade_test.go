// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Mat façade: construction,
// arithmetic dispatch, option inheritance and the Free lifecycle.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gf2/matrix"
)

func TestNewMat_ShapeAndErrors(t *testing.T) {
	t.Parallel()

	m := MustMat(t, 3, 5)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 5, m.Cols())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 5, c)

	_, err := matrix.NewMat(0, 5)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewMat(3, -1)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestMat_AddMulT(t *testing.T) {
	t.Parallel()

	a := MustMatRows(t, [][]matrix.Bit{{1, 1}, {0, 1}})
	b := MustMatRows(t, [][]matrix.Bit{{1, 0}, {1, 1}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	CompareExact(t, [][]matrix.Bit{{0, 1}, {1, 0}}, sum.Mtx())

	prod, err := a.Mul(b)
	require.NoError(t, err)
	// [[1,1],[0,1]]·[[1,0],[1,1]] = [[0,1],[1,1]].
	CompareExact(t, [][]matrix.Bit{{0, 1}, {1, 1}}, prod.Mtx())

	tr, err := a.T()
	require.NoError(t, err)
	CompareExact(t, [][]matrix.Bit{{1, 0}, {1, 1}}, tr.Mtx())

	_, err = a.Add(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = a.Mul(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMat_Equal(t *testing.T) {
	t.Parallel()

	a := MustMatRows(t, [][]matrix.Bit{{1, 0}, {0, 1}})
	b := MustMatRows(t, [][]matrix.Bit{{1, 0}, {0, 1}})
	c := MustMatRows(t, [][]matrix.Bit{{1, 1}, {0, 1}})

	eq, err := a.Equal(b)
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = a.Equal(c)
	require.NoError(t, err)
	require.False(t, eq)

	_, err = a.Equal(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMat_RankDetInverseSolve(t *testing.T) {
	t.Parallel()

	m := MustMatRows(t, [][]matrix.Bit{{1, 1}, {0, 1}})

	rank, err := m.Rank()
	require.NoError(t, err)
	require.Equal(t, 2, rank)

	det, err := m.Det()
	require.NoError(t, err)
	require.Equal(t, matrix.One, det)

	inv, err := m.Inverse()
	require.NoError(t, err)
	// Self-inverse over GF(2).
	eq, err := m.Equal(inv)
	require.NoError(t, err)
	require.True(t, eq)

	x, err := m.Solve([]matrix.Bit{1, 1})
	require.NoError(t, err)
	require.Equal(t, []matrix.Bit{0, 1}, x)

	x, info, err := m.SolveFull([]matrix.Bit{1, 1})
	require.NoError(t, err)
	require.Equal(t, []matrix.Bit{0, 1}, x)
	require.Equal(t, 2, info.Rank)
	require.Empty(t, info.FreeCols)
}

func TestMat_DetSingularAndNonSquare(t *testing.T) {
	t.Parallel()

	sing := MustMatRows(t, [][]matrix.Bit{{1, 1}, {1, 1}})
	det, err := sing.Det()
	require.NoError(t, err)
	require.Equal(t, matrix.Zero, det)

	_, err = sing.Inverse()
	AssertErrorIs(t, err, matrix.ErrSingular)

	rect := MustMat(t, 2, 3)
	_, err = rect.Det()
	AssertErrorIs(t, err, matrix.ErrNonSquare)
}

func TestMat_EliminateHonorsReducedOption(t *testing.T) {
	t.Parallel()

	rows := [][]matrix.Bit{
		{1, 1, 1},
		{0, 1, 1},
		{0, 0, 1},
	}

	// Default: plain echelon form — already-echelon input comes back as-is.
	plain := MustMatRows(t, rows)
	ref, rank, pivots, err := plain.Eliminate()
	require.NoError(t, err)
	require.Equal(t, 3, rank)
	require.Equal(t, []int{0, 1, 2}, pivots)
	CompareExact(t, rows, ref.Mtx())

	// WithReduced: pivot columns cleared above as well ⇒ identity here.
	reduced := MustMatRows(t, rows, matrix.WithReduced(true))
	rref, rank, _, err := reduced.Eliminate()
	require.NoError(t, err)
	require.Equal(t, 3, rank)
	isID, err := matrix.IsIdentity(rref.Mtx())
	require.NoError(t, err)
	require.True(t, isID)
}

func TestMat_BitPolicyInherited(t *testing.T) {
	t.Parallel()

	// Strict by default: non-binary writes fail.
	strict := MustMat(t, 2, 2)
	AssertErrorIs(t, strict.SetBit(0, 0, 3), matrix.ErrNotBinary)

	// Relaxed policy reduces mod 2 — and derived matrices inherit it.
	relaxed := MustMat(t, 2, 2, matrix.WithValidateBits(false))
	require.NoError(t, relaxed.SetBit(0, 0, 3)) // 3 & 1 == 1
	v, err := relaxed.GetBit(0, 0)
	require.NoError(t, err)
	require.Equal(t, matrix.One, v)

	derived, err := relaxed.T()
	require.NoError(t, err)
	require.NoError(t, derived.SetBit(1, 1, 2)) // inherited relaxed policy: 2 & 1 == 0
	v, err = derived.GetBit(1, 1)
	require.NoError(t, err)
	require.Equal(t, matrix.Zero, v)
}

func TestMat_ErrorsCarryFacadeContext(t *testing.T) {
	t.Parallel()

	m := MustMatRows(t, [][]matrix.Bit{{1, 0}, {0, 1}})

	// Kernel errors surfacing through the façade carry the Mat context.
	_, err := m.Solve([]matrix.Bit{1})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Mat.Solve:")

	_, _, err = m.SolveFull([]matrix.Bit{1})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Mat.Solve:")

	freed := MustMatRows(t, [][]matrix.Bit{{1, 0}, {0, 1}})
	freed.Free()
	_, err = m.Equal(freed)
	AssertErrorIs(t, err, matrix.ErrUseAfterFree)
	require.Contains(t, err.Error(), "Mat.Equal:")
}

func TestMat_FreeLifecycle(t *testing.T) {
	t.Parallel()

	m := MustMatRows(t, [][]matrix.Bit{{1, 0}, {0, 1}})
	other := MustMat(t, 2, 2)

	m.Free()
	m.Free() // idempotent

	// Dimension queries keep answering with the last known shape.
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, "[released]", m.String())

	// Every data operation fails the liveness sentinel.
	_, err := m.GetBit(0, 0)
	AssertErrorIs(t, err, matrix.ErrUseAfterFree)
	AssertErrorIs(t, m.SetBit(0, 0, 1), matrix.ErrUseAfterFree)
	_, err = m.Add(other)
	AssertErrorIs(t, err, matrix.ErrUseAfterFree)
	_, err = m.Rank()
	AssertErrorIs(t, err, matrix.ErrUseAfterFree)
	_, err = m.Det()
	AssertErrorIs(t, err, matrix.ErrUseAfterFree)
	_, _, _, err = m.Eliminate()
	AssertErrorIs(t, err, matrix.ErrUseAfterFree)
	_, err = m.ToRows()
	AssertErrorIs(t, err, matrix.ErrUseAfterFree)

	// A live left operand with a freed right operand fails too.
	_, err = other.Add(m)
	AssertErrorIs(t, err, matrix.ErrUseAfterFree)
}

func TestMat_StringNilAndLive(t *testing.T) {
	t.Parallel()

	var nilMat *matrix.Mat
	require.Equal(t, "[nil]", nilMat.String())
	require.Equal(t, 0, nilMat.Rows())
	require.Equal(t, 0, nilMat.Cols())

	m := MustMatRows(t, [][]matrix.Bit{{1, 0}})
	require.Contains(t, m.String(), "[1 0]")
}
