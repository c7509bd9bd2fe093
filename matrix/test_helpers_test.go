// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels
//     and the façade.
//   - Keep all data well-formed {0,1} to avoid bit-policy interference.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gf2/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) kernel paths; the
// wrapper still satisfies Matrix but masks the concrete type.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustMat allocates an r×c façade or fails the test.
func MustMat(t *testing.T, r, c int, opts ...matrix.Option) *matrix.Mat {
	t.Helper()
	m, err := matrix.NewMat(r, c, opts...)
	if err != nil {
		t.Fatalf("NewMat(%d,%d): %v", r, c, err)
	}

	return m
}

// IdentityDense returns an n×n identity Matrix (diagonal = 1, else 0).
func IdentityDense(t *testing.T, n int) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat bit slice.
// Deterministic fixture creation with explicit values; prefer for small
// exact-equality tests.
func NewFilledDense(t *testing.T, r, c int, vals []matrix.Bit) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: %d values for a %dx%d matrix", len(vals), r, c)
	}
	m := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, vals[i*c+j])
		}
	}

	return m
}

// MustMatRows builds a façade from 0/1 rows or fails the test.
func MustMatRows(t *testing.T, rows [][]matrix.Bit, opts ...matrix.Option) *matrix.Mat {
	t.Helper()
	m, err := matrix.MatFromRows(rows, opts...)
	if err != nil {
		t.Fatalf("MatFromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) matrix.Bit {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v matrix.Bit) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%d): %v", i, j, v, err)
	}
}

// AssertErrorIs fails the test unless errors.Is(err, want).
func AssertErrorIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("want errors.Is(err, %v); got: %v", want, err)
	}
}

// CompareExact fails unless m equals the expected 0/1 rows element-wise.
func CompareExact(t *testing.T, want [][]matrix.Bit, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) {
		t.Fatalf("rows: want %d, got %d", len(want), m.Rows())
	}
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		if m.Cols() != len(want[i]) {
			t.Fatalf("cols in row %d: want %d, got %d", i, len(want[i]), m.Cols())
		}
		for j = 0; j < m.Cols(); j++ {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("mismatch at [%d,%d]: want %d, got %d", i, j, want[i][j], got)
			}
		}
	}
}

// FillPattern writes a deterministic pseudo-pattern into m: bit (i,j) is set
// when (i*31+j*17)%3 == 0. Stable across runs, dense enough to exercise
// word-parallel paths, no RNG involved.
func FillPattern(t *testing.T, m matrix.Matrix) {
	t.Helper()
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if (i*31+j*17)%3 == 0 {
				MustSet(t, m, i, j, 1)
			}
		}
	}
}
