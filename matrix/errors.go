// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape/index/bit-value -> nil receiver -> dimension mismatch -> structural
// outcomes (ErrSingular, ErrNoSolution) -> lifetime violations (ErrUseAfterFree).

var (
	// ErrInvalidDimensions is returned when requested dimensions are non-positive.
	// Public constructors must validate shape before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when inversion is requested on a rank-deficient
	// square matrix. Over GF(2) this is exactly rank < n; there is no
	// "nearly singular" gray zone.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNoSolution reports an inconsistent linear system: after elimination
	// some equation reads 0 = 1. This is an expected, recoverable outcome —
	// callers should branch on it, not treat it as a kernel failure.
	ErrNoSolution = errors.New("matrix: system has no solution")

	// ErrNotBinary signals that a value outside {0,1} was supplied where a
	// GF(2) element is required (ingestion, Set, row data). Values are never
	// silently reduced mod 2; rejecting keeps shape/data bugs loud.
	ErrNotBinary = errors.New("matrix: value is not a GF(2) element")

	// ErrUseAfterFree indicates an access through a view or façade whose
	// backing storage was released or structurally changed since the view
	// was taken. Detected via a generation counter, never by dereferencing
	// freed memory.
	ErrUseAfterFree = errors.New("matrix: use after free")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
