// SPDX-License-Identifier: MIT

// Package matrix: domain types for dense GF(2) linear algebra.
// This file intentionally contains ONLY domain-facing types (the element
// scalar and the public Matrix interface). Errors and options live in
// dedicated files (errors.go, options.go) per the package conventions.
package matrix

// Bit is a single GF(2) element. Legal values are exactly Zero and One;
// arithmetic is XOR for addition and AND for multiplication. A dedicated
// type keeps scalar results (determinant, solve components) self-describing
// instead of leaking bare uint8 through the API.
type Bit = uint8

// Canonical GF(2) element values. Every ingestion path validates against
// these under the bit policy (see options.go); values are never reduced
// mod 2 silently.
const (
	// Zero is the additive identity of GF(2).
	Zero Bit = 0
	// One is the multiplicative identity of GF(2).
	One Bit = 1
)

// Matrix represents a two-dimensional mutable array of GF(2) values.
// Each method enforces bounds checking and returns clear errors on misuse.
// The concrete implementation is *Dense (bit-packed); kernels accept the
// interface and fast-path on *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c/64)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (Bit, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange on invalid indices and ErrNotBinary when v is
	// neither Zero nor One (under the default bit policy).
	// Complexity: O(1).
	Set(i, j int, v Bit) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols/64).
	Clone() Matrix
}
