// Package gf2 is a dense linear-algebra toolkit for the finite field GF(2) —
// matrices of bits where addition is XOR and multiplication is AND.
//
// 🚀 What is gf2?
//
//	A small, deterministic library built around bit-packed storage:
//		• Packed matrices: 64 entries per machine word, word-parallel row ops
//		• Views: zero-copy row/element borrows with use-after-free detection
//		• Kernels: add, multiply, transpose, Gaussian elimination
//		• Structure: rank, determinant, inversion, linear solving
//		• Interop: lossless 0/1-row and packed-byte import/export
//
// ✨ Why choose gf2?
//
//   - Predictable – fixed loop orders, lowest-index pivoting, no randomness
//   - Fail-fast – sentinel errors for every misuse, never a silent coercion
//   - Honest outcomes – singular matrices and unsolvable systems are values
//     to branch on (errors.Is), not panics
//
// Everything lives under two packages:
//
//	matrix/  — storage, views, kernels and the owning Mat façade
//	cmd/gf2  — command-line front-end (rank, det, inverse, mul, add, solve)
//
// Quick example:
//
//	m, _ := matrix.MatFromRows([][]matrix.Bit{
//		{1, 1},
//		{0, 1},
//	})
//	inv, _ := m.Inverse() // self-inverse over GF(2)
//	same, _ := m.Equal(inv)
//	fmt.Println(same) // true
//
// Start with package matrix; the CLI is a thin wrapper over it.
package gf2
