// SPDX-License-Identifier: MIT

// Package matrix implements dense linear algebra over GF(2), the field with
// two elements where addition is XOR and multiplication is AND.
//
// The package provides:
//
//   - Dense — bit-packed storage (64 entries per word) with word-parallel
//     row primitives (XorRow, AndRowMask, SwapRows); the packing makes every
//     elimination-based algorithm run on whole words instead of single bits.
//   - RowView / ElemView — zero-copy, bounds-checked borrows of one row or
//     one cell, invalidated (ErrUseAfterFree) when their base is released.
//   - Kernels — Add, Mul, Transpose, Eliminate, Rank, Det, Inverse, Solve;
//     pure functions with deterministic pivoting and sentinel errors.
//   - Mat — the owning façade tying one Dense to a policy set, brokering
//     arithmetic, views, conversion and rendering.
//
// Determinism is a hard contract: fixed loop orders, lowest-index pivot
// selection, no randomness. Singular matrices and inconsistent systems are
// reported as recoverable sentinel errors (ErrSingular, ErrNoSolution), not
// panics — check them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
