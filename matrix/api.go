// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or bit policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c/64).
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²/64) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.rows[i].Set(uint(i))
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c/64) for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers. Complexity: O(r*c/64).
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n²/64). Validates square via central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a ⊕ b.
// Complexity: O(r*c/64) on *Dense inputs.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c/64) on *Dense inputs.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(r*c).
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// RankOf is an alias for Rank. Complexity: O(r*c²/64).
func RankOf(m Matrix) (int, error) { return Rank(m) }

// DetOf is an alias for Det: One iff square and full-rank.
// Complexity: O(n³/64).
func DetOf(m Matrix) (Bit, error) { return Det(m) }

// InverseOf is an alias for Inverse: returns A⁻¹ via Gauss–Jordan on [A|I].
// Complexity: O(n³/32).
func InverseOf(m Matrix) (Matrix, error) { return Inverse(m) }

// SolveSystem is an alias for Solve: one particular solution of A·x = b.
// Complexity: O(r*c²/64).
func SolveSystem(a Matrix, b []Bit) ([]Bit, error) { return Solve(a, b) }

// ---------- Predicates (cheap on packed storage) ----------

// IsZero reports whether every entry of m is zero.
// Fast-path: one per-row emptiness check on packed storage.
// Errors: ErrNilMatrix. Complexity: O(r*c/64).
func IsZero(m Matrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf("IsZero", err)
	}
	if d, ok := m.(*Dense); ok {
		if err := d.alive(); err != nil {
			return false, matrixErrorf("IsZero", err)
		}
		for i := 0; i < d.r; i++ {
			if !d.rows[i].None() {
				return false, nil
			}
		}

		return true, nil
	}

	var i, j int
	var v Bit
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return false, matrixErrorf("IsZero", err)
			}
			if v != Zero {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsIdentity reports whether m is square with ones exactly on the diagonal.
// Fast-path: each row must have popcount 1 with the set bit on the diagonal.
// Errors: ErrNilMatrix (non-square inputs simply report false).
// Complexity: O(n²/64).
func IsIdentity(m Matrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf("IsIdentity", err)
	}
	if m.Rows() != m.Cols() {
		return false, nil
	}
	if d, ok := m.(*Dense); ok {
		if err := d.alive(); err != nil {
			return false, matrixErrorf("IsIdentity", err)
		}
		for i := 0; i < d.r; i++ {
			if d.rows[i].Count() != 1 || !d.rows[i].Test(uint(i)) {
				return false, nil
			}
		}

		return true, nil
	}

	var i, j int
	var v Bit
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return false, matrixErrorf("IsIdentity", err)
			}
			want := Zero
			if i == j {
				want = One
			}
			if v != want {
				return false, nil
			}
		}
	}

	return true, nil
}
