// SPDX-License-Identifier: MIT
// Package matrix provides the GF(2) linear-algebra kernels: element-wise
// addition, matrix multiplication, transpose, Gaussian elimination, rank,
// determinant, inversion and linear solving. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical kernels used across the package and by the façade.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// GF(2) ground rules (used everywhere below):
//   - addition is XOR, multiplication is AND;
//   - "make the pivot 1" needs no scaling step — a nonzero pivot IS 1;
//   - row subtraction and row addition coincide (both are XorRow).
//
// Notes:
//   - Kernels never mutate their inputs; in-place work happens on clones.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opEliminate = "Eliminate"
	opRank      = "Rank"
	opDet       = "Det"
	opInverse   = "Inverse"
	opSolve     = "Solve"
	opEqual     = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across facades. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense materializes an independent *Dense copy of m.
// Fast-path: *Dense clones its packed rows; fallback reads via At.
// The copy is what elimination-style kernels mutate, keeping inputs immutable.
// Complexity: O(r*c/64) fast-path, O(r*c) fallback.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		cp, _ := d.Clone().(*Dense) // Clone of *Dense is always *Dense
		if err := cp.alive(); err != nil {
			return nil, err
		}

		return cp, nil
	}

	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v Bit
	for i = 0; i < res.r; i++ { // fixed i→j order
		for j = 0; j < res.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if v == One {
				res.rows[i].Set(uint(j))
			}
		}
	}

	return res, nil
}

// Add computes the element-wise GF(2) sum C = A ⊕ B and returns a fresh Dense.
//
// Implementation:
//   - Stage 1: validate both operands are non-nil and have identical shapes.
//   - Stage 2: fast-path for *Dense×*Dense — one word-parallel XOR per row;
//     otherwise fall back to the interface path with fixed i→j order.
//
// Behavior highlights:
//   - Inputs are never mutated; one allocation for the result.
//   - Add(A, A) is the zero matrix of A's shape (x ⊕ x = 0).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c/64) fast-path, O(r*c) fallback. Space O(r*c/64).
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Fast path: *Dense with *Dense → word-parallel per-row XOR.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			if err = da.alive(); err == nil {
				err = db.alive()
			}
			if err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			for i := 0; i < rows; i++ {
				res.rows[i] = da.rows[i].Clone()                    // copy A row
				res.rows[i].InPlaceSymmetricDifference(db.rows[i]) // ^= B row
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv Bit
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av^bv); err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Mul performs GF(2) matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate A,B non-nil and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: row-accumulation form — for every set bit k of row i of A,
//     C.row(i) ^= B.row(k). Each accumulation is one word-parallel XOR, so
//     the whole product runs in O(r·n·c/64) word operations.
//   - Fallback for non-*Dense operands: fixed i→j→k loops with AND/XOR parity.
//
// Behavior highlights:
//   - Deterministic set-bit iteration (ascending k); one allocation for C.
//   - Zero rows of A cost a single popcount-style scan and no XORs.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c/64) fast-path, O(r*n*c) fallback. Space O(r*c/64).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast path: accumulate whole rows of B into rows of C.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			if err = da.alive(); err == nil {
				err = db.alive()
			}
			if err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			var i int
			for i = 0; i < aRows; i++ {
				ra := da.rows[i]
				for k, ok := ra.NextSet(0); ok; k, ok = ra.NextSet(k + 1) {
					res.rows[i].InPlaceSymmetricDifference(db.rows[int(k)])
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop with parity accumulation.
	var i, j, k int
	var av, bv, acc Bit
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = Zero
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == Zero {
					continue // AND with zero contributes nothing
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc ^= av & bv // GF(2) multiply-accumulate
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path walks only the set bits of each packed row.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c) worst case, O(r + ones) on sparse *Dense inputs.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast path: iterate set bits only.
	if dm, ok := m.(*Dense); ok {
		if err = dm.alive(); err != nil {
			return nil, matrixErrorf(opTranspose, err)
		}
		for i := 0; i < rows; i++ {
			ri := dm.rows[i]
			for j, okBit := ri.NextSet(0); okBit; j, okBit = ri.NextSet(j + 1) {
				res.rows[int(j)].Set(uint(i))
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var i, j int
	var v Bit
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// eliminate runs in-place Gaussian elimination on dst, searching pivots in
// the leftmost `width` columns only (width <= dst.c; the tail columns ride
// along in every row XOR, which is how augmented systems are reduced).
//
// Pivot convention (deterministic, fixed once for the whole package):
//   - columns are scanned left to right;
//   - the pivot for a column is the FIRST row at or below the current pivot
//     row with a 1 in that column (lowest row index wins);
//   - the pivot row is swapped up, then XORed into every row below it that
//     has a 1 in the pivot column — and into the rows above as well when
//     reduced=true (Gauss–Jordan / RREF).
//
// Over GF(2) there is no scaling step: a nonzero pivot is already 1.
//
// Returns the rank (number of pivot rows) and the pivot column list in
// ascending order. Never fails: bounds are structural invariants here.
// Complexity: O(r * width * c/64).
func eliminate(dst *Dense, width int, reduced bool) (rank int, pivots []int) {
	pivotRow := 0
	var col, r int
	for col = 0; col < width && pivotRow < dst.r; col++ {
		// Deterministic pivot search: first nonzero at or below pivotRow.
		pivot := -1
		for r = pivotRow; r < dst.r; r++ {
			if dst.rows[r].Test(uint(col)) {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue // free column, no pivot here
		}
		if pivot != pivotRow {
			dst.rows[pivot], dst.rows[pivotRow] = dst.rows[pivotRow], dst.rows[pivot]
		}

		// Clear the pivot column below (and above, for reduced form).
		lo := pivotRow + 1
		if reduced {
			lo = 0
		}
		for r = lo; r < dst.r; r++ {
			if r == pivotRow {
				continue
			}
			if dst.rows[r].Test(uint(col)) {
				dst.rows[r].InPlaceSymmetricDifference(dst.rows[pivotRow]) // word-parallel row clear
			}
		}

		pivots = append(pivots, col)
		pivotRow++
	}

	return pivotRow, pivots
}

// Eliminate returns the row-echelon form of m together with its rank and the
// pivot column list. The input is never mutated; elimination runs on a copy.
//
// Errors: ErrNilMatrix, ErrUseAfterFree (released *Dense input).
// Complexity: Time O(r*c²/64), Space O(r*c/64) for the returned copy.
func Eliminate(m Matrix) (*Dense, int, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, 0, nil, matrixErrorf(opEliminate, err)
	}
	work, err := toDense(m)
	if err != nil {
		return nil, 0, nil, matrixErrorf(opEliminate, err)
	}
	rank, pivots := eliminate(work, work.c, false)

	return work, rank, pivots, nil
}

// EliminateReduced is Eliminate with full Gauss–Jordan reduction: pivot
// columns are cleared above the pivots as well, yielding reduced row-echelon
// form. Costs up to 2× the XOR work of plain echelon form.
func EliminateReduced(m Matrix) (*Dense, int, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, 0, nil, matrixErrorf(opEliminate, err)
	}
	work, err := toDense(m)
	if err != nil {
		return nil, 0, nil, matrixErrorf(opEliminate, err)
	}
	rank, pivots := eliminate(work, work.c, true)

	return work, rank, pivots, nil
}

// Rank returns the number of linearly independent rows of m.
// Invariant under elementary row operations (swap, XOR of one row into
// another) — elimination preserves the row space by construction.
// Runs elimination directly so errors carry a single operation tag.
//
// Errors: ErrNilMatrix, ErrUseAfterFree. Complexity: O(r*c²/64).
func Rank(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	work, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	rank, _ := eliminate(work, work.c, false)

	return rank, nil
}

// Det returns the determinant of a square matrix over GF(2).
// The result lives in {0,1}: row swaps flip the sign, but -1 ≡ 1 (mod 2),
// so the determinant reduces to "is the matrix full-rank".
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³/64).
func Det(m Matrix) (Bit, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return Zero, matrixErrorf(opDet, err)
	}
	work, err := toDense(m)
	if err != nil {
		return Zero, matrixErrorf(opDet, err)
	}
	rank, _ := eliminate(work, work.c, false)
	if rank == m.Rows() {
		return One, nil
	}

	return Zero, nil
}

// Inverse computes A⁻¹ by Gauss–Jordan reduction of the augmented [A | I].
//
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: build the n×2n augmentation, reduce pivots over the left n
//     columns (the identity half rides along in every row XOR).
//   - Stage 3: rank < n ⇒ ErrSingular; otherwise the left half is I and the
//     right half is A⁻¹ — extract it.
//
// Behavior highlights:
//   - Input is read-only; the augmentation is a private workspace.
//   - Full rank + reduced form guarantees the extraction needs no
//     back-substitution.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³/32) (rows are 2n wide), Space O(n²/32).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()

	// Build [A | I].
	aug, err := augmentDense(m, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		aug.rows[i].Set(uint(n + i)) // identity in the right half
	}

	// Reduce pivots over the left half only.
	rank, _ := eliminate(aug, n, true)
	if rank < n {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	// Extract the right half.
	res := newDense(n, n)
	var i int
	for i = 0; i < n; i++ {
		ri := aug.rows[i]
		for j, ok := ri.NextSet(uint(n)); ok; j, ok = ri.NextSet(j + 1) {
			res.rows[i].Set(j - uint(n))
		}
	}

	return res, nil
}

// SolveInfo reports the structure of a solved system alongside the
// particular solution: the rank of the coefficient matrix and the free
// (non-pivot) columns. FreeCols is empty exactly when the solution is unique.
type SolveInfo struct {
	Rank     int   // rank of the coefficient matrix
	FreeCols []int // columns with no pivot, ascending; their variables were fixed to 0
}

// Solve finds one x with A·x = b, or reports that none exists.
// Thin wrapper over SolveFull for callers who do not care about rank
// structure. See SolveFull for the full contract.
func Solve(a Matrix, b []Bit) ([]Bit, error) {
	x, _, err := SolveFull(a, b)

	return x, err
}

// SolveFull solves A·x = b over GF(2) and reports the system's structure.
//
// Implementation:
//   - Stage 1: validate A non-nil, len(b) == A.Rows(), b entries in {0,1}.
//   - Stage 2: reduce the augmented [A | b] with pivots over A's columns.
//   - Stage 3: any all-zero coefficient row with a 1 on the right reads
//     0 = 1 ⇒ ErrNoSolution.
//   - Stage 4: read the particular solution off the RREF — x[pivot col] is
//     the reduced right-hand side of that pivot's row; free variables are 0.
//
// Behavior highlights:
//   - Underdetermined systems succeed and flag their free columns in
//     SolveInfo rather than failing — rank deficiency is data, not an error.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(b) != rows), ErrNotBinary,
//     ErrNoSolution (inconsistent system).
//
// Complexity:
//   - Time O(r*c²/64), Space O(r*c/64).
func SolveFull(a Matrix, b []Bit) ([]Bit, SolveInfo, error) {
	var info SolveInfo
	if err := ValidateNotNil(a); err != nil {
		return nil, info, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, info, matrixErrorf(opSolve, err)
	}
	for i, v := range b {
		if err := ValidateBit(v); err != nil {
			return nil, info, matrixErrorf(opSolve, fmt.Errorf("b[%d]: %w", i, err))
		}
	}

	rows, cols := a.Rows(), a.Cols()

	// Build [A | b].
	aug, err := augmentDense(a, 1)
	if err != nil {
		return nil, info, matrixErrorf(opSolve, err)
	}
	for i, v := range b {
		if v == One {
			aug.rows[i].Set(uint(cols))
		}
	}

	// Reduce pivots over A's columns; b rides along.
	rank, pivots := eliminate(aug, cols, true)

	// Consistency: below the rank, coefficient parts are all-zero rows; a
	// surviving 1 in the b column is the 0 = 1 contradiction.
	for i := rank; i < rows; i++ {
		if aug.rows[i].Test(uint(cols)) {
			return nil, info, matrixErrorf(opSolve, ErrNoSolution)
		}
	}

	// Particular solution: free variables pinned to zero, pivot variables
	// read directly off the reduced rows.
	x := make([]Bit, cols)
	for k, col := range pivots {
		if aug.rows[k].Test(uint(cols)) {
			x[col] = One
		}
	}

	info.Rank = rank
	info.FreeCols = freeColumns(cols, pivots)

	return x, info, nil
}

// Equal reports element-wise equality. Differing shapes compare unequal
// rather than erroring — equality is a question, not a contract.
//
// Errors: ErrNilMatrix only. Complexity: O(r*c/64) fast-path.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}

	// Fast path: per-row packed comparison.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			if da.released || db.released {
				return false, matrixErrorf(opEqual, ErrUseAfterFree)
			}
			for i := 0; i < da.r; i++ {
				if !da.rows[i].Equal(db.rows[i]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Fallback: generic interface loop.
	var i, j int
	var av, bv Bit
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}

// augmentDense copies m into the left block of a fresh rows×(cols+extra)
// Dense, leaving the extra right-hand columns zero for the caller to fill.
// Complexity: O(r*c) (O(r + ones) on *Dense inputs).
func augmentDense(m Matrix, extra int) (*Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	aug, err := newDenseZeroOK(rows, cols+extra)
	if err != nil {
		return nil, err
	}

	if dm, ok := m.(*Dense); ok {
		if err := dm.alive(); err != nil {
			return nil, err
		}
		for i := 0; i < rows; i++ {
			ri := dm.rows[i]
			for j, okBit := ri.NextSet(0); okBit; j, okBit = ri.NextSet(j + 1) {
				aug.rows[i].Set(j)
			}
		}

		return aug, nil
	}

	var i, j int
	var v Bit
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if v == One {
				aug.rows[i].Set(uint(j))
			}
		}
	}

	return aug, nil
}

// freeColumns lists the columns of [0,cols) absent from the ascending pivot
// list. Single merge pass, no allocation beyond the result.
func freeColumns(cols int, pivots []int) []int {
	free := make([]int, 0, cols-len(pivots))
	next := 0
	for col := 0; col < cols; col++ {
		if next < len(pivots) && pivots[next] == col {
			next++
			continue
		}
		free = append(free, col)
	}

	return free
}
