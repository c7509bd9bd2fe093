// SPDX-License-Identifier: MIT

// Package matrix - Mat, the owning wrapper around one Dense.
//
// Purpose:
//   - Own exactly one *Dense and broker every interaction with it: arithmetic
//     dispatch to the kernels, row/element view creation, conversion, render.
//   - Carry the per-instance Options so every derived matrix produced by an
//     operation inherits the same policy set.
//   - Centralize construction: Mat is the only component that hands Dense
//     storage to callers; kernels receive it by reference.
//
// Two private factories funnel every result back into wrapper types:
//   - newMat wraps a kernel-produced Dense so results carry the caller's
//     capability set (options, policy);
//   - newElement allocates the scalar cell through which single-bit results
//     (determinant, solve components) are returned.
//
// Lifetime: Free releases the owned storage. Afterwards every access through
// the façade or through any outstanding view fails ErrUseAfterFree.

package matrix

import "fmt"

// facadeErrorf wraps a sentinel with a uniform Mat context tag.
func facadeErrorf(method string, err error) error {
	return fmt.Errorf("Mat.%s: %w", method, err)
}

// Mat is the façade type: one owned Dense plus the policy it was built with.
type Mat struct {
	bits *Dense  // owned storage; nil only for the zero value
	opts Options // policy carried into every derived matrix
}

// NewMat constructs a zero rows×cols matrix with the given options.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(r*c/64).
func NewMat(rows, cols int, optFns ...Option) (*Mat, error) {
	opts := gatherOptions(optFns...)
	d, err := newDenseWithPolicy(rows, cols, opts.validateBits)
	if err != nil {
		return nil, facadeErrorf("New", err)
	}

	return &Mat{bits: d, opts: opts}, nil
}

// newMat wraps a kernel result in a façade carrying m's options.
// Every matrix-returning operation funnels through here so the result has
// the same capability set as its origin.
func (m *Mat) newMat(d *Dense) *Mat {
	d.validateBits = m.opts.validateBits // policy travels with the wrapper

	return &Mat{bits: d, opts: m.opts}
}

// newElement allocates the scalar cell used to hand single-bit results back
// to the caller. Kept as a factory (rather than returning literals) so the
// scalar path mirrors the matrix path through newMat.
func (m *Mat) newElement() *Bit {
	b := new(Bit) // zero-valued GF(2) cell

	return b
}

// guard validates the receiver for any operation: non-nil wrapper, attached
// and live storage. Returns plain sentinels; callers wrap with context.
func (m *Mat) guard() error {
	if m == nil || m.bits == nil {
		return ErrNilMatrix
	}

	return m.bits.alive()
}

// Rows returns the row count (0 for a nil/zero façade). O(1).
func (m *Mat) Rows() int {
	if m == nil || m.bits == nil {
		return 0
	}

	return m.bits.r
}

// Cols returns the column count (0 for a nil/zero façade). O(1).
func (m *Mat) Cols() int {
	if m == nil || m.bits == nil {
		return 0
	}

	return m.bits.c
}

// Shape packs Rows() and Cols() into a single call. O(1).
func (m *Mat) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Mtx exposes the owned storage as the package Matrix interface, for callers
// composing façade values with the package-level kernels. The storage is
// still owned by m; treat the reference as borrowed.
func (m *Mat) Mtx() Matrix {
	if m == nil {
		return nil
	}

	return m.bits
}

// Add returns a new façade with the element-wise GF(2) sum m ⊕ o.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrUseAfterFree.
// Complexity: O(r*c/64).
func (m *Mat) Add(o *Mat) (*Mat, error) {
	if err := m.guard(); err != nil {
		return nil, facadeErrorf(opAdd, err)
	}
	if o == nil || o.bits == nil {
		return nil, facadeErrorf(opAdd, ErrNilMatrix)
	}
	res, err := Add(m.bits, o.bits)
	if err != nil {
		return nil, facadeErrorf(opAdd, err)
	}

	return m.newMat(res.(*Dense)), nil
}

// Mul returns a new façade with the matrix product m × o.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrUseAfterFree.
// Complexity: O(r*n*c/64).
func (m *Mat) Mul(o *Mat) (*Mat, error) {
	if err := m.guard(); err != nil {
		return nil, facadeErrorf(opMul, err)
	}
	if o == nil || o.bits == nil {
		return nil, facadeErrorf(opMul, ErrNilMatrix)
	}
	res, err := Mul(m.bits, o.bits)
	if err != nil {
		return nil, facadeErrorf(opMul, err)
	}

	return m.newMat(res.(*Dense)), nil
}

// T returns a new façade with the transpose mᵀ.
// Complexity: O(r*c) worst case, cheaper on sparse content.
func (m *Mat) T() (*Mat, error) {
	if err := m.guard(); err != nil {
		return nil, facadeErrorf(opTranspose, err)
	}
	res, err := Transpose(m.bits)
	if err != nil {
		return nil, facadeErrorf(opTranspose, err)
	}

	return m.newMat(res.(*Dense)), nil
}

// Equal reports element-wise equality with o. Differing shapes compare
// unequal; nil/freed operands are an error.
func (m *Mat) Equal(o *Mat) (bool, error) {
	if err := m.guard(); err != nil {
		return false, facadeErrorf(opEqual, err)
	}
	if o == nil || o.bits == nil {
		return false, facadeErrorf(opEqual, ErrNilMatrix)
	}
	eq, err := Equal(m.bits, o.bits)
	if err != nil {
		return false, facadeErrorf(opEqual, err)
	}

	return eq, nil
}

// Eliminate returns the echelon form of m (reduced form when the façade was
// built WithReduced(true)), its rank and the pivot columns, as a new façade.
// Complexity: O(r*c²/64).
func (m *Mat) Eliminate() (*Mat, int, []int, error) {
	if err := m.guard(); err != nil {
		return nil, 0, nil, facadeErrorf(opEliminate, err)
	}
	var (
		ref    *Dense
		rank   int
		pivots []int
		err    error
	)
	if m.opts.reduced {
		ref, rank, pivots, err = EliminateReduced(m.bits)
	} else {
		ref, rank, pivots, err = Eliminate(m.bits)
	}
	if err != nil {
		return nil, 0, nil, facadeErrorf(opEliminate, err)
	}

	return m.newMat(ref), rank, pivots, nil
}

// Rank returns the rank of the owned matrix. Complexity: O(r*c²/64).
func (m *Mat) Rank() (int, error) {
	if err := m.guard(); err != nil {
		return 0, facadeErrorf(opRank, err)
	}
	rank, err := Rank(m.bits)
	if err != nil {
		return 0, facadeErrorf(opRank, err)
	}

	return rank, nil
}

// Det returns the determinant over GF(2): One iff the matrix is square and
// full-rank. The result is handed back through the scalar element factory.
// Errors: ErrNonSquare. Complexity: O(n³/64).
func (m *Mat) Det() (Bit, error) {
	if err := m.guard(); err != nil {
		return Zero, facadeErrorf(opDet, err)
	}
	v, err := Det(m.bits)
	if err != nil {
		return Zero, facadeErrorf(opDet, err)
	}
	e := m.newElement() // scalar results travel through the element cell
	*e = v

	return *e, nil
}

// Inverse returns a new façade with m⁻¹.
// Errors: ErrNonSquare, ErrSingular. Complexity: O(n³/32).
func (m *Mat) Inverse() (*Mat, error) {
	if err := m.guard(); err != nil {
		return nil, facadeErrorf(opInverse, err)
	}
	res, err := Inverse(m.bits)
	if err != nil {
		return nil, facadeErrorf(opInverse, err)
	}

	return m.newMat(res.(*Dense)), nil
}

// Solve finds one x with m·x = b, free variables pinned to zero.
// Errors: ErrDimensionMismatch, ErrNotBinary, ErrNoSolution.
func (m *Mat) Solve(b []Bit) ([]Bit, error) {
	if err := m.guard(); err != nil {
		return nil, facadeErrorf(opSolve, err)
	}
	x, err := Solve(m.bits, b)
	if err != nil {
		return nil, facadeErrorf(opSolve, err)
	}

	return x, nil
}

// SolveFull is Solve plus the system structure (rank, free columns).
func (m *Mat) SolveFull(b []Bit) ([]Bit, SolveInfo, error) {
	if err := m.guard(); err != nil {
		return nil, SolveInfo{}, facadeErrorf(opSolve, err)
	}
	x, info, err := SolveFull(m.bits, b)
	if err != nil {
		return nil, SolveInfo{}, facadeErrorf(opSolve, err)
	}

	return x, info, nil
}

// Row returns a live, bounds-checked view of row i.
// The view borrows the owned storage: it must not outlive Free.
// Errors: ErrOutOfRange, ErrUseAfterFree.
func (m *Mat) Row(i int) (*RowView, error) {
	if err := m.guard(); err != nil {
		return nil, facadeErrorf("Row", err)
	}

	return newRowView(m.bits, i)
}

// At returns a live element view of cell (i,j) — a 1-bit lvalue.
// Errors: ErrOutOfRange, ErrUseAfterFree.
func (m *Mat) At(i, j int) (*ElemView, error) {
	if err := m.guard(); err != nil {
		return nil, facadeErrorf(ctxAt, err)
	}

	return newElemView(m.bits, i, j)
}

// GetBit reads cell (i,j) directly, without allocating a view.
func (m *Mat) GetBit(i, j int) (Bit, error) {
	if err := m.guard(); err != nil {
		return Zero, facadeErrorf(ctxAt, err)
	}

	return m.bits.At(i, j)
}

// SetBit writes cell (i,j) directly, honoring the bit policy.
func (m *Mat) SetBit(i, j int, v Bit) error {
	if err := m.guard(); err != nil {
		return facadeErrorf(ctxSet, err)
	}

	return m.bits.Set(i, j, v)
}

// String renders the owned matrix as a 0/1 grid (debug aid).
func (m *Mat) String() string {
	if m == nil || m.bits == nil {
		return "[nil]"
	}

	return m.bits.String()
}

// Free releases the owned storage. Idempotent. Every outstanding view and
// every later façade operation fails ErrUseAfterFree; dimension queries
// keep answering with the last known shape.
func (m *Mat) Free() {
	if m == nil || m.bits == nil {
		return
	}
	m.bits.free()
}
