// SPDX-License-Identifier: MIT

// Package matrix - packed dense GF(2) storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly bit-packed buffer: one bitset per row, entries
//     packed 64 per machine word, padding bits kept zero by the bitset library.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Expose the word-parallel row primitives (XorRow, AndRowMask, SwapRows)
//     that every elimination-based kernel is built on.
//   - Enforce the bit policy (optional rejection of non-{0,1} values) from a
//     single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c/64) zero-init; At/Set: O(1); Clone: O(r*c/64);
//     XorRow/AndRowMask: O(c/64); SwapRows: O(1).

package matrix

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"         // method tag used in error wrappers
	ctxSet     = "Set"        // method tag used in error wrappers
	ctxXorRow  = "XorRow"     // row combination tag
	ctxAndMask = "AndRowMask" // row masking tag
	ctxSwap    = "SwapRows"   // row swap tag
	ctxRow     = "RowWeight"  // row popcount tag
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
	_fmtOne      = "1"
	_fmtZero     = "0"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w so callers
// still match with errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is the concrete bit-packed GF(2) matrix.
//   - r,c hold dimensions (rows, cols).
//   - rows holds one bitset per matrix row; each bitset has length c and the
//     library maintains its padding bits at zero, so popcounts and set-op
//     results are always exact.
//   - validateBits enables optional {0,1} rejection in Set (policy default
//     from options.go).
//   - gen and released implement the view-invalidation protocol: views
//     capture gen at creation and every access re-checks it, so a released
//     base is detected instead of dereferenced.
type Dense struct {
	r, c         int              // row and column counts (>=0; zero allowed only for internal zero-OK constructors)
	rows         []*bitset.BitSet // per-row packed storage (len == r, each of bit-length c)
	validateBits bool             // bit policy: reject non-{0,1} values in Set when true
	gen          uint64           // structural generation, bumped on release
	released     bool             // set by free(); all bit access fails afterwards
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using packed row storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate one zero bitset per row and initialize policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c/64), Space O(r*c/64).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense(rows, cols), nil
}

// newDense allocates without shape validation. Internal use only; callers
// must have validated rows>=0 and cols>=0.
func newDense(rows, cols int) *Dense {
	rs := make([]*bitset.BitSet, rows)
	for i := range rs {
		rs[i] = bitset.New(uint(cols)) // zero-filled, padding bits zero
	}

	return &Dense{
		r:            rows,
		c:            cols,
		rows:         rs,
		validateBits: DefaultValidateBits,
	}
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Used by intermediates (augmented/trimmed matrices) to produce legal 0×k or
// k×0 shapes when needed; same bit policy as the public constructor.
//
// Errors: ErrInvalidDimensions on negative dimensions.
// Complexity: O(rows*cols/64).
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense(rows, cols), nil
}

// newDenseWithPolicy is a helper for builders to override the bit policy.
// Centralized creation semantics; intended for package internals and tests.
func newDenseWithPolicy(rows, cols int, validateBits bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateBits = validateBits

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Generation reports the current structural generation. Views capture it at
// creation and compare on every access; a mismatch means the base was
// released underneath them.
// Complexity: O(1).
func (m *Dense) Generation() uint64 { return m.gen }

// alive reports the bare liveness sentinel, without context. Public methods
// wrap with coordinates and method name.
func (m *Dense) alive() error {
	if m.released {
		return ErrUseAfterFree
	}

	return nil
}

// checkIndex bounds-checks (row,col) without computing anything; row kernels
// that only need a row index pass col=0 against a one-column phantom.
// Returns the plain ErrOutOfRange sentinel; callers wrap with context.
// Complexity: O(1).
func (m *Dense) checkIndex(row, col int) error {
	if row < 0 || row >= m.r {
		return ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return ErrOutOfRange
	}

	return nil
}

// checkRow bounds-checks a bare row index.
func (m *Dense) checkRow(row int) error {
	if row < 0 || row >= m.r {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value at (row, col) or a sentinel error.
//
// Implementation:
//   - Stage 1: liveness check, then bounds check.
//   - Stage 2: test the packed bit.
//
// Errors: ErrUseAfterFree (released base), ErrOutOfRange (bad indices).
// Complexity: O(1).
func (m *Dense) At(row, col int) (Bit, error) {
	if err := m.alive(); err != nil {
		return Zero, denseErrorf(ctxAt, row, col, err)
	}
	if err := m.checkIndex(row, col); err != nil {
		return Zero, denseErrorf(ctxAt, row, col, err)
	}
	if m.rows[row].Test(uint(col)) {
		return One, nil
	}

	return Zero, nil
}

// Set stores v at (row, col) or returns an error (bounds or bit policy).
//
// Implementation:
//   - Stage 1: liveness check, then bounds check.
//   - Stage 2: enforce bit policy (reject non-{0,1} when enabled, else v&1).
//   - Stage 3: write the packed bit.
//
// Behavior highlights:
//   - Never panics; returns sentinel errors.
//   - Bit policy is a per-instance flag preserved by Clone.
//
// Errors: ErrUseAfterFree, ErrOutOfRange, ErrNotBinary.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v Bit) error {
	if err := m.alive(); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err := m.checkIndex(row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	// Bit policy: strict {0,1} enforcement or explicit mod-2 reduction.
	if v != Zero && v != One {
		if m.validateBits {
			return denseErrorf(ctxSet, row, col, ErrNotBinary)
		}
		v &= 1
	}
	m.rows[row].SetTo(uint(col), v == One)

	return nil
}

// XorRow performs dst ^= src over whole packed rows in word-parallel form.
// This is the single elimination primitive: over GF(2), "subtract a row"
// and "add a row" coincide with XOR.
//
// Errors: ErrUseAfterFree, ErrOutOfRange (either index).
// Complexity: O(c/64).
func (m *Dense) XorRow(dst, src int) error {
	if err := m.alive(); err != nil {
		return denseErrorf(ctxXorRow, dst, src, err)
	}
	if err := m.checkRow(dst); err != nil {
		return denseErrorf(ctxXorRow, dst, src, err)
	}
	if err := m.checkRow(src); err != nil {
		return denseErrorf(ctxXorRow, dst, src, err)
	}
	m.rows[dst].InPlaceSymmetricDifference(m.rows[src]) // dst ^= src

	return nil
}

// AndRowMask performs row &= mask where mask is a 1×c (or any shape with
// matching column count — row 0 is used) Dense acting as a column selector.
// Both the receiver and the mask must be live.
//
// Errors: ErrUseAfterFree, ErrOutOfRange, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(c/64).
func (m *Dense) AndRowMask(row int, mask *Dense) error {
	if err := m.alive(); err != nil {
		return denseErrorf(ctxAndMask, row, 0, err)
	}
	if err := m.checkRow(row); err != nil {
		return denseErrorf(ctxAndMask, row, 0, err)
	}
	if mask == nil || mask.r == 0 {
		return denseErrorf(ctxAndMask, row, 0, ErrNilMatrix)
	}
	if err := mask.alive(); err != nil {
		return denseErrorf(ctxAndMask, row, 0, err)
	}
	if mask.c != m.c {
		return denseErrorf(ctxAndMask, row, 0, ErrDimensionMismatch)
	}
	m.rows[row].InPlaceIntersection(mask.rows[0]) // row &= mask

	return nil
}

// SwapRows exchanges rows i and j by pointer swap.
// Row identity is positional: outstanding RowViews keep addressing their
// index, which after the swap resolves to the exchanged content. That is the
// same aliasing contract an in-place elimination expects.
//
// Errors: ErrUseAfterFree, ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) SwapRows(i, j int) error {
	if err := m.alive(); err != nil {
		return denseErrorf(ctxSwap, i, j, err)
	}
	if err := m.checkRow(i); err != nil {
		return denseErrorf(ctxSwap, i, j, err)
	}
	if err := m.checkRow(j); err != nil {
		return denseErrorf(ctxSwap, i, j, err)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return nil
}

// RowWeight returns the popcount of a row (number of ones).
// Complexity: O(c/64) via the hardware popcount path of the bitset.
func (m *Dense) RowWeight(row int) (int, error) {
	if err := m.alive(); err != nil {
		return 0, denseErrorf(ctxRow, row, 0, err)
	}
	if err := m.checkRow(row); err != nil {
		return 0, denseErrorf(ctxRow, row, 0, err)
	}

	return int(m.rows[row].Count()), nil
}

// Clone returns a deep copy (new bitsets, same bit policy).
// Independence: mutations do not affect the original. A released matrix
// clones to a released matrix — the copy is as dead as the source.
// Complexity: O(r*c/64).
func (m *Dense) Clone() Matrix {
	cp := make([]*bitset.BitSet, m.r)
	for i, row := range m.rows {
		cp[i] = row.Clone() // deep copy of the packed words
	}

	return &Dense{
		r:            m.r,
		c:            m.c,
		rows:         cp,
		validateBits: m.validateBits, // preserve policy
		released:     m.released,
	}
}

// free releases the storage and invalidates every outstanding view by
// bumping the generation. Idempotent. Row bitsets are dropped so the matrix
// cannot be resurrected by accident.
func (m *Dense) free() {
	if m.released {
		return
	}
	m.released = true
	m.gen++
	m.rows = nil
}

// String provides a readable 0/1 grid for diagnostics.
// Intended for debugging and small matrices; not for hot paths.
//
// Determinism: fixed row-major traversal.
// Complexity: O(r*c) formatting.
func (m *Dense) String() string {
	if m.released {
		return "[released]"
	}
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ { // iterate cols
			if m.rows[i].Test(uint(j)) {
				b.WriteString(_fmtOne)
			} else {
				b.WriteString(_fmtZero)
			}
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false. Set bits are visited
// via the packed iterator, zero bits are synthesized in order, so the
// callback still observes every cell exactly once.
//
// Determinism: fixed i→j order.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v Bit) bool) {
	if m.released {
		return
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v := Zero
			if m.rows[i].Test(uint(j)) {
				v = One
			}
			if !f(i, j, v) {
				return // early exit requested by caller
			}
		}
	}
}

// rowBits returns the backing bitset of a row for kernel-internal use.
// Callers must have bounds-checked; no liveness wrapping here.
func (m *Dense) rowBits(row int) *bitset.BitSet { return m.rows[row] }
