// SPDX-License-Identifier: MIT

// Package matrix - zero-copy row/element views over Dense.
//
// Purpose:
//   - Provide ergonomic, bounds-checked access to one row or one cell of a
//     Dense without copying.
//   - Enforce the borrow protocol at runtime: a view captures the base's
//     structural generation at creation, and every access re-validates it.
//     A released (or regenerated) base fails with ErrUseAfterFree instead of
//     touching dead storage.
//
// Views are ephemeral accessors: create them on demand, use them within the
// dynamic extent of the call that produced them, drop them. They are never
// persisted and never own anything.

package matrix

import "fmt"

// viewErrorf wraps a sentinel with a uniform view context and coordinates.
func viewErrorf(view, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", view, method, row, col, err)
}

// RowView is a non-owning reference to a single row of a Dense.
// Positional semantics: the view addresses row `row` of the base, whatever
// content that row holds at access time (SwapRows re-targets it).
type RowView struct {
	base *Dense // borrowed storage, never owned
	row  int    // row index, validated at creation
	gen  uint64 // base generation captured at creation
}

// ElemView is a non-owning reference to a single cell of a Dense.
// Semantically a 1-bit lvalue in {0,1}.
type ElemView struct {
	base *Dense // borrowed storage, never owned
	row  int    // validated at creation
	col  int    // validated at creation
	gen  uint64 // base generation captured at creation
}

// newRowView builds a validated row borrow. Internal: the façade and the
// storage layer are the only producers of views.
func newRowView(base *Dense, row int) (*RowView, error) {
	if base == nil {
		return nil, viewErrorf("RowView", "new", row, 0, ErrNilMatrix)
	}
	if err := base.alive(); err != nil {
		return nil, viewErrorf("RowView", "new", row, 0, err)
	}
	if err := base.checkRow(row); err != nil {
		return nil, viewErrorf("RowView", "new", row, 0, err)
	}

	return &RowView{base: base, row: row, gen: base.gen}, nil
}

// newElemView builds a validated element borrow.
func newElemView(base *Dense, row, col int) (*ElemView, error) {
	if base == nil {
		return nil, viewErrorf("ElemView", "new", row, col, ErrNilMatrix)
	}
	if err := base.alive(); err != nil {
		return nil, viewErrorf("ElemView", "new", row, col, err)
	}
	if err := base.checkIndex(row, col); err != nil {
		return nil, viewErrorf("ElemView", "new", row, col, err)
	}

	return &ElemView{base: base, row: row, col: col, gen: base.gen}, nil
}

// live re-validates the borrow: the base must not be released and must still
// carry the generation captured at view creation.
func (v *RowView) live() error {
	if v.base == nil || v.base.released || v.base.gen != v.gen {
		return ErrUseAfterFree
	}

	return nil
}

// Row reports which row this view addresses. O(1).
func (v *RowView) Row() int { return v.row }

// Len reports the number of columns spanned by the view. O(1).
func (v *RowView) Len() int { return v.base.c }

// Get reads bit c of the viewed row.
// Errors: ErrUseAfterFree (stale borrow), ErrOutOfRange.
// Complexity: O(1).
func (v *RowView) Get(c int) (Bit, error) {
	if err := v.live(); err != nil {
		return Zero, viewErrorf("RowView", "Get", v.row, c, err)
	}

	return v.base.At(v.row, c)
}

// Set writes bit c of the viewed row, honoring the base bit policy.
// Errors: ErrUseAfterFree, ErrOutOfRange, ErrNotBinary.
// Complexity: O(1).
func (v *RowView) Set(c int, b Bit) error {
	if err := v.live(); err != nil {
		return viewErrorf("RowView", "Set", v.row, c, err)
	}

	return v.base.Set(v.row, c, b)
}

// ToBits materializes the viewed row as an ordered 0/1 slice.
// Snapshot, not live: later mutations of the base do not reflect in the
// returned slice.
// Complexity: O(c); set bits are walked via the packed iterator.
func (v *RowView) ToBits() ([]Bit, error) {
	if err := v.live(); err != nil {
		return nil, viewErrorf("RowView", "ToBits", v.row, 0, err)
	}
	out := make([]Bit, v.base.c) // zero-initialized snapshot
	rb := v.base.rowBits(v.row)
	for idx, ok := rb.NextSet(0); ok; idx, ok = rb.NextSet(idx + 1) {
		out[idx] = One
	}

	return out, nil
}

// Weight returns the popcount of the viewed row.
// Complexity: O(c/64).
func (v *RowView) Weight() (int, error) {
	if err := v.live(); err != nil {
		return 0, viewErrorf("RowView", "Weight", v.row, 0, err)
	}

	return v.base.RowWeight(v.row)
}

// live re-validates the element borrow, same protocol as RowView.live.
func (v *ElemView) live() error {
	if v.base == nil || v.base.released || v.base.gen != v.gen {
		return ErrUseAfterFree
	}

	return nil
}

// Get reads the referenced bit.
// Errors: ErrUseAfterFree. Complexity: O(1).
func (v *ElemView) Get() (Bit, error) {
	if err := v.live(); err != nil {
		return Zero, viewErrorf("ElemView", "Get", v.row, v.col, err)
	}

	return v.base.At(v.row, v.col)
}

// Set writes the referenced bit, honoring the base bit policy.
// Errors: ErrUseAfterFree, ErrNotBinary. Complexity: O(1).
func (v *ElemView) Set(b Bit) error {
	if err := v.live(); err != nil {
		return viewErrorf("ElemView", "Set", v.row, v.col, err)
	}

	return v.base.Set(v.row, v.col, b)
}
