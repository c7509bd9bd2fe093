// SPDX-License-Identifier: MIT

// Package matrix - interop converters.
//
// Purpose:
//   - Lossless export/import between Mat and host-friendly shapes: ordered
//     rows of 0/1 values, and a compact packed-byte row form.
//   - A small structural builder (FromEdges) for the most common source of
//     GF(2) matrices in practice: adjacency of an undirected simple graph.
//
// Round-trip contract: ToRows → MatFromRows and ToPacked → MatFromPacked are
// exact inverses for any live matrix. Exports are snapshots, never views.
//
// Packed layout: row-major, every row starts at a fresh byte boundary,
// bits MSB-first within a byte (bit j of a row lives in byte j/8 at mask
// 0x80 >> (j%8)). Padding bits in the last byte of each row MUST be zero;
// imports reject dirty padding instead of masking it off.

package matrix

import "fmt"

// packedStride returns the number of bytes one packed row occupies.
func packedStride(cols int) int { return (cols + 7) / 8 }

// ToRows exports the matrix as an ordered slice of 0/1 rows.
// Snapshot semantics: the result is independent of the façade's storage.
//
// Errors: ErrNilMatrix, ErrUseAfterFree.
// Complexity: O(r*c).
func (m *Mat) ToRows() ([][]Bit, error) {
	if err := m.guard(); err != nil {
		return nil, facadeErrorf("ToRows", err)
	}
	out := make([][]Bit, m.bits.r)
	var i int
	for i = 0; i < m.bits.r; i++ {
		row := make([]Bit, m.bits.c) // zero-initialized
		rb := m.bits.rowBits(i)
		for j, ok := rb.NextSet(0); ok; j, ok = rb.NextSet(j + 1) {
			row[j] = One
		}
		out[i] = row
	}

	return out, nil
}

// MatFromRows imports an ordered slice of 0/1 rows into a fresh façade.
//
// Implementation:
//   - Stage 1: reject empty input and ragged rows (fail fast, no padding).
//   - Stage 2: validate every value against the bit policy, then pack.
//
// Errors:
//   - ErrInvalidDimensions (no rows / empty rows),
//   - ErrDimensionMismatch (ragged rows),
//   - ErrNotBinary (non-{0,1} value under the default policy).
//
// Complexity: O(r*c).
func MatFromRows(rows [][]Bit, optFns ...Option) (*Mat, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, facadeErrorf("FromRows", ErrInvalidDimensions)
	}
	cols := len(rows[0])

	m, err := NewMat(len(rows), cols, optFns...)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = range rows {
		// Shape is validated before any value: ragged input is a structural
		// bug and must not be silently truncated or padded.
		if len(rows[i]) != cols {
			return nil, facadeErrorf("FromRows", fmt.Errorf("row %d: %w", i, ErrDimensionMismatch))
		}
		for j = range rows[i] {
			if err = m.bits.Set(i, j, rows[i][j]); err != nil {
				return nil, facadeErrorf("FromRows", err)
			}
		}
	}

	return m, nil
}

// ToPacked exports the matrix in the packed-byte row layout described in the
// file header. Snapshot semantics.
//
// Errors: ErrNilMatrix, ErrUseAfterFree.
// Complexity: O(r*c).
func (m *Mat) ToPacked() ([]byte, error) {
	if err := m.guard(); err != nil {
		return nil, facadeErrorf("ToPacked", err)
	}
	stride := packedStride(m.bits.c)
	out := make([]byte, stride*m.bits.r)
	var i int
	for i = 0; i < m.bits.r; i++ {
		base := i * stride
		rb := m.bits.rowBits(i)
		for j, ok := rb.NextSet(0); ok; j, ok = rb.NextSet(j + 1) {
			out[base+int(j)/8] |= 0x80 >> (j % 8) // MSB-first within the byte
		}
	}

	return out, nil
}

// MatFromPacked imports packed-byte rows produced by ToPacked (or by any
// host honoring the same layout).
//
// Errors:
//   - ErrInvalidDimensions (non-positive shape),
//   - ErrDimensionMismatch (len(data) != stride*rows),
//   - ErrNotBinary (nonzero padding bits — dirty padding means the producer
//     disagrees about the layout, which must fail loudly).
//
// Complexity: O(r*c).
func MatFromPacked(rows, cols int, data []byte, optFns ...Option) (*Mat, error) {
	m, err := NewMat(rows, cols, optFns...)
	if err != nil {
		return nil, err
	}
	stride := packedStride(cols)
	if len(data) != stride*rows {
		return nil, facadeErrorf("FromPacked", ErrDimensionMismatch)
	}

	var i, j int
	for i = 0; i < rows; i++ {
		base := i * stride
		for j = 0; j < stride*8; j++ {
			set := data[base+j/8]&(0x80>>(j%8)) != 0
			if j >= cols {
				if set {
					return nil, facadeErrorf("FromPacked", fmt.Errorf("row %d padding: %w", i, ErrNotBinary))
				}
				continue
			}
			if set {
				m.bits.rows[i].Set(uint(j))
			}
		}
	}

	return m, nil
}

// FromEdges builds the n×n symmetric 0/1 adjacency matrix of an undirected
// simple graph given its edge list. Both (u,v) and (v,u) are set; a loop
// (u,u) sets the diagonal cell. Duplicate edges are idempotent — adjacency
// is structural, not a multiplicity count.
//
// Errors:
//   - ErrInvalidDimensions (n <= 0),
//   - ErrOutOfRange (endpoint outside [0,n)).
//
// Complexity: O(n²/64) allocation + O(E) writes.
func FromEdges(n int, edges [][2]int, optFns ...Option) (*Mat, error) {
	m, err := NewMat(n, n, optFns...)
	if err != nil {
		return nil, err
	}
	for k, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, facadeErrorf("FromEdges", fmt.Errorf("edge %d (%d,%d): %w", k, u, v, ErrOutOfRange))
		}
		m.bits.rows[u].Set(uint(v))
		m.bits.rows[v].Set(uint(u)) // mirror for undirected structure
	}

	return m, nil
}
