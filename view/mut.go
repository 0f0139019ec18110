// SPDX-License-Identifier: MIT

// Package view - MutView: the writable counterpart of View.
//
// Writes go straight into the caller's buffer, so they are visible through
// every other View or MutView built over the same storage. Go cannot prove
// exclusivity statically: holding at most one MutView per buffer region is a
// caller obligation here, and package borrow enforces it at runtime.

package view

import (
	"fmt"
	"iter"
)

// MutView is a non-owning rows×cols window with write access.
// Layout and invariants are identical to View.
type MutView[T any] struct {
	data []T
	rows int
	cols int
}

// NewMut returns a writable rows×cols view over src without copying it.
// Validation is identical to New.
func NewMut[T any, S ~[]T](src S, rows, cols int) (MutView[T], error) {
	if err := Shape(len(src), rows, cols); err != nil {
		return MutView[T]{}, ctorErrorf(ctxNewMut, rows, cols, err)
	}

	return MutView[T]{data: []T(src), rows: rows, cols: cols}, nil
}

// View downgrades m to a read-only View over the same storage.
func (m MutView[T]) View() View[T] {
	return View[T]{data: m.data, rows: m.rows, cols: m.cols}
}

// Rows returns the row count.
func (m MutView[T]) Rows() int { return m.rows }

// Cols returns the row width.
func (m MutView[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols().
func (m MutView[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns rows*cols.
func (m MutView[T]) Len() int { return len(m.data) }

// Row returns row r for reading. Same contract as View.Row.
func (m MutView[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= m.rows {
		return nil, rowErrorf("MutView", ctxRow, r, m.rows)
	}
	off := r * m.cols

	return m.data[off : off+m.cols : off+m.cols], nil
}

// RowMut returns row r for writing; assignments to its elements land in the source.
func (m MutView[T]) RowMut(r int) ([]T, error) {
	if r < 0 || r >= m.rows {
		return nil, rowErrorf("MutView", ctxRowMut, r, m.rows)
	}
	off := r * m.cols

	return m.data[off : off+m.cols : off+m.cols], nil
}

// SetRow copies vals into row r.
// MAIN DESCRIPTION:
//   - Overwrite a whole row in one call; the row width never changes.
//
// Errors:
//   - *RowOutOfBoundsError when r is outside [0, rows).
//   - *ShapeMismatchError{Expected: cols, Actual: len(vals)} on a width mismatch.
//
// Behavior highlights:
//   - All-or-nothing: nothing is written when an error is returned.
//
// Complexity:
//   - Time O(cols), Space O(1).
func (m MutView[T]) SetRow(r int, vals []T) error {
	if r < 0 || r >= m.rows {
		return rowErrorf("MutView", ctxSetRow, r, m.rows)
	}
	if len(vals) != m.cols {
		return rowShapeErrorf(r, m.cols, len(vals))
	}
	off := r * m.cols
	copy(m.data[off:off+m.cols], vals)

	return nil
}

// At returns the element at (r, c).
func (m MutView[T]) At(r, c int) (T, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		var zero T
		return zero, indexErrorf("MutView", ctxAt, r, c, m.rows, m.cols)
	}

	return m.data[r*m.cols+c], nil
}

// Ptr returns a pointer to the element at (r, c) inside the source buffer.
func (m MutView[T]) Ptr(r, c int) (*T, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return nil, indexErrorf("MutView", ctxPtr, r, c, m.rows, m.cols)
	}

	return &m.data[r*m.cols+c], nil
}

// Set writes v at (r, c).
func (m MutView[T]) Set(r, c int, v T) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return indexErrorf("MutView", ctxSet, r, c, m.rows, m.cols)
	}
	m.data[r*m.cols+c] = v

	return nil
}

// All yields (r, row) for every row; rows are writable.
func (m MutView[T]) All() iter.Seq2[int, []T] {
	return m.View().All()
}

// String renders rows like View.String.
func (m MutView[T]) String() string { return m.View().String() }

// rowShapeErrorf reports a SetRow width mismatch.
func rowShapeErrorf(r, want, got int) error {
	return fmt.Errorf("MutView.%s(%d): %w", ctxSetRow, r, &ShapeMismatchError{Expected: want, Actual: got})
}
