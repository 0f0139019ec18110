// SPDX-License-Identifier: MIT

// Package view - read-only 2D window over a flat row-major buffer.
//
// Purpose:
//   - Treat a []T holding rows*cols elements as rows of equal width, with the
//     explicit index formula r*cols + c.
//   - Validate the shape exactly once, at construction; afterwards Row/At cost
//     one bounds check and no allocation.
//   - Never copy: every row handed out aliases the caller's buffer.
//
// AI-Hints:
//   - Use New for any slice type (named slice types included), FromSequence for
//     containers that expose their storage through Sequence.
//   - Use NewMut (see mut.go) when rows must be written; View() downgrades it.
//   - The view borrows the buffer; it does not own it. See package borrow when
//     the buffer's lifetime must be enforced at runtime.
//
// Complexity quicksheet:
//   - New/FromSequence/Shape: O(1); Row/At: O(1); All: O(rows); String: O(rows*cols).

package view

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxNewMut = "NewMut"
	ctxFrom   = "FromSequence"
	ctxRow    = "Row"
	ctxRowMut = "RowMut"
	ctxSetRow = "SetRow"
	ctxAt     = "At"
	ctxPtr    = "Ptr"
	ctxSet    = "Set"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Sequence is anything that stores an ordered, contiguous, known-length run of T.
// Slice must return the live storage (not a copy) of exactly Len() elements.
type Sequence[T any] interface {
	Len() int
	Slice() []T
}

// View is a non-owning rows×cols window over a flat row-major buffer.
//   - data is the borrowed buffer, len(data) == rows*cols.
//   - The zero value is a valid 0×0 view.
//
// A View is a small value; copy it freely. Copies share the same storage.
// Go slices are writable, so "read-only" is a contract of the API surface:
// callers must not write through rows returned by Row.
type View[T any] struct {
	data []T // borrowed storage (len == rows*cols)
	rows int // row count (>=0)
	cols int // row width (>=0)
}

// Shape validates that a buffer of n elements can be viewed as rows×cols.
// MAIN DESCRIPTION:
//   - The single validation step behind New, NewMut, FromSequence and borrow.Owner.
//
// Implementation:
//   - Stage 1: reject negative dimensions.
//   - Stage 2: overflow-checked product rows*cols.
//   - Stage 3: compare the product with n.
//
// Errors:
//   - ErrNegativeDimension, ErrDimensionOverflow, *ShapeMismatchError.
//
// Complexity:
//   - Time O(1), Space O(1).
func Shape(n, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrNegativeDimension
	}
	// rows*cols overflows iff rows > MaxInt/cols (cols > 0).
	if cols != 0 && rows > math.MaxInt/cols {
		return ErrDimensionOverflow
	}
	if want := rows * cols; want != n {
		return &ShapeMismatchError{Expected: want, Actual: n}
	}

	return nil
}

// New returns a rows×cols view over src without copying it.
// MAIN DESCRIPTION:
//   - Generic constructor over any slice type whose underlying type is []T.
//
// Implementation:
//   - Stage 1: Shape(len(src), rows, cols).
//   - Stage 2: store the borrowed slice and the validated shape.
//
// Behavior highlights:
//   - Zero-product shapes are legal for an empty src (0×k, k×0).
//   - On error no view is produced; there is no truncated fallback.
//
// Errors:
//   - ErrNegativeDimension, ErrDimensionOverflow, *ShapeMismatchError
//     (wrapped with "view.New(rows,cols)" context).
//
// Complexity:
//   - Time O(1), Space O(1).
func New[T any, S ~[]T](src S, rows, cols int) (View[T], error) {
	if err := Shape(len(src), rows, cols); err != nil {
		return View[T]{}, ctorErrorf(ctxNew, rows, cols, err)
	}

	return View[T]{data: []T(src), rows: rows, cols: cols}, nil
}

// FromSequence is New over the Sequence capability.
func FromSequence[T any](seq Sequence[T], rows, cols int) (View[T], error) {
	if seq == nil {
		return View[T]{}, ctorErrorf(ctxFrom, rows, cols, ErrNilSequence)
	}
	data := seq.Slice()
	if err := Shape(len(data), rows, cols); err != nil {
		return View[T]{}, ctorErrorf(ctxFrom, rows, cols, err)
	}

	return View[T]{data: data, rows: rows, cols: cols}, nil
}

// ctorErrorf wraps a shape error with constructor context.
func ctorErrorf(ctor string, rows, cols int, err error) error {
	return fmt.Errorf("view.%s(%d,%d): %w", ctor, rows, cols, err)
}

// Rows returns the row count. Complexity: O(1).
func (v View[T]) Rows() int { return v.rows }

// Cols returns the row width. Complexity: O(1).
func (v View[T]) Cols() int { return v.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
func (v View[T]) Shape() (rows, cols int) { return v.rows, v.cols }

// Len returns rows*cols, the length of the borrowed buffer.
func (v View[T]) Len() int { return len(v.data) }

// Data returns the borrowed flat buffer itself (no copy).
func (v View[T]) Data() []T { return v.data }

// Row returns row r as a sub-slice of the borrowed buffer.
// MAIN DESCRIPTION:
//   - Zero-copy access to data[r*cols : r*cols+cols].
//
// Implementation:
//   - Stage 1: check 0 ≤ r < rows.
//   - Stage 2: slice with a full slice expression so cap(row) == cols.
//
// Behavior highlights:
//   - Capacity is clipped: append on a returned row reallocates instead of
//     overwriting the following row.
//   - The row aliases the source; it is valid as long as the source is.
//
// Errors:
//   - *RowOutOfBoundsError (matches ErrRowOutOfBounds).
//
// Complexity:
//   - Time O(1), Space O(1).
func (v View[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= v.rows {
		return nil, rowErrorf("View", ctxRow, r, v.rows)
	}
	off := r * v.cols

	return v.data[off : off+v.cols : off+v.cols], nil
}

// At returns the element at (r, c).
// Errors: *IndexOutOfBoundsError (matches ErrIndexOutOfBounds).
// Complexity: O(1).
func (v View[T]) At(r, c int) (T, error) {
	if r < 0 || r >= v.rows || c < 0 || c >= v.cols {
		var zero T
		return zero, indexErrorf("View", ctxAt, r, c, v.rows, v.cols)
	}

	return v.data[r*v.cols+c], nil
}

// All yields (r, row) for every row in order. Stops early when the consumer
// breaks out of the range loop.
func (v View[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		var r, off int
		for r = 0; r < v.rows; r++ {
			off = r * v.cols
			if !yield(r, v.data[off:off+v.cols:off+v.cols]) {
				return
			}
		}
	}
}

// String renders one line per row, "[a, b]\n", for diagnostics.
// Not for hot paths.
func (v View[T]) String() string {
	var b strings.Builder
	var r, c, base int
	for r = 0; r < v.rows; r++ {
		b.WriteString(_fmtRowOpen)
		base = r * v.cols
		for c = 0; c < v.cols; c++ {
			fmt.Fprintf(&b, "%v", v.data[base+c])
			if c+1 < v.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// rowErrorf builds a method-tagged RowOutOfBoundsError.
func rowErrorf(typ, method string, r, rows int) error {
	return fmt.Errorf("%s.%s(%d): %w", typ, method, r, &RowOutOfBoundsError{Index: r, Rows: rows})
}

// indexErrorf builds a method-tagged IndexOutOfBoundsError.
func indexErrorf(typ, method string, r, c, rows, cols int) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, r, c,
		&IndexOutOfBoundsError{Row: r, Col: c, Rows: rows, Cols: cols})
}
