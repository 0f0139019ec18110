// SPDX-License-Identifier: MIT
// Package view: sentinel error set and the structured errors that carry
// shape/index payloads. Every structured error unwraps to exactly one sentinel,
// so callers match with errors.Is and read the payload with errors.As.
// No constructor or accessor panics on user-triggered conditions.

package view

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "view: ..." for consistency and to allow
// easy grepping across logs. Accessors wrap with their method context
// ("View.Row(3): ...") at the detection site.
//
// ERROR PRIORITY (documented, enforced in tests):
// negative dimension -> overflow -> shape mismatch.

var (
	// ErrNegativeDimension is returned when rows or cols is negative.
	ErrNegativeDimension = errors.New("view: dimensions must be >= 0")

	// ErrDimensionOverflow is returned when rows*cols does not fit in int.
	ErrDimensionOverflow = errors.New("view: rows*cols overflows int")

	// ErrShapeMismatch is returned when rows*cols differs from the source length,
	// or when a row write supplies a slice of the wrong width.
	ErrShapeMismatch = errors.New("view: shape mismatch")

	// ErrRowOutOfBounds is returned by row accessors for r outside [0, rows).
	ErrRowOutOfBounds = errors.New("view: row index out of bounds")

	// ErrIndexOutOfBounds is returned by element accessors for (r, c) outside the shape.
	ErrIndexOutOfBounds = errors.New("view: index out of bounds")

	// ErrNilSequence is returned by FromSequence for a nil Sequence.
	ErrNilSequence = errors.New("view: nil sequence")
)

// ShapeMismatchError reports the element count a shape requires (Expected)
// against the count actually supplied (Actual).
type ShapeMismatchError struct {
	Expected int
	Actual   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %d elements, got %d", ErrShapeMismatch, e.Expected, e.Actual)
}

// Unwrap exposes ErrShapeMismatch to errors.Is.
func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// RowOutOfBoundsError reports a row index outside [0, Rows).
type RowOutOfBoundsError struct {
	Index int
	Rows  int
}

func (e *RowOutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: row %d, rows %d", ErrRowOutOfBounds, e.Index, e.Rows)
}

// Unwrap exposes ErrRowOutOfBounds to errors.Is.
func (e *RowOutOfBoundsError) Unwrap() error { return ErrRowOutOfBounds }

// IndexOutOfBoundsError reports an element coordinate outside the Rows×Cols shape.
type IndexOutOfBoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) in %dx%d", ErrIndexOutOfBounds, e.Row, e.Col, e.Rows, e.Cols)
}

// Unwrap exposes ErrIndexOutOfBounds to errors.Is.
func (e *IndexOutOfBoundsError) Unwrap() error { return ErrIndexOutOfBounds }
