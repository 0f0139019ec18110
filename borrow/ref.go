// SPDX-License-Identifier: MIT

package borrow

import (
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/katalvlaran/slice2d/view"
)

// Ref is a shared borrow: a read-only view.View plus a liveness flag.
// Every accessor costs one atomic load on top of the view's bounds check.
type Ref[T any] struct {
	v        view.View[T]
	owner    *Owner[T]
	released atomic.Bool
}

// Rows returns the row count.
func (ref *Ref[T]) Rows() int { return ref.v.Rows() }

// Cols returns the row width.
func (ref *Ref[T]) Cols() int { return ref.v.Cols() }

// Shape packs Rows() and Cols().
func (ref *Ref[T]) Shape() (rows, cols int) { return ref.v.Shape() }

// Row returns row r; see view.View.Row.
func (ref *Ref[T]) Row(r int) ([]T, error) {
	if ref.released.Load() {
		return nil, releasedErrorf("Ref.Row")
	}

	return ref.v.Row(r)
}

// At returns the element at (r, c); see view.View.At.
func (ref *Ref[T]) At(r, c int) (T, error) {
	if ref.released.Load() {
		var zero T
		return zero, releasedErrorf("Ref.At")
	}

	return ref.v.At(r, c)
}

// All yields (r, row) in order. It yields nothing once the borrow is released.
func (ref *Ref[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		if ref.released.Load() {
			return
		}
		for r, row := range ref.v.All() {
			if !yield(r, row) {
				return
			}
		}
	}
}

// View returns the unguarded view. It is valid only until Release.
func (ref *Ref[T]) View() (view.View[T], error) {
	if ref.released.Load() {
		return view.View[T]{}, releasedErrorf("Ref.View")
	}

	return ref.v, nil
}

// Release ends the borrow. A second call returns ErrReleased.
func (ref *Ref[T]) Release() error {
	if !ref.released.CompareAndSwap(false, true) {
		return releasedErrorf("Ref.Release")
	}
	ref.owner.releaseShared()

	return nil
}

// RefMut is the exclusive borrow: a view.MutView plus a liveness flag.
type RefMut[T any] struct {
	m        view.MutView[T]
	owner    *Owner[T]
	released atomic.Bool
}

// Rows returns the row count.
func (ref *RefMut[T]) Rows() int { return ref.m.Rows() }

// Cols returns the row width.
func (ref *RefMut[T]) Cols() int { return ref.m.Cols() }

// Shape packs Rows() and Cols().
func (ref *RefMut[T]) Shape() (rows, cols int) { return ref.m.Shape() }

// Row returns row r for reading.
func (ref *RefMut[T]) Row(r int) ([]T, error) {
	if ref.released.Load() {
		return nil, releasedErrorf("RefMut.Row")
	}

	return ref.m.Row(r)
}

// RowMut returns row r for writing.
func (ref *RefMut[T]) RowMut(r int) ([]T, error) {
	if ref.released.Load() {
		return nil, releasedErrorf("RefMut.RowMut")
	}

	return ref.m.RowMut(r)
}

// SetRow copies vals into row r; see view.MutView.SetRow.
func (ref *RefMut[T]) SetRow(r int, vals []T) error {
	if ref.released.Load() {
		return releasedErrorf("RefMut.SetRow")
	}

	return ref.m.SetRow(r, vals)
}

// At returns the element at (r, c).
func (ref *RefMut[T]) At(r, c int) (T, error) {
	if ref.released.Load() {
		var zero T
		return zero, releasedErrorf("RefMut.At")
	}

	return ref.m.At(r, c)
}

// Ptr returns a pointer into the buffer at (r, c).
func (ref *RefMut[T]) Ptr(r, c int) (*T, error) {
	if ref.released.Load() {
		return nil, releasedErrorf("RefMut.Ptr")
	}

	return ref.m.Ptr(r, c)
}

// Set writes v at (r, c).
func (ref *RefMut[T]) Set(r, c int, v T) error {
	if ref.released.Load() {
		return releasedErrorf("RefMut.Set")
	}

	return ref.m.Set(r, c, v)
}

// View returns a read-only downgrade of the exclusive view, valid until Release.
func (ref *RefMut[T]) View() (view.View[T], error) {
	if ref.released.Load() {
		return view.View[T]{}, releasedErrorf("RefMut.View")
	}

	return ref.m.View(), nil
}

// Release ends the exclusive borrow. A second call returns ErrReleased.
func (ref *RefMut[T]) Release() error {
	if !ref.released.CompareAndSwap(false, true) {
		return releasedErrorf("RefMut.Release")
	}
	ref.owner.releaseExclusive()

	return nil
}

func releasedErrorf(method string) error {
	return fmt.Errorf("%s: %w", method, ErrReleased)
}
