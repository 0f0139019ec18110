// Package borrow_test verifies the shared-xor-exclusive discipline of Owner.
package borrow_test

import (
	"testing"

	"github.com/katalvlaran/slice2d/borrow"
	"github.com/katalvlaran/slice2d/view"
	"github.com/stretchr/testify/require"
)

// TestSharedBorrowsCoexist ensures many read borrows may be live at once.
func TestSharedBorrowsCoexist(t *testing.T) {
	o := borrow.NewOwner([]int{1, 2, 3, 4, 5, 6})

	a, err := o.Borrow(3, 2)
	require.NoError(t, err)
	b, err := o.Borrow(2, 3) // a second shape over the same buffer
	require.NoError(t, err)

	shared, excl := o.Borrows()
	require.Equal(t, 2, shared)
	require.False(t, excl)

	row, err := a.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, row)
	x, err := b.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4, x)

	require.NoError(t, a.Release())
	require.NoError(t, b.Release())
	shared, _ = o.Borrows()
	require.Equal(t, 0, shared)
}

// TestExclusiveExcludesShared checks both directions of the exclusion rule.
func TestExclusiveExcludesShared(t *testing.T) {
	o := borrow.NewOwner(make([]int, 4))

	r, err := o.Borrow(2, 2)
	require.NoError(t, err)
	_, err = o.BorrowMut(2, 2)
	require.ErrorIs(t, err, borrow.ErrBorrowConflict)
	require.NoError(t, r.Release())

	m, err := o.BorrowMut(2, 2)
	require.NoError(t, err)
	_, err = o.Borrow(2, 2)
	require.ErrorIs(t, err, borrow.ErrBorrowConflict)
	_, err = o.BorrowMut(1, 4)
	require.ErrorIs(t, err, borrow.ErrBorrowConflict)

	_, excl := o.Borrows()
	require.True(t, excl)
	require.NoError(t, m.Release())

	r, err = o.Borrow(4, 1)
	require.NoError(t, err)
	require.NoError(t, r.Release())
}

// TestMutationVisibleAfterRelease ensures writes through RefMut persist for later readers.
func TestMutationVisibleAfterRelease(t *testing.T) {
	o := borrow.NewOwner(make([]int, 6))

	m, err := o.BorrowMut(3, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetRow(0, []int{1, 2}))
	require.NoError(t, m.Set(1, 0, 3))
	p, err := m.Ptr(1, 1)
	require.NoError(t, err)
	*p = 4
	row, err := m.RowMut(2)
	require.NoError(t, err)
	row[0], row[1] = 5, 6

	ro, err := m.View() // downgrade while still exclusive
	require.NoError(t, err)
	got, err := ro.Row(2)
	require.NoError(t, err)
	require.Equal(t, []int{5, 6}, got)
	require.NoError(t, m.Release())

	r, err := o.Borrow(2, 3)
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Release()) }()

	var rows [][]int
	for _, row := range r.All() {
		rows = append(rows, row)
	}
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, rows)
}

// TestReleasedAccessors ensures a released borrow refuses every access.
func TestReleasedAccessors(t *testing.T) {
	o := borrow.NewOwner([]int{1, 2, 3, 4})

	r, err := o.Borrow(2, 2)
	require.NoError(t, err)
	require.NoError(t, r.Release())
	require.ErrorIs(t, r.Release(), borrow.ErrReleased)
	_, err = r.Row(0)
	require.ErrorIs(t, err, borrow.ErrReleased)
	_, err = r.At(0, 0)
	require.ErrorIs(t, err, borrow.ErrReleased)
	_, err = r.View()
	require.ErrorIs(t, err, borrow.ErrReleased)
	n := 0
	for range r.All() {
		n++
	}
	require.Zero(t, n)

	// a double release must not drive the shared count negative
	shared, _ := o.Borrows()
	require.Equal(t, 0, shared)

	m, err := o.BorrowMut(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Release())
	require.ErrorIs(t, m.Release(), borrow.ErrReleased)
	_, err = m.Row(0)
	require.ErrorIs(t, err, borrow.ErrReleased)
	_, err = m.RowMut(0)
	require.ErrorIs(t, err, borrow.ErrReleased)
	_, err = m.At(0, 0)
	require.ErrorIs(t, err, borrow.ErrReleased)
	_, err = m.Ptr(0, 0)
	require.ErrorIs(t, err, borrow.ErrReleased)
	require.ErrorIs(t, m.Set(0, 0, 1), borrow.ErrReleased)
	require.ErrorIs(t, m.SetRow(0, []int{1, 2}), borrow.ErrReleased)
	_, err = m.View()
	require.ErrorIs(t, err, borrow.ErrReleased)
}

// TestShapeErrorsDoNotLeakBorrows ensures a rejected shape takes no borrow.
func TestShapeErrorsDoNotLeakBorrows(t *testing.T) {
	o := borrow.NewOwner(make([]int, 6))

	_, err := o.Borrow(2, 4)
	require.ErrorIs(t, err, view.ErrShapeMismatch)
	_, err = o.BorrowMut(-1, 2)
	require.ErrorIs(t, err, view.ErrNegativeDimension)

	shared, excl := o.Borrows()
	require.Zero(t, shared)
	require.False(t, excl)

	m, err := o.BorrowMut(6, 1)
	require.NoError(t, err)
	_, err = m.At(6, 0)
	require.ErrorIs(t, err, view.ErrIndexOutOfBounds)
	require.NoError(t, m.Release())
}

// TestReplaceAndClose ensures the buffer is never swapped or dropped under a live borrow.
func TestReplaceAndClose(t *testing.T) {
	o := borrow.NewOwner([]int{1, 2})

	r, err := o.Borrow(1, 2)
	require.NoError(t, err)
	require.ErrorIs(t, o.Replace([]int{9, 9, 9}), borrow.ErrBorrowed)
	require.ErrorIs(t, o.Close(), borrow.ErrBorrowed)
	require.Equal(t, 2, o.Len())
	require.NoError(t, r.Release())

	require.NoError(t, o.Replace([]int{7, 8, 9}))
	require.Equal(t, 3, o.Len())
	r, err = o.Borrow(3, 1)
	require.NoError(t, err)
	x, err := r.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 9, x)
	require.NoError(t, r.Release())

	require.NoError(t, o.Close())
	require.ErrorIs(t, o.Close(), borrow.ErrClosed)
	require.ErrorIs(t, o.Replace(nil), borrow.ErrClosed)
	_, err = o.Borrow(0, 0)
	require.ErrorIs(t, err, borrow.ErrClosed)
	_, err = o.BorrowMut(0, 0)
	require.ErrorIs(t, err, borrow.ErrClosed)
}
