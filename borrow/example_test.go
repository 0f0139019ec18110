package borrow_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/slice2d/borrow"
)

// ExampleOwner shows a writer excluding readers until it releases.
func ExampleOwner() {
	o := borrow.NewOwner([]int{1, 2, 3, 4, 5, 6})

	w, _ := o.BorrowMut(3, 2)
	_ = w.Set(2, 0, 50)
	_, err := o.Borrow(3, 2)
	fmt.Println(errors.Is(err, borrow.ErrBorrowConflict))
	_ = w.Release()

	r, _ := o.Borrow(3, 2)
	row, _ := r.Row(2)
	fmt.Println(row)
	fmt.Println(errors.Is(o.Close(), borrow.ErrBorrowed))
	_ = r.Release()
	fmt.Println(o.Close())

	// Output:
	// true
	// [50 6]
	// true
	// <nil>
}
