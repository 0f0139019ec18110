package view_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/slice2d/view"
)

// ExampleNew views six values as three rows of two.
func ExampleNew() {
	v, err := view.New([]int{1, 2, 3, 4, 5, 6}, 3, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	x, _ := v.At(2, 0)
	row, _ := v.Row(1)
	fmt.Println(x, row)

	_, err = view.New([]int{1, 2, 3, 4, 5, 6}, 2, 4)
	var sm *view.ShapeMismatchError
	fmt.Println(errors.As(err, &sm), sm.Expected, sm.Actual)

	// Output:
	// 5 [3 4]
	// true 8 6
}

// ExampleMutView_SetRow overwrites one row through a writable view.
func ExampleMutView_SetRow() {
	buf := make([]byte, 6)
	m, _ := view.NewMut(buf, 2, 3)
	_ = m.SetRow(1, []byte("abc"))
	fmt.Printf("%q\n", buf)

	// Output:
	// "\x00\x00\x00abc"
}
