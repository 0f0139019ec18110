// Package slice2d is a toolkit for treating flat, row-major buffers as
// two-dimensional grids without copying them.
//
// Everything is organized under three subpackages:
//
//	view/    — New / NewMut: validate rows×cols once, then O(1) Row and At
//	           access over the borrowed buffer; typed shape and bounds errors.
//	borrow/  — Owner: shared-xor-exclusive borrows enforced at runtime, for
//	           buffers that may be replaced or released.
//	mmapsrc/ — File: a grid stored in a memory-mapped file, served as borrows.
//
// Quick example:
//
//	buf := []int{1, 2, 3, 4, 5, 6}
//	v, _ := view.New(buf, 3, 2) // [1 2] [3 4] [5 6]
//	row, _ := v.Row(1)          // [3 4], aliasing buf[2:4]
//	x, _ := v.At(2, 0)          // 5
//
// Pure Go; the only non-test dependency is github.com/edsrzf/mmap-go, used by
// mmapsrc.
package slice2d
