// SPDX-License-Identifier: MIT

package mmapsrc

import (
	"encoding/binary"
	"math"
	"reflect"
	"unsafe"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/slice2d/view"
)

// headSize is the on-disk header length: little-endian int64 itemSize, rows, cols.
const headSize = 24

type header struct {
	itemSize int
	rows     int
	cols     int
}

// fileSize returns headSize + itemSize*rows*cols, failing on overflow or a bad shape.
func (h header) fileSize() (int, error) {
	n, err := elements(h.rows, h.cols)
	if err != nil {
		return 0, err
	}
	if h.itemSize > 0 && n > (math.MaxInt-headSize)/h.itemSize {
		return 0, ErrFileSize
	}

	return headSize + n*h.itemSize, nil
}

func (h header) encode(b []byte) {
	binary.LittleEndian.PutUint64(b[0:8], uint64(h.itemSize))
	binary.LittleEndian.PutUint64(b[8:16], uint64(h.rows))
	binary.LittleEndian.PutUint64(b[16:24], uint64(h.cols))
}

func decodeHeader(b []byte) (header, error) {
	if len(b) < headSize {
		return header{}, ErrBadHeader
	}
	var raw [3]uint64
	raw[0] = binary.LittleEndian.Uint64(b[0:8])
	raw[1] = binary.LittleEndian.Uint64(b[8:16])
	raw[2] = binary.LittleEndian.Uint64(b[16:24])
	for _, v := range raw {
		if v > math.MaxInt {
			return header{}, ErrBadHeader
		}
	}

	return header{itemSize: int(raw[0]), rows: int(raw[1]), cols: int(raw[2])}, nil
}

// elements returns rows*cols, reusing view's shape rules for the failure cases.
func elements(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, view.ErrNegativeDimension
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return 0, view.ErrDimensionOverflow
	}

	return rows * cols, nil
}

// elementSize validates that T can be stored verbatim in a mapping and
// returns its size in bytes.
func elementSize[T any]() (int, error) {
	t := reflect.TypeFor[T]()
	if !pointerFree(t) {
		return 0, ErrPointerElement
	}
	if t.Size() == 0 {
		return 0, ErrZeroSizeElement
	}
	if headSize%t.Align() != 0 {
		return 0, ErrMisaligned
	}

	return int(t.Size()), nil
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// items reinterprets the mapped bytes after the header as n values of T.
func items[T any](mm mmap.MMap, n int) []T {
	if n == 0 {
		return []T{}
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&mm[headSize])), n)
}
