// SPDX-License-Identifier: MIT

// Package mmapsrc stores a rows×cols grid of fixed-size values in a
// memory-mapped file and serves 2D views straight out of the mapping.
//
// File layout:
//
//	[0:24)   header: little-endian int64 itemSize, rows, cols
//	[24:...) rows*cols packed values of T, row-major
//
// The mapping is the source sequence; views never copy it. Because unmapping
// would leave any live view pointing at released memory, every view is a
// borrow.Ref / borrow.RefMut taken from the File's borrow.Owner, and Close is
// refused with borrow.ErrBorrowed until all of them are released.
//
// T must be pointer-free (numbers, bools, arrays and structs of those).
// Files are native-endian for the element data: they are not portable across
// architectures of different byte order.
package mmapsrc

import (
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/slice2d/borrow"
)

// File is an open memory-mapped grid.
type File[T any] struct {
	path  string
	file  *os.File
	mm    mmap.MMap
	head  header
	owner *borrow.Owner[T]
	opts  Options
}

// Create makes a new zero-filled file at path holding a rows×cols grid of T
// and maps it read-write. It fails if path already exists (os.ErrExist).
// Errors:
//   - ErrPointerElement, ErrZeroSizeElement, ErrMisaligned (unsupported T).
//   - view.ErrNegativeDimension, view.ErrDimensionOverflow, ErrFileSize (shape).
//   - ErrReadOnly when WithReadOnly is passed.
//   - wrapped OS / mmap errors.
func Create[T any](path string, rows, cols int, opts ...Option) (*File[T], error) {
	o := gatherOptions(opts...)
	if o.readOnly {
		return nil, fmt.Errorf("mmapsrc.Create(%s): %w", path, ErrReadOnly)
	}
	itemSize, err := elementSize[T]()
	if err != nil {
		return nil, fmt.Errorf("mmapsrc.Create(%s): %w", path, err)
	}
	head := header{itemSize: itemSize, rows: rows, cols: cols}
	size, err := head.fileSize()
	if err != nil {
		return nil, fmt.Errorf("mmapsrc.Create(%s): %dx%d: %w", path, rows, cols, err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, o.perm)
	if err != nil {
		return nil, fmt.Errorf("mmapsrc.Create: %w", err)
	}
	if err = f.Truncate(int64(size)); err != nil {
		return nil, cleanup(f, nil, fmt.Errorf("mmapsrc.Create: %w", err))
	}
	mm, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return nil, cleanup(f, nil, fmt.Errorf("mmapsrc.Create: map: %w", err))
	}
	head.encode(mm[:headSize])

	return newFile[T](path, f, mm, head, o), nil
}

// Open maps an existing file written by Create. The header must match sizeof(T)
// and the file length must match the header shape exactly.
func Open[T any](path string, opts ...Option) (*File[T], error) {
	o := gatherOptions(opts...)
	itemSize, err := elementSize[T]()
	if err != nil {
		return nil, fmt.Errorf("mmapsrc.Open(%s): %w", path, err)
	}

	flag, prot := os.O_RDWR, mmap.RDWR
	if o.readOnly {
		flag, prot = os.O_RDONLY, mmap.RDONLY
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("mmapsrc.Open: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		return nil, cleanup(f, nil, fmt.Errorf("mmapsrc.Open: %w", err))
	}
	if info.Size() < headSize {
		return nil, cleanup(f, nil, fmt.Errorf("mmapsrc.Open(%s): %d bytes: %w", path, info.Size(), ErrBadHeader))
	}
	mm, err := mmap.Map(f, prot, 0)
	if err != nil {
		return nil, cleanup(f, nil, fmt.Errorf("mmapsrc.Open: map: %w", err))
	}

	head, err := decodeHeader(mm)
	if err != nil {
		return nil, cleanup(f, mm, fmt.Errorf("mmapsrc.Open(%s): %w", path, err))
	}
	if head.itemSize != itemSize {
		return nil, cleanup(f, mm, fmt.Errorf("mmapsrc.Open(%s): header %d, type %d: %w",
			path, head.itemSize, itemSize, ErrItemSize))
	}
	size, err := head.fileSize()
	if err != nil {
		return nil, cleanup(f, mm, fmt.Errorf("mmapsrc.Open(%s): %w", path, errors.Join(ErrBadHeader, err)))
	}
	if int64(size) != info.Size() {
		return nil, cleanup(f, mm, fmt.Errorf("mmapsrc.Open(%s): want %d bytes, have %d: %w",
			path, size, info.Size(), ErrFileSize))
	}

	return newFile[T](path, f, mm, head, o), nil
}

func newFile[T any](path string, f *os.File, mm mmap.MMap, head header, o Options) *File[T] {
	return &File[T]{
		path:  path,
		file:  f,
		mm:    mm,
		head:  head,
		owner: borrow.NewOwner(items[T](mm, head.rows*head.cols)),
		opts:  o,
	}
}

// cleanup releases whatever was acquired before a failed Create/Open and
// returns cause joined with any release error.
func cleanup(f *os.File, mm mmap.MMap, cause error) error {
	errs := []error{cause}
	if mm != nil {
		errs = append(errs, mm.Unmap())
	}
	errs = append(errs, f.Close())

	return errors.Join(errs...)
}

// Path returns the file path.
func (f *File[T]) Path() string { return f.path }

// Rows returns the row count stored in the header.
func (f *File[T]) Rows() int { return f.head.rows }

// Cols returns the row width stored in the header.
func (f *File[T]) Cols() int { return f.head.cols }

// Len returns rows*cols.
func (f *File[T]) Len() int { return f.head.rows * f.head.cols }

// ReadOnly reports whether the file was mapped with WithReadOnly.
func (f *File[T]) ReadOnly() bool { return f.opts.readOnly }

// View takes a shared borrow shaped by the header. Release it before Close.
func (f *File[T]) View() (*borrow.Ref[T], error) {
	return f.Reshape(f.head.rows, f.head.cols)
}

// Reshape takes a shared borrow under any shape with rows*cols == Len().
func (f *File[T]) Reshape(rows, cols int) (*borrow.Ref[T], error) {
	ref, err := f.owner.Borrow(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("File.Reshape(%s): %w", f.path, err)
	}

	return ref, nil
}

// ViewMut takes the exclusive, writable borrow shaped by the header.
// Errors: ErrReadOnly on read-only mappings, borrow.ErrBorrowConflict while
// any other view is live.
func (f *File[T]) ViewMut() (*borrow.RefMut[T], error) {
	if f.opts.readOnly {
		return nil, fmt.Errorf("File.ViewMut(%s): %w", f.path, ErrReadOnly)
	}
	ref, err := f.owner.BorrowMut(f.head.rows, f.head.cols)
	if err != nil {
		return nil, fmt.Errorf("File.ViewMut(%s): %w", f.path, err)
	}

	return ref, nil
}

// Flush syncs the mapping to disk. No-op on read-only mappings.
func (f *File[T]) Flush() error {
	if f.opts.readOnly {
		return nil
	}
	if err := f.mm.Flush(); err != nil {
		return fmt.Errorf("File.Flush(%s): %w", f.path, err)
	}

	return nil
}

// Close unmaps and closes the file. It is refused with borrow.ErrBorrowed
// while any view is live; the file stays usable in that case. A second Close
// returns borrow.ErrClosed.
func (f *File[T]) Close() error {
	if err := f.owner.Close(); err != nil {
		return fmt.Errorf("File.Close(%s): %w", f.path, err)
	}

	var errs []error
	if f.opts.flushOnClose {
		errs = append(errs, f.Flush())
	}
	if err := f.mm.Unmap(); err != nil {
		errs = append(errs, fmt.Errorf("File.Close(%s): unmap: %w", f.path, err))
	}
	if err := f.file.Close(); err != nil {
		errs = append(errs, fmt.Errorf("File.Close(%s): %w", f.path, err))
	}

	return errors.Join(errs...)
}

