// SPDX-License-Identifier: MIT
// Package mmapsrc: sentinel error set. Messages are prefixed "mmapsrc: ...";
// File methods wrap them with "File.<Method>" context, and OS / mmap failures
// are wrapped with %w so os.ErrExist and friends still match via errors.Is.

package mmapsrc

import "errors"

var (
	// ErrPointerElement is returned when T contains pointers, slices, maps,
	// strings, interfaces, channels or funcs: such values cannot live in a file.
	ErrPointerElement = errors.New("mmapsrc: element type must be pointer-free")

	// ErrZeroSizeElement is returned when T occupies no bytes.
	ErrZeroSizeElement = errors.New("mmapsrc: element type must be at least 1 byte")

	// ErrMisaligned is returned when T's alignment does not divide the header size.
	ErrMisaligned = errors.New("mmapsrc: element alignment incompatible with header")

	// ErrBadHeader is returned when the file is too short or its header is inconsistent.
	ErrBadHeader = errors.New("mmapsrc: invalid header")

	// ErrItemSize is returned when the header's item size differs from sizeof(T).
	ErrItemSize = errors.New("mmapsrc: item size mismatch")

	// ErrFileSize is returned when the file length disagrees with the header shape,
	// or when the requested shape cannot be represented as a file length.
	ErrFileSize = errors.New("mmapsrc: invalid file size")

	// ErrReadOnly is returned by write paths on a read-only mapping.
	ErrReadOnly = errors.New("mmapsrc: mapping is read-only")
)
