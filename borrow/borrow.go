// SPDX-License-Identifier: MIT

// Package borrow enforces shared-xor-exclusive access to a flat buffer at
// runtime, for buffers whose memory can be replaced or released while views
// over it exist (memory-mapped files, pooled buffers).
//
// An Owner holds the buffer and hands out:
//
//   - Ref: a shared, read-only 2D view. Any number may coexist.
//   - RefMut: an exclusive, writable 2D view. It excludes every other borrow.
//
// While any borrow is live the Owner refuses Replace and Close, so the memory
// behind a live view is never swapped out or released. Accessors on a Ref or
// RefMut return ErrReleased once Release has been called.
//
// Caller obligation: rows and pointers handed out by a borrow are plain Go
// slices and pointers. They must not be retained past that borrow's Release.
//
// Concurrency:
//   - Owner state is guarded by a sync.Mutex; borrows may be taken and
//     released from any goroutine.
//   - Concurrent reads through Refs are safe. A RefMut is not itself
//     synchronized: one goroutine writes through it at a time.
package borrow

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/slice2d/view"
)

var (
	// ErrBorrowConflict is returned when a borrow would break shared-xor-exclusive.
	ErrBorrowConflict = errors.New("borrow: conflicting borrow is live")

	// ErrBorrowed is returned by Replace/Close while any borrow is live.
	ErrBorrowed = errors.New("borrow: buffer is borrowed")

	// ErrReleased is returned by accessors of a released Ref/RefMut, and by a second Release.
	ErrReleased = errors.New("borrow: borrow already released")

	// ErrClosed is returned by borrow attempts on a closed Owner.
	ErrClosed = errors.New("borrow: owner is closed")
)

// Owner holds a flat buffer and tracks the borrows taken against it.
type Owner[T any] struct {
	mu        sync.Mutex
	data      []T  // guarded by mu
	shared    int  // live Ref count
	exclusive bool // a RefMut is live
	closed    bool
}

// NewOwner wraps data. The Owner does not copy it; the caller must stop
// touching data directly once it is handed over.
func NewOwner[T any](data []T) *Owner[T] {
	return &Owner[T]{data: data}
}

// Len returns the current buffer length.
func (o *Owner[T]) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.data)
}

// Borrows reports the live shared count and whether an exclusive borrow is live.
func (o *Owner[T]) Borrows() (shared int, exclusive bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.shared, o.exclusive
}

// Borrow takes a shared borrow viewing the buffer as rows×cols.
// Errors: ErrClosed, ErrBorrowConflict (exclusive borrow live), or the
// shape errors of view.New.
func (o *Owner[T]) Borrow(rows, cols int) (*Ref[T], error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil, fmt.Errorf("Owner.Borrow: %w", ErrClosed)
	}
	if o.exclusive {
		return nil, fmt.Errorf("Owner.Borrow: exclusive: %w", ErrBorrowConflict)
	}
	v, err := view.New(o.data, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Owner.Borrow: %w", err)
	}
	o.shared++

	return &Ref[T]{v: v, owner: o}, nil
}

// BorrowMut takes the exclusive borrow viewing the buffer as rows×cols.
// Errors: ErrClosed, ErrBorrowConflict (any borrow live), or the shape errors
// of view.NewMut.
func (o *Owner[T]) BorrowMut(rows, cols int) (*RefMut[T], error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil, fmt.Errorf("Owner.BorrowMut: %w", ErrClosed)
	}
	if o.exclusive || o.shared > 0 {
		return nil, fmt.Errorf("Owner.BorrowMut: shared=%d exclusive=%t: %w",
			o.shared, o.exclusive, ErrBorrowConflict)
	}
	m, err := view.NewMut(o.data, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Owner.BorrowMut: %w", err)
	}
	o.exclusive = true

	return &RefMut[T]{m: m, owner: o}, nil
}

// Replace swaps in a new buffer, the runtime analogue of reallocating the
// source. Refused with ErrBorrowed while any borrow is live.
func (o *Owner[T]) Replace(data []T) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return fmt.Errorf("Owner.Replace: %w", ErrClosed)
	}
	if o.exclusive || o.shared > 0 {
		return fmt.Errorf("Owner.Replace: %w", ErrBorrowed)
	}
	o.data = data

	return nil
}

// Close drops the buffer. Refused with ErrBorrowed while any borrow is live;
// a second Close returns ErrClosed.
func (o *Owner[T]) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return fmt.Errorf("Owner.Close: %w", ErrClosed)
	}
	if o.exclusive || o.shared > 0 {
		return fmt.Errorf("Owner.Close: %w", ErrBorrowed)
	}
	o.closed = true
	o.data = nil

	return nil
}

func (o *Owner[T]) releaseShared() {
	o.mu.Lock()
	o.shared--
	o.mu.Unlock()
}

func (o *Owner[T]) releaseExclusive() {
	o.mu.Lock()
	o.exclusive = false
	o.mu.Unlock()
}
