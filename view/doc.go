// Package view offers zero-copy, bounds-checked two-dimensional views over
// flat row-major buffers.
//
// The package provides:
//
//   - New / FromSequence: validate a rows×cols shape against a buffer once and
//     return a View that borrows it.
//   - View.Row and View.At: O(1) row sub-slices and element reads, with typed
//     out-of-bounds errors instead of panics.
//   - NewMut / MutView: the writable counterpart (RowMut, SetRow, Set, Ptr).
//
// A view never copies and never owns its buffer. Rows returned by Row alias the
// buffer and stay valid exactly as long as the buffer does. Go keeps heap
// memory alive while any slice references it, so for ordinary slices that
// contract is automatic; for memory that can be unmapped or reused, go through
// package borrow, which enforces shared-xor-exclusive access at runtime.
//
// Errors match sentinels via errors.Is and expose payloads via errors.As:
//
//	_, err := view.New(buf, 2, 4)
//	var sm *view.ShapeMismatchError
//	if errors.As(err, &sm) { /* sm.Expected, sm.Actual */ }
package view
