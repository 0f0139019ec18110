// SPDX-License-Identifier: MIT

// Package mmapsrc: functional configuration for Create/Open.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).

package mmapsrc

import "os"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultReadOnly maps files read-write.
	DefaultReadOnly = false

	// DefaultPerm is the permission used by Create for new files.
	DefaultPerm os.FileMode = 0o644

	// DefaultFlushOnClose syncs a writable mapping to disk in Close.
	DefaultFlushOnClose = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPermInvalid = "mmapsrc: WithPerm: perm must be within 0o777 and grant owner read+write"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	readOnly     bool        // DefaultReadOnly
	perm         os.FileMode // DefaultPerm
	flushOnClose bool        // DefaultFlushOnClose
}

// WithReadOnly maps the file read-only. Open only; Create rejects it.
// Views over a read-only mapping must never be written through: the OS
// faults on such writes. ViewMut refuses with ErrReadOnly.
func WithReadOnly() Option {
	return func(o *Options) { o.readOnly = true }
}

// WithPerm sets the permission bits Create uses for the new file.
// Panics when perm carries non-permission bits or withholds owner read/write,
// since the file could not then be mapped read-write by its creator.
func WithPerm(perm os.FileMode) Option {
	if perm&^os.ModePerm != 0 || perm&0o600 != 0o600 {
		panic(panicPermInvalid)
	}

	return func(o *Options) { o.perm = perm }
}

// WithFlushOnClose toggles the msync performed by Close on writable mappings.
func WithFlushOnClose(on bool) Option {
	return func(o *Options) { o.flushOnClose = on }
}

// gatherOptions applies user options over the documented defaults.
// nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		readOnly:     DefaultReadOnly,
		perm:         DefaultPerm,
		flushOnClose: DefaultFlushOnClose,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
