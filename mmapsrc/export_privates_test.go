package mmapsrc

import "os"

// OptionsSnapshot is a test-only, exported copy of the resolved Options.
type OptionsSnapshot struct {
	ReadOnly     bool
	Perm         os.FileMode
	FlushOnClose bool
}

// GatherOptionsSnapshot resolves opts the way Create/Open do.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{ReadOnly: o.readOnly, Perm: o.perm, FlushOnClose: o.flushOnClose}
}

// HeadSize exposes the on-disk header length.
const HeadSize = headSize
