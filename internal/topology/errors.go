package topology

import "errors"

// Sentinel errors for the three failure classes callers branch on. All are
// surfaced to the caller; a failed lookup is never coerced to a zero
// distance, since zero is indistinguishable from a real computed length.
var (
	// ErrUnknownPosition reports a prefix not present in the topology or a
	// number outside the owning row's range.
	ErrUnknownPosition = errors.New("topology: unknown position")

	// ErrBrokenSequence reports a gap in the row sequence encountered while
	// walking the backbone.
	ErrBrokenSequence = errors.New("topology: broken row sequence")

	// ErrInvalidCustomRow reports a malformed custom-row definition or a
	// duplicate prefix on add.
	ErrInvalidCustomRow = errors.New("topology: invalid custom row")
)
