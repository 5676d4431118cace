package builder

import "errors"

// Sentinel errors for fixture construction. Callers branch with errors.Is;
// constructors attach context via %w wrapping and never panic.
var (
	// ErrTooFewNodes indicates a size parameter below the topology's minimum.
	ErrTooFewNodes = errors.New("builder: parameter too small")

	// ErrNilConstructor indicates a nil Constructor was passed to Build.
	ErrNilConstructor = errors.New("builder: nil constructor")
)
