package analyzer

import (
	"errors"
	"fmt"
)

// Error definitions for the analyzer package
var (
	// ErrUnwrapDepthExceeded is returned when nested bash -c unwrapping
	// exceeds MaxUnwrapDepth. The caller must treat this as "could not
	// analyze" and fail closed.
	ErrUnwrapDepthExceeded = errors.New("shell unwrap depth exceeds security limit")
)

// ConstructError reports a shell construct the analyzer cannot reason about
// safely. Commands containing such constructs are never eligible for
// automatic approval.
type ConstructError struct {
	// Construct is the human-readable name of the rejected construct.
	Construct string
	// Signature is the character sequence that triggered the rejection.
	Signature string
}

// Error implements the error interface.
func (e *ConstructError) Error() string {
	return fmt.Sprintf("unsupported shell construct: %s (%q)", e.Construct, e.Signature)
}
