package oid

import (
	"errors"
	"fmt"
)

// Sentinel errors for OID validation.
// Use errors.Is() to check for these errors through the error chain.
var (
	// ErrEmpty indicates the input was empty or only whitespace.
	ErrEmpty = errors.New("empty object identifier")

	// ErrMalformedArc indicates an arc that is not a plain decimal number.
	ErrMalformedArc = errors.New("malformed arc")

	// ErrTooFewArcs indicates fewer than two arcs.
	ErrTooFewArcs = errors.New("object identifier needs at least two arcs")

	// ErrFirstArcOutOfRange indicates a first arc other than 0, 1 or 2.
	ErrFirstArcOutOfRange = errors.New("first arc must be 0, 1 or 2")

	// ErrSecondArcOutOfRange indicates a second arc above 39 under root 0 or 1.
	ErrSecondArcOutOfRange = errors.New("second arc must be in range 0-39")

	// ErrArcOverflow indicates an arc too large for the requested representation.
	ErrArcOverflow = errors.New("arc does not fit in an int")
)

// Error describes why an input string was rejected as an object identifier.
type Error struct {
	Input string // Input as given by the caller
	Arc   int    // Zero-based index of the offending arc, -1 if not arc-specific
	Err   error  // One of the Err* sentinels
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Arc >= 0 {
		return fmt.Sprintf("invalid OID %q: arc %d: %v", e.Input, e.Arc+1, e.Err)
	}
	return fmt.Sprintf("invalid OID %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error { return e.Err }

func newError(input string, arc int, err error) *Error {
	return &Error{Input: input, Arc: arc, Err: err}
}
