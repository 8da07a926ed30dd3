package customext

import (
	"errors"
	"fmt"
)

// Sentinel errors for building a custom extension.
// A *BuildError matches exactly one of them with errors.Is, and also
// unwraps to the oid or hexcodec error that caused it.
var (
	// ErrInvalidOID indicates the extension identifier was rejected.
	ErrInvalidOID = errors.New("invalid extension identifier")

	// ErrInvalidValue indicates the hex value could not be decoded.
	ErrInvalidValue = errors.New("invalid extension value")

	// ErrMissingValue indicates no value was supplied.
	ErrMissingValue = errors.New("extension value is required")
)

// Kind classifies a BuildError.
type Kind int

const (
	KindInvalidOID Kind = iota + 1
	KindInvalidValue
	KindMissingValue
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidOID:
		return ErrInvalidOID
	case KindInvalidValue:
		return ErrInvalidValue
	case KindMissingValue:
		return ErrMissingValue
	}
	return nil
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalidOID:
		return "invalid-oid"
	case KindInvalidValue:
		return "invalid-value"
	case KindMissingValue:
		return "missing-value"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// BuildError reports why a custom extension could not be built.
type BuildError struct {
	Kind Kind
	Err  error // Cause from package oid or hexcodec; nil for KindMissingValue
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind.sentinel(), e.Err)
	}
	return e.Kind.sentinel().Error()
}

// Unwrap returns the underlying cause.
func (e *BuildError) Unwrap() error { return e.Err }

// Is matches the sentinel for e.Kind.
func (e *BuildError) Is(target error) bool {
	return target == e.Kind.sentinel()
}
