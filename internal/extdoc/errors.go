package extdoc

import (
	"errors"
	"fmt"
)

// Sentinel errors for document validation.
var (
	// ErrDuplicateExtension indicates two custom extensions share an identifier.
	ErrDuplicateExtension = errors.New("duplicate extension identifier")

	// ErrUnknownFormat indicates an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")
)

// FieldError ties a validation failure to a location in the document.
type FieldError struct {
	Field string // e.g. "customExtensions[1].value"
	Value string // offending input, if safe to include
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s=%q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *FieldError) Unwrap() error { return e.Err }
