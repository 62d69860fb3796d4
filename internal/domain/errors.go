package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrSourceNotFound   = errors.New("source not found")
	ErrMalformedRow     = errors.New("malformed row")
	ErrDestinationWrite = errors.New("destination write failed")
)

// RowError describes a source record that cannot be turned into a Row.
// Line is 1-based and counts the header as line 1.
type RowError struct {
	Line  int
	Field string
	Err   error
}

func (e *RowError) Error() string {
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("line %d: field %q: %v", e.Line, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("line %d: missing field %q", e.Line, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("line %d: malformed row", e.Line)
	}
}

// Unwrap exposes both ErrMalformedRow and the underlying cause.
func (e *RowError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedRow}
	}
	return []error{ErrMalformedRow, e.Err}
}

// NewMissingFieldError creates a RowError for a required field that is absent.
func NewMissingFieldError(line int, field string) *RowError {
	return &RowError{Line: line, Field: field}
}
