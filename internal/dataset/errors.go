package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the dataset could not be loaded at all.
	ErrUnavailable = errors.New("dataset: unavailable")

	// ErrMissingColumn indicates a required header column is absent.
	ErrMissingColumn = errors.New("dataset: missing column")
)

// ParseError reports a cell that could not be read as a number.
type ParseError struct {
	Line    int
	Column  string
	Value   string
	Wrapped error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset: line %d, column %s: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Wrapped)
}

// Unwrap exposes both the availability sentinel and the parse cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrUnavailable, e.Wrapped}
}
