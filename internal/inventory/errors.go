package inventory

import (
	"errors"
	"fmt"
)

// Error classes returned by store operations. Callers match them with errors.Is.
var (
	// ErrNotFound is returned by Load when the inventory file does not exist.
	ErrNotFound = errors.New("inventory file not found")

	// ErrIO is returned when the inventory file cannot be opened, read or written.
	ErrIO = errors.New("inventory file error")

	// ErrParse is returned when a numeric field cannot be converted.
	ErrParse = errors.New("invalid numeric field")

	// ErrInvalidInput is returned when a restock quantity is not a non-negative integer.
	ErrInvalidInput = errors.New("invalid quantity")

	// ErrEmpty is returned by operations that need at least one record.
	ErrEmpty = errors.New("no shoes loaded")
)

// ParseError describes a field that failed numeric conversion.
type ParseError struct {
	Field string
	Text  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid %s", ErrParse, e.Text, e.Field)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
