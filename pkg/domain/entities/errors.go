package entities

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a numeric input that violates a domain invariant,
// such as a negative stock level or a non-positive cycle time.
type InvalidInputError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// NewInvalidInput creates an InvalidInputError for the given field
func NewInvalidInput(field, format string, args ...interface{}) error {
	return &InvalidInputError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// IsInvalidInput reports whether err is an InvalidInputError anywhere in its chain
func IsInvalidInput(err error) bool {
	var invalid *InvalidInputError
	return errors.As(err, &invalid)
}
