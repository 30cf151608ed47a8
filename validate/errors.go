package validate

import (
	"errors"
	"fmt"
)

// ErrValidation matches any *ValidationError with errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a value rejected by a validator.
type ValidationError struct {
	// Key names the rejected slot; empty when the check ran outside a store.
	Key string

	// Message is the rejecting validator's message.
	Message string

	// Value is the rejected value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Key == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Errorf creates a ValidationError with a formatted message.
func Errorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
