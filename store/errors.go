package store

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/0xalexb/hjarta-config/typekey"
)

// ErrTypeMismatch matches any *TypeMismatchError with errors.Is.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrNotFound matches any *NotFoundError with errors.Is.
var ErrNotFound = errors.New("key not found")

// ErrInvalidKey is returned when a zero typekey.Key is used for a write.
var ErrInvalidKey = errors.New("invalid key: missing type descriptor")

// TypeMismatchError reports a value whose runtime type is not assignable to the key's type.
type TypeMismatchError struct {
	Key    typekey.Key
	Actual reflect.Type
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	actual := "nil"
	if e.Actual != nil {
		actual = e.Actual.String()
	}

	return fmt.Sprintf("type mismatch for %s: %s is not assignable to %s", e.Key, actual, e.Key.TypeName())
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// NotFoundError reports the absence of a key on a non-optional read.
type NotFoundError struct {
	Key typekey.Key
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, e.Key)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
