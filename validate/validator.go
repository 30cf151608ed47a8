package validate

import (
	"fmt"
)

const noneSatisfiedFormat = "None of the conditions satisfied: (%s) or (%s)"

// Rule is the type-erased form of a Validator stored alongside untyped values.
type Rule interface {
	// Validate checks value and returns a *ValidationError when it is rejected.
	Validate(value any) error
	// Message returns the rule's static message.
	Message() string
}

// Validator is a predicate on T paired with the message reported when it fails.
// The zero Validator accepts every value.
type Validator[T any] struct {
	check   func(T) (string, bool)
	message string
}

// New creates a validator that reports message whenever predicate returns false.
func New[T any](message string, predicate func(T) bool) Validator[T] {
	return Validator[T]{
		check: func(value T) (string, bool) {
			if predicate(value) {
				return "", true
			}

			return message, false
		},
		message: message,
	}
}

// Message returns the validator's message.
func (v Validator[T]) Message() string {
	return v.message
}

// Test reports whether value satisfies the validator.
func (v Validator[T]) Test(value T) bool {
	_, ok := v.run(value)

	return ok
}

// Check returns a *ValidationError carrying the failing message, or nil.
func (v Validator[T]) Check(value T) error {
	msg, ok := v.run(value)
	if ok {
		return nil
	}

	return &ValidationError{Message: msg, Value: value}
}

// Validate implements Rule. Values that are not a T are rejected.
func (v Validator[T]) Validate(value any) error {
	typed, ok := value.(T)
	if !ok {
		if value != nil {
			return &ValidationError{
				Message: fmt.Sprintf("expected %T, got %T", typed, value),
				Value:   value,
			}
		}
		// A nil interface is the zero value for nillable T.
	}

	return v.Check(typed)
}

// And returns a validator satisfied when both v and other are.
// On failure it reports the message of the first failing operand.
func (v Validator[T]) And(other Validator[T]) Validator[T] {
	return Validator[T]{
		check: func(value T) (string, bool) {
			if msg, ok := v.run(value); !ok {
				return msg, false
			}

			return other.run(value)
		},
		message: v.message + " and " + other.message,
	}
}

// Or returns a validator satisfied when either v or other is.
func (v Validator[T]) Or(other Validator[T]) Validator[T] {
	message := fmt.Sprintf(noneSatisfiedFormat, v.message, other.message)

	return Validator[T]{
		check: func(value T) (string, bool) {
			if _, ok := v.run(value); ok {
				return "", true
			}

			if _, ok := other.run(value); ok {
				return "", true
			}

			return message, false
		},
		message: message,
	}
}

// Negate returns a validator satisfied exactly when v is not.
func (v Validator[T]) Negate() Validator[T] {
	message := "Value must not satisfy: " + v.message

	return Validator[T]{
		check: func(value T) (string, bool) {
			if _, ok := v.run(value); ok {
				return message, false
			}

			return "", true
		},
		message: message,
	}
}

// All combines validators with And. With no arguments it returns the zero Validator.
func All[T any](validators ...Validator[T]) Validator[T] {
	if len(validators) == 0 {
		return Validator[T]{}
	}

	owned := make([]Validator[T], len(validators))
	copy(owned, validators)

	combined := owned[0]
	for _, next := range owned[1:] {
		combined = combined.And(next)
	}

	return combined
}

func (v Validator[T]) run(value T) (string, bool) {
	if v.check == nil {
		return "", true
	}

	return v.check(value)
}
