package store

import (
	"reflect"

	"github.com/0xalexb/hjarta-config/typekey"
	"github.com/0xalexb/hjarta-config/validate"
)

// Put stores value under key. Multiple validators are combined with validate.All and
// registered as the entry's single rule, replacing any previous one.
func Put[T any](s *Store, key typekey.Typed[T], value T, validators ...validate.Validator[T]) error {
	var rule validate.Rule
	if len(validators) > 0 {
		rule = validate.All(validators...)
	}

	return s.PutAny(key.Erase(), value, rule)
}

// Get returns the value stored under key, or false when absent.
func Get[T any](s *Store, key typekey.Typed[T]) (T, bool) {
	value, ok := s.lookup(key.Erase())
	if !ok {
		var zero T

		return zero, false
	}

	return as[T](value)
}

// Require returns the value stored under key or a *NotFoundError.
func Require[T any](s *Store, key typekey.Typed[T]) (T, error) {
	value, ok := Get(s, key)
	if !ok {
		return value, &NotFoundError{Key: key.Erase()}
	}

	return value, nil
}

// Remove deletes the entry for key and returns its prior value.
func Remove[T any](s *Store, key typekey.Typed[T]) (T, bool) {
	value, ok := s.take(key.Erase())
	if !ok {
		var zero T

		return zero, false
	}

	return as[T](value)
}

// AllOfExactType returns every entry whose key type is exactly T, keyed by qualifier.
func AllOfExactType[T any](s *Store) map[string]T {
	target := reflect.TypeFor[T]()
	matched := s.snapshot(func(key typekey.Key) bool {
		return key.Type() == target
	})

	result := make(map[string]T, len(matched))

	for key, value := range matched {
		if typed, ok := as[T](value); ok {
			result[key.Qualifier()] = typed
		}
	}

	return result
}

// AllAssignableTo returns every entry whose declared key type is assignable to T.
// It scans the whole table.
func AllAssignableTo[T any](s *Store) map[typekey.Key]T {
	target := reflect.TypeFor[T]()
	matched := s.snapshot(func(key typekey.Key) bool {
		return key.Type().AssignableTo(target)
	})

	result := make(map[typekey.Key]T, len(matched))

	for key, value := range matched {
		if typed, ok := as[T](value); ok {
			result[key] = typed
		}
	}

	return result
}

// as recovers a T from a stored value. Put guarantees the value's type is the key's type,
// so the conversion branch only serves assignable-but-distinct types in AllAssignableTo.
func as[T any](value any) (T, bool) {
	var zero T

	if value == nil {
		return zero, true
	}

	typed, ok := value.(T)
	if ok {
		return typed, true
	}

	target := reflect.TypeFor[T]()

	rv := reflect.ValueOf(value)
	if !rv.Type().ConvertibleTo(target) {
		return zero, false
	}

	converted, ok := rv.Convert(target).Interface().(T)

	return converted, ok
}
