package config

import (
	"github.com/0xalexb/hjarta-config/store"
	"github.com/0xalexb/hjarta-config/typekey"
	"github.com/0xalexb/hjarta-config/validate"
)

// Put stores value under key in section s.
func Put[T any](s *Section, key typekey.Typed[T], value T, validators ...validate.Validator[T]) error {
	return store.Put(s.store, key, value, validators...)
}

// Get returns the value stored under key in section s.
func Get[T any](s *Section, key typekey.Typed[T]) (T, bool) {
	return store.Get(s.store, key)
}

// Require returns the value stored under key in section s, or a *store.NotFoundError.
func Require[T any](s *Section, key typekey.Typed[T]) (T, error) {
	return store.Require(s.store, key)
}

// Remove deletes key from section s and returns its prior value.
func Remove[T any](s *Section, key typekey.Typed[T]) (T, bool) {
	return store.Remove(s.store, key)
}
