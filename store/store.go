package store

import (
	"errors"
	"iter"
	"reflect"
	"slices"
	"sync"

	"github.com/0xalexb/hjarta-config/typekey"
	"github.com/0xalexb/hjarta-config/validate"
)

type entry struct {
	value any
	rule  validate.Rule
}

// Store maps typekey.Key to values whose runtime type is assignable to the key's type.
type Store struct {
	mu      *sync.RWMutex
	entries map[typekey.Key]entry
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	store := &Store{
		mu:      nil,
		entries: make(map[typekey.Key]entry),
	}

	if options.Locking {
		store.mu = &sync.RWMutex{}
	}

	return store
}

// PutAny stores value under key after checking that value is assignable to the key's type
// and that rule, when non-nil, accepts it. It replaces any prior entry and its rule.
// On failure the store is left unchanged.
func (s *Store) PutAny(key typekey.Key, value any, rule validate.Rule) error {
	s.lock()
	defer s.unlock()

	return s.put(key, value, rule)
}

// Contains reports whether an entry exists for key.
func (s *Store) Contains(key typekey.Key) bool {
	s.rlock()
	defer s.runlock()

	_, ok := s.entries[key]

	return ok
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.rlock()
	defer s.runlock()

	return len(s.entries)
}

// Keys returns every key in typekey.Compare order.
func (s *Store) Keys() []typekey.Key {
	s.rlock()
	defer s.runlock()

	return s.sortedKeys()
}

// ValidateAll re-runs every registered rule against its entry's current value and yields
// the message of each failure. The sequence is evaluated lazily and does not stop at the
// first failure.
func (s *Store) ValidateAll() iter.Seq[string] {
	return func(yield func(string) bool) {
		for failure := range s.Failures() {
			if !yield(failure.Message) {
				return
			}
		}
	}
}

// Failures is ValidateAll with each failure carried as a *validate.ValidationError
// naming the entry's key. Entries are visited in key order.
func (s *Store) Failures() iter.Seq[*validate.ValidationError] {
	return func(yield func(*validate.ValidationError) bool) {
		type checked struct {
			key   typekey.Key
			value any
			rule  validate.Rule
		}

		s.rlock()

		pending := make([]checked, 0, len(s.entries))

		for _, key := range s.sortedKeys() {
			current := s.entries[key]
			if current.rule != nil {
				pending = append(pending, checked{key: key, value: current.value, rule: current.rule})
			}
		}

		s.runlock()

		for _, item := range pending {
			err := item.rule.Validate(item.value)
			if err == nil {
				continue
			}

			failure := &validate.ValidationError{
				Key:     item.key.String(),
				Message: failureMessage(err),
				Value:   item.value,
			}

			if !yield(failure) {
				return
			}
		}
	}
}

// Rule returns the rule registered for key, if any.
func (s *Store) Rule(key typekey.Key) (validate.Rule, bool) {
	s.rlock()
	defer s.runlock()

	current, ok := s.entries[key]
	if !ok || current.rule == nil {
		return nil, false
	}

	return current.rule, true
}

func (s *Store) put(key typekey.Key, value any, rule validate.Rule) error {
	if key.IsZero() {
		return ErrInvalidKey
	}

	normalized, err := conform(key, value)
	if err != nil {
		return err
	}

	if rule != nil {
		err := rule.Validate(normalized)
		if err != nil {
			return withKey(err, key)
		}
	}

	s.entries[key] = entry{value: normalized, rule: rule}

	return nil
}

func (s *Store) lookup(key typekey.Key) (any, bool) {
	s.rlock()
	defer s.runlock()

	current, ok := s.entries[key]

	return current.value, ok
}

func (s *Store) take(key typekey.Key) (any, bool) {
	s.lock()
	defer s.unlock()

	current, ok := s.entries[key]
	if ok {
		delete(s.entries, key)
	}

	return current.value, ok
}

// snapshot copies the entries matching keep while holding the read lock.
func (s *Store) snapshot(keep func(typekey.Key) bool) map[typekey.Key]any {
	s.rlock()
	defer s.runlock()

	result := make(map[typekey.Key]any)

	for key, current := range s.entries {
		if keep(key) {
			result[key] = current.value
		}
	}

	return result
}

func (s *Store) sortedKeys() []typekey.Key {
	keys := make([]typekey.Key, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}

	slices.SortFunc(keys, typekey.Compare)

	return keys
}

func (s *Store) lock() {
	if s.mu != nil {
		s.mu.Lock()
	}
}

func (s *Store) unlock() {
	if s.mu != nil {
		s.mu.Unlock()
	}
}

func (s *Store) rlock() {
	if s.mu != nil {
		s.mu.RLock()
	}
}

func (s *Store) runlock() {
	if s.mu != nil {
		s.mu.RUnlock()
	}
}

// conform checks that value is assignable to the key's type and, for concrete key types,
// converts it so that its dynamic type equals the declared type.
func conform(key typekey.Key, value any) (any, error) {
	declared := key.Type()

	if value == nil {
		if nillable(declared) {
			return reflect.Zero(declared).Interface(), nil
		}

		return nil, &TypeMismatchError{Key: key, Actual: nil}
	}

	actual := reflect.TypeOf(value)
	if !actual.AssignableTo(declared) {
		return nil, &TypeMismatchError{Key: key, Actual: actual}
	}

	if declared.Kind() == reflect.Interface || actual == declared {
		return value, nil
	}

	return reflect.ValueOf(value).Convert(declared).Interface(), nil
}

func nillable(typ reflect.Type) bool {
	switch typ.Kind() { //nolint:exhaustive // only nillable kinds matter
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}

func withKey(err error, key typekey.Key) error {
	var validationErr *validate.ValidationError
	if errors.As(err, &validationErr) {
		return &validate.ValidationError{
			Key:     key.String(),
			Message: validationErr.Message,
			Value:   validationErr.Value,
		}
	}

	return err
}

func failureMessage(err error) string {
	var validationErr *validate.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	return err.Error()
}
