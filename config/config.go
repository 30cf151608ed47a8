package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-config/typekey"
	"github.com/0xalexb/hjarta-config/validate"
)

// ErrPathNotFound is returned by parsers when the requested path does not exist in the data.
var ErrPathNotFound = errors.New("path not found")

// ErrEmptyPath is returned when a binding has no path.
var ErrEmptyPath = errors.New("binding path must not be empty")

// Parser defines an interface for parsing configuration data into a target value.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "api:permissions" navigates to config["api"]["permissions"]
//   - "database:connection:timeout" navigates three levels deep
//   - "" (empty path) means parse the entire document
//
// Implementations should wrap ErrPathNotFound when the path does not exist.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating parsed struct values.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in parsed struct values.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Binding loads one typed value from a path in the configuration data into a section.
type Binding struct {
	path  string
	key   typekey.Key
	apply func(root *Section, parser Parser, data []byte) error
}

// Path returns the colon-separated data path.
func (b Binding) Path() string {
	return b.path
}

// Key returns the key the value is stored under.
func (b Binding) Key() typekey.Key {
	return b.key
}

// Bind creates a Binding that parses the value at path into a T and stores it under key
// in the section named by every path segment but the last. A missing path is an error.
func Bind[T any](key typekey.Typed[T], path string, validators ...validate.Validator[T]) Binding {
	return newBinding(key, path, nil, validators)
}

// BindDefault is Bind with a fallback value used when path is absent from the data.
func BindDefault[T any](key typekey.Typed[T], path string, fallback T, validators ...validate.Validator[T]) Binding {
	return newBinding(key, path, &fallback, validators)
}

func newBinding[T any](
	key typekey.Typed[T],
	path string,
	fallback *T,
	validators []validate.Validator[T],
) Binding {
	owned := make([]validate.Validator[T], len(validators))
	copy(owned, validators)

	return Binding{
		path: path,
		key:  key.Erase(),
		apply: func(root *Section, parser Parser, data []byte) error {
			if path == "" {
				return ErrEmptyPath
			}

			var value T

			err := parser.Parse(data, &value, path)

			switch {
			case err == nil:
			case fallback != nil && errors.Is(err, ErrPathNotFound):
				value = *fallback

				slog.Info("defaults applied", slog.String("path", path))
			default:
				return fmt.Errorf("parsing error: %w", err)
			}

			targetDefaulter, isDefaulter := any(&value).(Defaulter)
			if isDefaulter {
				changed := targetDefaulter.SetDefaults()
				if changed {
					slog.Info("defaults applied", slog.String("path", path))
				}
			}

			targetValidatable, isValidatable := any(&value).(Validator)
			if isValidatable {
				err := targetValidatable.Validate()
				if err != nil {
					return fmt.Errorf("validating error: %w", err)
				}
			}

			section := root.At(parentPath(path))

			err = Put(section, key, value, owned...)
			if err != nil {
				return fmt.Errorf("storing %s: %w", key, err)
			}

			slog.Debug("configuration value loaded", slog.String("path", path), slog.String("key", key.String()))

			return nil
		},
	}
}

// Load fetches configuration data once and applies every binding to root, in order.
// It stops at the first failing binding; bindings applied before it stay in place.
func Load(root *Section, parser Parser, fetcher DataFetcher, bindings ...Binding) error {
	data, err := fetcher.Fetch()
	if err != nil {
		return fmt.Errorf("reading data error: %w", err)
	}

	for _, binding := range bindings {
		err := binding.apply(root, parser, data)
		if err != nil {
			return fmt.Errorf("binding %q: %w", binding.path, err)
		}
	}

	return nil
}

// Provider returns a function that reads configuration data, applies the bindings to a new
// root section and returns it. The function's signature suits fx.Provide.
func Provider(bindings ...Binding) func(Parser, DataFetcher) (*Section, error) {
	owned := make([]Binding, len(bindings))
	copy(owned, bindings)

	return func(parser Parser, dataSourcer DataFetcher) (*Section, error) {
		root := NewSection()

		err := Load(root, parser, dataSourcer, owned...)
		if err != nil {
			return nil, err
		}

		return root, nil
	}
}

func parentPath(path string) string {
	idx := strings.LastIndex(path, pathSeparator)
	if idx < 0 {
		return ""
	}

	return path[:idx]
}
