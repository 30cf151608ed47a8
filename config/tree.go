package config

import (
	"github.com/0xalexb/hjarta-config/validate"

	"go.uber.org/multierr"
)

// ValidateTree runs ValidateAll on root and every descendant, depth-first in name order.
// Each failure becomes a *validate.ValidationError whose Key is prefixed with the
// section path, e.g. "database:string[url]". It returns nil when everything passes.
// Use multierr.Errors to split the result.
func ValidateTree(root *Section) error {
	var combined error

	root.walk("", func(path string, section *Section) {
		for failure := range section.store.Failures() {
			failure.Key = joinPath(path, failure.Key)
			combined = multierr.Append(combined, failure)
		}
	})

	return combined
}

// Failures flattens an error returned by ValidateTree into its validation errors.
func Failures(err error) []*validate.ValidationError {
	var failures []*validate.ValidationError

	for _, single := range multierr.Errors(err) {
		if failure, ok := single.(*validate.ValidationError); ok {
			failures = append(failures, failure)
		}
	}

	return failures
}

func (s *Section) walk(path string, visit func(path string, section *Section)) {
	visit(path, s)

	for _, name := range s.Children() {
		child, ok := s.child(name)
		if ok {
			child.walk(joinPath(path, name), visit)
		}
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + pathSeparator + name
}
