package validate

import (
	"cmp"
	"fmt"
	"reflect"
	"regexp"
	"slices"
)

// Range accepts values in the closed interval [minimum, maximum].
func Range[T cmp.Ordered](minimum, maximum T) Validator[T] {
	return New(
		fmt.Sprintf("Value must be between %v and %v", minimum, maximum),
		func(value T) bool {
			return value >= minimum && value <= maximum
		},
	)
}

// MinLength accepts slices holding at least n elements.
func MinLength[S ~[]E, E any](n int) Validator[S] {
	return New(
		fmt.Sprintf("Length must be at least %d", n),
		func(value S) bool {
			return len(value) >= n
		},
	)
}

// MinStringLength accepts strings of at least n bytes.
func MinStringLength[S ~string](n int) Validator[S] {
	return New(
		fmt.Sprintf("Length must be at least %d", n),
		func(value S) bool {
			return len(value) >= n
		},
	)
}

// NotNull rejects nil pointers, interfaces, maps, slices, channels and funcs.
// Values of non-nillable types always pass.
func NotNull[T any]() Validator[T] {
	return New("Value must not be null", func(value T) bool {
		return !isNil(value)
	})
}

// OneOf accepts values equal to one of allowed.
func OneOf[T comparable](allowed ...T) Validator[T] {
	owned := slices.Clone(allowed)

	return New(
		fmt.Sprintf("Value must be one of %v", owned),
		func(value T) bool {
			return slices.Contains(owned, value)
		},
	)
}

// Pattern accepts strings matching the regular expression re.
func Pattern[S ~string](re *regexp.Regexp) Validator[S] {
	return New(
		fmt.Sprintf("Value must match pattern %q", re.String()),
		func(value S) bool {
			return re.MatchString(string(value))
		},
	)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive // only nillable kinds matter
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
