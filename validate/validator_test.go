package validate_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/0xalexb/hjarta-config/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	t.Parallel()

	port := validate.Range(1024, 65535)

	testCases := []struct {
		name  string
		value int
		valid bool
	}{
		{name: "lower bound", value: 1024, valid: true},
		{name: "upper bound", value: 65535, valid: true},
		{name: "inside", value: 8080, valid: true},
		{name: "below", value: 80, valid: false},
		{name: "above", value: 70000, valid: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.valid, port.Test(testCase.value))
		})
	}

	assert.Equal(t, "Value must be between 1024 and 65535", port.Message())
}

func TestValidator_Check(t *testing.T) {
	t.Parallel()

	err := validate.Range(1024, 65535).Check(80)
	require.Error(t, err)
	require.ErrorIs(t, err, validate.ErrValidation)

	var validationErr *validate.ValidationError

	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Value must be between 1024 and 65535", validationErr.Message)
	assert.Equal(t, 80, validationErr.Value)
	assert.Equal(t, validationErr.Message, validationErr.Error())

	require.NoError(t, validate.Range(1024, 65535).Check(8080))
}

func TestValidator_Zero(t *testing.T) {
	t.Parallel()

	var v validate.Validator[string]

	assert.True(t, v.Test(""))
	require.NoError(t, v.Check("anything"))
}

func TestValidator_And(t *testing.T) {
	t.Parallel()

	positive := validate.New("must be positive", func(v int) bool { return v > 0 })
	even := validate.New("must be even", func(v int) bool { return v%2 == 0 })
	both := positive.And(even)

	assert.True(t, both.Test(4))
	assert.Equal(t, "must be positive and must be even", both.Message())

	var validationErr *validate.ValidationError

	require.ErrorAs(t, both.Check(-2), &validationErr)
	assert.Equal(t, "must be positive", validationErr.Message, "first failing operand is reported")

	require.ErrorAs(t, both.Check(3), &validationErr)
	assert.Equal(t, "must be even", validationErr.Message)
}

func TestValidator_Or(t *testing.T) {
	t.Parallel()

	small := validate.New("small", func(v int) bool { return v < 10 })
	large := validate.New("large", func(v int) bool { return v > 100 })
	either := small.Or(large)

	assert.True(t, either.Test(5))
	assert.True(t, either.Test(500))
	assert.False(t, either.Test(50))

	var validationErr *validate.ValidationError

	require.ErrorAs(t, either.Check(50), &validationErr)
	assert.Equal(t, "None of the conditions satisfied: (small) or (large)", validationErr.Message)
}

func TestValidator_Negate(t *testing.T) {
	t.Parallel()

	empty := validate.New("empty", func(v string) bool { return v == "" })
	notEmpty := empty.Negate()

	assert.True(t, notEmpty.Test("x"))
	assert.False(t, notEmpty.Test(""))
	assert.Equal(t, "Value must not satisfy: empty", notEmpty.Message())
	assert.True(t, notEmpty.Negate().Test(""))
}

func TestAll(t *testing.T) {
	t.Parallel()

	assert.True(t, validate.All[int]().Test(-1), "no validators accept everything")

	combined := validate.All(validate.Range(0, 10), validate.OneOf(1, 3, 5))

	assert.True(t, combined.Test(3))
	assert.False(t, combined.Test(4))
	assert.False(t, combined.Test(11))
}

func TestAll_DoesNotRetainCallerSlice(t *testing.T) {
	t.Parallel()

	validators := []validate.Validator[int]{validate.Range(0, 10)}
	combined := validate.All(validators...)

	validators[0] = validate.Range(100, 200)

	assert.True(t, combined.Test(5))
}

func TestMinLength(t *testing.T) {
	t.Parallel()

	hosts := validate.MinLength[[]string](2)

	assert.True(t, hosts.Test([]string{"a", "b"}))
	assert.False(t, hosts.Test([]string{"a"}))
	assert.Equal(t, "Length must be at least 2", hosts.Message())

	name := validate.MinStringLength[string](3)

	assert.True(t, name.Test("Ann"))
	assert.False(t, name.Test("Al"))
}

func TestNotNull(t *testing.T) {
	t.Parallel()

	type payload struct{}

	ptr := validate.NotNull[*payload]()

	assert.False(t, ptr.Test(nil))
	assert.True(t, ptr.Test(&payload{}))

	anyValue := validate.NotNull[any]()

	assert.False(t, anyValue.Test(nil))
	assert.True(t, anyValue.Test(0))

	assert.False(t, validate.NotNull[map[string]int]().Test(nil))
	assert.True(t, validate.NotNull[int]().Test(0))
}

func TestOneOf_CopiesArguments(t *testing.T) {
	t.Parallel()

	allowed := []string{"debug", "info"}
	level := validate.OneOf(allowed...)

	allowed[0] = "trace"

	assert.True(t, level.Test("debug"))
	assert.False(t, level.Test("trace"))
	assert.Equal(t, "Value must be one of [debug info]", level.Message())
}

func TestPattern(t *testing.T) {
	t.Parallel()

	scheme := validate.Pattern[string](regexp.MustCompile(`^[a-z]+://`))

	testCases := []struct {
		name  string
		value string
		valid bool
	}{
		{"scheme present", "db://host", true},
		{"longer scheme", "postgres://db.example.com/app", true},
		{"no scheme", "host", false},
		{"uppercase scheme", "DB://host", false},
		{"empty", "", false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.valid, scheme.Test(testCase.value))

			err := scheme.Check(testCase.value)
			if testCase.valid {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, validate.ErrValidation)
			assert.Equal(t, `Value must match pattern "^[a-z]+://"`, err.Error())
		})
	}

	assert.Equal(t, `Value must match pattern "^[a-z]+://"`, scheme.Message())
}

func TestValidator_ValidateErased(t *testing.T) {
	t.Parallel()

	var rule validate.Rule = validate.Range(1, 5)

	require.NoError(t, rule.Validate(3))
	require.ErrorIs(t, rule.Validate(9), validate.ErrValidation)

	err := rule.Validate("three")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected int, got string")
}

func TestValidationError_WithKey(t *testing.T) {
	t.Parallel()

	err := &validate.ValidationError{Key: "int[port]", Message: "bad"}

	assert.Equal(t, "int[port]: bad", err.Error())
	assert.True(t, errors.Is(err, validate.ErrValidation))
	assert.Equal(t, "oops 3", validate.Errorf("oops %d", 3).Message)
}
