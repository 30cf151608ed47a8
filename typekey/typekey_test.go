package typekey_test

import (
	"bytes"
	htmltemplate "html/template"
	"io"
	"reflect"
	"testing"
	texttemplate "text/template"

	"github.com/0xalexb/hjarta-config/typekey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_Equality(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		left  typekey.Key
		right typekey.Key
		equal bool
	}{
		{
			name:  "same type and qualifier",
			left:  typekey.For[int]("port"),
			right: typekey.For[int]("port"),
			equal: true,
		},
		{
			name:  "same type different qualifier",
			left:  typekey.For[int]("port"),
			right: typekey.For[int]("timeout"),
			equal: false,
		},
		{
			name:  "different type same qualifier",
			left:  typekey.For[int]("port"),
			right: typekey.For[string]("port"),
			equal: false,
		},
		{
			name:  "unqualified keys",
			left:  typekey.For[string](""),
			right: typekey.New(reflect.TypeOf(""), ""),
			equal: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.equal, testCase.left == testCase.right)

			if testCase.equal {
				assert.Equal(t, testCase.left.Hash(), testCase.right.Hash())
			}
		})
	}
}

func TestKey_AsMapKey(t *testing.T) {
	t.Parallel()

	entries := map[typekey.Key]string{
		typekey.For[int]("port"): "first",
	}

	entries[typekey.For[int]("port")] = "second"

	require.Len(t, entries, 1)
	assert.Equal(t, "second", entries[typekey.For[int]("port")])
}

func TestKey_Accessors(t *testing.T) {
	t.Parallel()

	key := typekey.For[*bytes.Buffer]("out")

	assert.Equal(t, reflect.TypeOf(&bytes.Buffer{}), key.Type())
	assert.Equal(t, "out", key.Qualifier())
	assert.Equal(t, "*bytes.Buffer", key.TypeName())
	assert.Equal(t, "*bytes.Buffer[out]", key.String())
	assert.NotZero(t, key.Hash())
	assert.False(t, key.IsZero())
}

func TestKey_InterfaceType(t *testing.T) {
	t.Parallel()

	key := typekey.For[io.Reader]("")

	assert.Equal(t, reflect.Interface, key.Type().Kind())
	assert.Equal(t, "io.Reader", key.String())
}

func TestKey_Zero(t *testing.T) {
	t.Parallel()

	var key typekey.Key

	assert.True(t, key.IsZero())
	assert.True(t, typekey.New(nil, "x").IsZero())
	assert.Equal(t, "<nil>", key.String())
}

func TestTyped_Erase(t *testing.T) {
	t.Parallel()

	typed := typekey.Of[int]("port")

	assert.Equal(t, typekey.For[int]("port"), typed.Erase())
	assert.Equal(t, "int[port]", typed.String())
}

func TestCompare(t *testing.T) {
	t.Parallel()

	htmlKey := typekey.For[htmltemplate.Template]("")
	textKey := typekey.For[texttemplate.Template]("")

	require.Equal(t, htmlKey.String(), textKey.String(), "both render as template.Template")
	assert.NotEqual(t, htmlKey, textKey)
	assert.NotEqual(t, htmlKey.Hash(), textKey.Hash())

	assert.Negative(t, typekey.Compare(htmlKey, textKey))
	assert.Positive(t, typekey.Compare(textKey, htmlKey))
	assert.Negative(t, typekey.Compare(typekey.For[*htmltemplate.Template](""), typekey.For[*texttemplate.Template]("")))
	assert.Negative(t, typekey.Compare(typekey.For[int]("a"), typekey.For[int]("b")))
	assert.Zero(t, typekey.Compare(typekey.For[int]("port"), typekey.For[int]("port")))
	assert.Zero(t, typekey.Compare(typekey.Key{}, typekey.Key{}))
}
