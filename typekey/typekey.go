package typekey

import (
	"cmp"
	"hash/fnv"
	"reflect"
)

// Key identifies a slot by type descriptor and optional qualifier.
// Key is immutable and comparable; use it directly as a map key.
type Key struct {
	typ       reflect.Type
	qualifier string
	hash      uint64
}

// New creates a Key for the given type descriptor and qualifier.
// A nil type yields the zero Key, which IsZero reports as invalid.
func New(typ reflect.Type, qualifier string) Key {
	if typ == nil {
		return Key{}
	}

	return Key{
		typ:       typ,
		qualifier: qualifier,
		hash:      hashOf(typ, qualifier),
	}
}

// For creates an erased Key for type T.
func For[T any](qualifier string) Key {
	return New(reflect.TypeFor[T](), qualifier)
}

// Type returns the declared type descriptor.
func (k Key) Type() reflect.Type {
	return k.typ
}

// Qualifier returns the qualifier name, empty for unqualified keys.
func (k Key) Qualifier() string {
	return k.qualifier
}

// Hash returns the hash derived when the key was constructed.
func (k Key) Hash() uint64 {
	return k.hash
}

// IsZero reports whether the key has no type descriptor.
func (k Key) IsZero() bool {
	return k.typ == nil
}

// TypeName returns the type descriptor's name, e.g. "int" or "*bytes.Buffer".
func (k Key) TypeName() string {
	if k.typ == nil {
		return "<nil>"
	}

	return k.typ.String()
}

// String renders the key as "type" or "type[qualifier]".
func (k Key) String() string {
	if k.qualifier == "" {
		return k.TypeName()
	}

	return k.TypeName() + "[" + k.qualifier + "]"
}

// Compare orders keys by String, then by the type's package path. Distinct types that
// agree on both, such as same-named types declared in different functions, compare equal.
func Compare(a, b Key) int {
	return cmp.Or(
		cmp.Compare(a.String(), b.String()),
		cmp.Compare(pkgPath(a.typ), pkgPath(b.typ)),
	)
}

func pkgPath(typ reflect.Type) string {
	if typ == nil {
		return ""
	}

	for typ.Name() == "" && hasElem(typ.Kind()) {
		typ = typ.Elem()
	}

	return typ.PkgPath()
}

func hasElem(kind reflect.Kind) bool {
	switch kind { //nolint:exhaustive // only composite kinds carry an element type
	case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return true
	default:
		return false
	}
}

// Typed is a Key whose type descriptor is T.
type Typed[T any] struct {
	Key
}

// Of creates a typed key for T with the given qualifier.
func Of[T any](qualifier string) Typed[T] {
	return Typed[T]{Key: For[T](qualifier)}
}

// Erase returns the untyped key.
func (t Typed[T]) Erase() Key {
	return t.Key
}

func hashOf(typ reflect.Type, qualifier string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(pkgPath(typ)))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(typ.String()))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(qualifier))

	return h.Sum64()
}
