package builder

import (
	"errors"
	"maps"

	"github.com/0xalexb/hjarta-config/validate"
)

// ErrUnbound is the panic value raised when a Base is used before Bind.
var ErrUnbound = errors.New("builder: Base used before Bind")

// NameRequired is the message Base.Validate reports for an empty name.
const NameRequired = "Name is required"

// Product is implemented by concrete builders: Validate gates CreateProduct.
type Product[P any] interface {
	Validate() error
	CreateProduct() P
}

// Build validates b and, only on success, creates its product.
func Build[P any](b Product[P]) (P, error) {
	err := b.Validate()
	if err != nil {
		var zero P

		return zero, err
	}

	return b.CreateProduct(), nil
}

// Base holds the state shared by every builder. Self is the concrete builder type.
type Base[Self any] struct {
	self       Self
	bound      bool
	name       string
	enabled    bool
	properties map[string]any
}

// Bind records the concrete builder that fluent methods return. It must be called
// exactly once, before any fluent method, with the builder that embeds this Base.
func (b *Base[Self]) Bind(self Self) {
	b.self = self
	b.bound = true
}

// Self returns the bound concrete builder.
func (b *Base[Self]) Self() Self {
	if !b.bound {
		panic(ErrUnbound)
	}

	return b.self
}

// WithName sets the name.
func (b *Base[Self]) WithName(name string) Self {
	b.name = name

	return b.Self()
}

// WithProperty sets a named property, replacing any previous value.
func (b *Base[Self]) WithProperty(key string, value any) Self {
	if b.properties == nil {
		b.properties = make(map[string]any)
	}

	b.properties[key] = value

	return b.Self()
}

// WithProperties copies every entry of properties into the builder.
func (b *Base[Self]) WithProperties(properties map[string]any) Self {
	if b.properties == nil {
		b.properties = make(map[string]any, len(properties))
	}

	maps.Copy(b.properties, properties)

	return b.Self()
}

// Enabled sets the enabled flag.
func (b *Base[Self]) Enabled(flag bool) Self {
	b.enabled = flag

	return b.Self()
}

// Name returns the accumulated name.
func (b *Base[Self]) Name() string {
	return b.name
}

// IsEnabled returns the accumulated enabled flag.
func (b *Base[Self]) IsEnabled() bool {
	return b.enabled
}

// Properties returns a copy of the accumulated properties.
func (b *Base[Self]) Properties() map[string]any {
	return maps.Clone(b.properties)
}

// Validate requires a non-empty name. Concrete builders that override Validate
// should call it first and then add their own checks.
func (b *Base[Self]) Validate() error {
	if b.name == "" {
		return &validate.ValidationError{Key: "name", Message: NameRequired}
	}

	return nil
}
