// Package builder provides a base for fluent builders whose every mutator returns the
// exact concrete builder type.
//
// A concrete builder embeds Base[Self], where Self is the builder's own pointer type,
// and binds itself once in its constructor:
//
//	type UserBuilder struct {
//	    builder.Base[*UserBuilder]
//	    age int
//	}
//
//	func NewUserBuilder() *UserBuilder {
//	    b := &UserBuilder{}
//	    b.Bind(b)
//
//	    return b
//	}
//
// WithName, WithProperty and Enabled then return *UserBuilder, so promoted base methods
// and the builder's own methods chain freely without a caller-side type assertion:
//
//	user, err := NewUserBuilder().WithName("Ann").WithAge(30).Build()
//
// Build is a template: it runs Validate (fail-fast) and only then CreateProduct.
// Builders are not locked after a build and may stamp any number of products.
package builder
