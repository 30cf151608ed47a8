// Package validate provides pure, composable predicate-plus-message validators.
//
// A Validator[T] is an immutable value: it can be shared across any number of store
// entries. Validators combine with And, Or, Negate and All; the library constructors
// (Range, MinLength, MinStringLength, NotNull, OneOf, Pattern) cover common rules.
//
// Stores keep validators in their erased form, Rule, so that entries of different
// types can live in one table.
package validate
