// Package typekey provides the identity used to address slots in a type-indexed store.
//
// A Key combines a runtime type descriptor (reflect.Type) with an optional qualifier name.
// Two keys are equal when both the type and the qualifier are equal, so keys can be
// recreated anywhere without sharing a global variable:
//
//	port := typekey.Of[int]("port")
//	same := typekey.Of[int]("port") // port == same
//
// Typed[T] carries T statically so that generic accessors never need a caller-side cast.
// Its embedded Key is the erased form used internally by stores.
package typekey
