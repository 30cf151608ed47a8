// Package store provides a type-indexed heterogeneous container.
//
// Values are addressed by typekey.Key: a type descriptor plus an optional qualifier.
// The container guarantees that the value stored under a key is always assignable to
// the key's type. The check is performed once, at the single mutation point (Put/PutAny),
// and trusted everywhere at read time; Get and its siblings never fail with a cast error.
//
// A Store is not safe for concurrent use unless created with WithLocking, in which case
// the type check, the validator check and the insertion share one critical section.
//
// Usage:
//
//	s := store.New()
//	port := typekey.Of[int]("port")
//
//	err := store.Put(s, port, 8080, validate.Range(1024, 65535))
//	value, ok := store.Get(s, port) // 8080, true
package store
