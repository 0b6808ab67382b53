// Package collection provides immutable, lazily-resolving ordered collections and a keyed lookup
// for navigating nested, optional, loosely-typed data such as decoded API payloads.
//
// A collection holds a read-only sequence of raw items (Items). Concrete collection types embed
// Collection and supply two functions: a constructor used to rebuild the concrete type from a new
// sequence, and a resolve function that maps a raw item to the value returned by reads. Every
// transformation (Select, Slice, Sort, Append, ...) therefore returns the concrete type, never a
// generic base, and resolution happens on each read rather than at construction.
//
// Reads come in pairs: a lenient form returning (value, ok), such as First or Get, and a strict
// form returning (value, error), such as FirstOrFail or GetOrFail. Strict forms fail with an
// *AccessError that wraps one of the package's sentinel errors.
//
// Transformations never modify the receiver. Constructing a collection from another collection
// borrows its backing sequence without copying; this is safe because no operation ever writes
// to a backing sequence in place.
//
// Keyed indexes a sequence by a key function for exact-match lookups. It shares the lenient and
// strict read pairing of collections.
package collection
