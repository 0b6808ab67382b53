package collection

import "golang.org/x/exp/slices"

// Items is a read-only ordered sequence of raw items.
// The zero value is an empty sequence.
type Items[T any] struct {
	elems []T
}

// Source is implemented by anything that can lend its raw items to a new collection or lookup.
// Items, every collection, and Keyed implement Source.
type Source[T any] interface {
	// Items returns the backing sequence. Implementations return it without copying.
	Items() Items[T]
}

// Of returns a sequence of the given elements, in order.
func Of[T any](elems ...T) Items[T] {
	return FromSlice(elems)
}

// FromSlice returns a sequence of the elements of elems, in order.
// The slice is copied, changes to elems are not reflected in the sequence.
func FromSlice[T any](elems []T) Items[T] {
	return Items[T]{
		elems: slices.Clone(elems),
	}
}

// Join returns a sequence of the raw items of the given sources, in order.
func Join[T any](sources ...Source[T]) Items[T] {
	n := 0
	for _, src := range sources {
		n += src.Items().Len()
	}

	elems := make([]T, 0, n)
	for _, src := range sources {
		elems = append(elems, src.Items().elems...)
	}

	return Items[T]{
		elems: elems,
	}
}

// Items implements Source.
func (s Items[T]) Items() Items[T] {
	return s
}

// Len returns the number of items in s.
func (s Items[T]) Len() int {
	return len(s.elems)
}

// Slice returns a copy of the items in s.
func (s Items[T]) Slice() []T {
	return slices.Clone(s.elems)
}

// wrap returns a sequence backed by elems.
// elems must not be written to afterwards. Its capacity is clipped so that appending to it
// always reallocates.
func wrap[T any](elems []T) Items[T] {
	return Items[T]{
		elems: elems[:len(elems):len(elems)],
	}
}
