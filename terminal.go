package collection

import "golang.org/x/exp/slices"

// First returns the first item, resolved.
// It returns false if the collection is empty.
func (c Collection[S, T, R]) First() (R, bool) {
	return c.Get(0)
}

// FirstOrFail returns the first item, resolved, or an *AccessError wrapping ErrEmpty.
func (c Collection[S, T, R]) FirstOrFail() (R, error) {
	item, ok := c.First()
	if !ok {
		return item, accessError(OpFirst, ErrEmpty)
	}

	return item, nil
}

// Last returns the last item, resolved.
// It returns false if the collection is empty.
func (c Collection[S, T, R]) Last() (R, bool) {
	return c.Get(c.Len() - 1)
}

// LastOrFail returns the last item, resolved, or an *AccessError wrapping ErrEmpty.
func (c Collection[S, T, R]) LastOrFail() (R, error) {
	item, ok := c.Last()
	if !ok {
		return item, accessError(OpLast, ErrEmpty)
	}

	return item, nil
}

// Find returns the first raw item for which pred returns true, resolved.
// It returns false if no item matches.
func (c Collection[S, T, R]) Find(pred PredicateFunc[T]) (R, bool) {
	return c.Get(c.FindIndex(pred))
}

// FindOrFail returns the first raw item for which pred returns true, resolved,
// or an *AccessError wrapping ErrNotFound.
func (c Collection[S, T, R]) FindOrFail(pred PredicateFunc[T]) (R, error) {
	item, ok := c.Find(pred)
	if !ok {
		return item, accessError(OpFind, ErrNotFound)
	}

	return item, nil
}

// Get returns the item at index, resolved.
// It returns false if index is out of range.
func (c Collection[S, T, R]) Get(index int) (R, bool) {
	if index < 0 || index >= c.Len() {
		var zero R
		return zero, false
	}

	return c.resolve(c.items.elems[index]), true
}

// GetOrFail returns the item at index, resolved, or an *AccessError wrapping ErrIndexOutOfRange.
func (c Collection[S, T, R]) GetOrFail(index int) (R, error) {
	item, ok := c.Get(index)
	if !ok {
		return item, indexError(OpGet, index)
	}

	return item, nil
}

// FindIndex returns the index of the first raw item for which pred returns true, or -1.
func (c Collection[S, T, R]) FindIndex(pred PredicateFunc[T]) int {
	return slices.IndexFunc(c.items.elems, pred)
}

// AnyMatch returns true if pred returns true for any raw item, that is, any item matches.
func (c Collection[S, T, R]) AnyMatch(pred PredicateFunc[T]) bool {
	return c.FindIndex(pred) >= 0
}

// AllMatch returns true if pred returns true for all raw items, that is, all items match.
// It returns true for an empty collection.
func (c Collection[S, T, R]) AllMatch(pred PredicateFunc[T]) bool {
	return c.FindIndex(func(item T) bool {
		return !pred(item)
	}) < 0
}
