package collection

import "golang.org/x/exp/slices"

// Skip returns a collection of the same items, in order, skipping the first num items.
// A negative num keeps only the last -num items.
func (c Collection[S, T, R]) Skip(num int) S {
	return c.Slice(num)
}

// Take returns a collection of the first num items, in order.
// A negative num drops the last -num items.
func (c Collection[S, T, R]) Take(num int) S {
	return c.Slice(0, num)
}

// Slice returns a collection of the items from index start up to, but not including, index end.
// If end is omitted, it defaults to Len(). Negative indexes count back from the end, and
// indexes outside the collection are clamped to its bounds.
func (c Collection[S, T, R]) Slice(start int, end ...int) S {
	n := c.Len()

	lo := clamp(start, n)

	hi := n
	if len(end) > 0 {
		hi = clamp(end[0], n)
	}

	if hi < lo {
		hi = lo
	}

	return c.rebuild(c.items.elems[lo:hi])
}

// Select returns a collection of the raw items for which pred returns true, in order.
func (c Collection[S, T, R]) Select(pred PredicateFunc[T]) S {
	out := make([]T, 0, c.Len())
	for _, item := range c.items.elems {
		if pred(item) {
			out = append(out, item)
		}
	}

	return c.rebuild(out)
}

// Sort returns a collection of the same items, sorted using less.
// The sort is stable.
func (c Collection[S, T, R]) Sort(less LessFunc[T]) S {
	out := slices.Clone(c.items.elems)

	slices.SortStableFunc(out, less)

	return c.rebuild(out)
}

// Reverse returns a collection of the same items, in reverse order.
func (c Collection[S, T, R]) Reverse() S {
	n := c.Len()

	out := make([]T, n)
	for i, item := range c.items.elems {
		out[n-1-i] = item
	}

	return c.rebuild(out)
}

// Concat returns a collection of the items followed by the raw items of other, in order.
func (c Collection[S, T, R]) Concat(other Source[T]) S {
	return c.subset(Join[T](c.items, other))
}

// Prepend returns a collection of item followed by the items.
func (c Collection[S, T, R]) Prepend(item T) S {
	return c.rebuild(slices.Insert(slices.Clone(c.items.elems), 0, item))
}

// Append returns a collection of the items followed by item.
func (c Collection[S, T, R]) Append(item T) S {
	return c.rebuild(slices.Insert(slices.Clone(c.items.elems), c.Len(), item))
}

// Update returns a collection of the items with the item at index replaced by item.
// If index is out of range, the returned collection holds the same items.
func (c Collection[S, T, R]) Update(index int, item T) S {
	out, _ := c.UpdateOrFail(index, item)
	return out
}

// UpdateOrFail returns a collection of the items with the item at index replaced by item,
// or an *AccessError wrapping ErrIndexOutOfRange.
// On error, the returned collection holds the same items.
func (c Collection[S, T, R]) UpdateOrFail(index int, item T) (S, error) {
	if !c.inRange(index) {
		return c.subset(c.items), indexError(OpUpdate, index)
	}

	out := slices.Clone(c.items.elems)
	out[index] = item

	return c.rebuild(out), nil
}

// Remove returns a collection of the items without the item at index.
// If index is out of range, the returned collection holds the same items.
func (c Collection[S, T, R]) Remove(index int) S {
	out, _ := c.RemoveOrFail(index)
	return out
}

// RemoveOrFail returns a collection of the items without the item at index,
// or an *AccessError wrapping ErrIndexOutOfRange.
// On error, the returned collection holds the same items.
func (c Collection[S, T, R]) RemoveOrFail(index int) (S, error) {
	if !c.inRange(index) {
		return c.subset(c.items), indexError(OpRemove, index)
	}

	out := make([]T, 0, c.Len()-1)
	out = append(out, c.items.elems[:index]...)
	out = append(out, c.items.elems[index+1:]...)

	return c.rebuild(out), nil
}

func (c Collection[S, T, R]) inRange(index int) bool {
	return index >= 0 && index < c.Len()
}

// clamp maps a possibly negative slice bound onto [0, n].
func clamp(index int, n int) int {
	if index < 0 {
		index += n
		if index < 0 {
			return 0
		}
	}

	if index > n {
		return n
	}

	return index
}
