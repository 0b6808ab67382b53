package collection

import "golang.org/x/exp/maps"

// KeyFunc returns the lookup key of raw item.
type KeyFunc[T any, K comparable] func(item T) K

// Keyed is an immutable exact-match lookup over an ordered sequence of items.
// The index is built once, at construction.
type Keyed[K comparable, T any] struct {
	items Items[T]
	index map[K]T
}

// NewKeyed returns a lookup over the raw items of source, indexed by key.
// If source is another lookup or collection, its backing sequence is shared, not copied.
// If several items map to the same key, the last one in order is indexed.
func NewKeyed[K comparable, T any](source Source[T], key KeyFunc[T, K]) *Keyed[K, T] {
	items := source.Items()

	index := make(map[K]T, items.Len())
	for _, item := range items.elems {
		index[key(item)] = item
	}

	return &Keyed[K, T]{
		items: items,
		index: index,
	}
}

// NewKeyedUnique returns a lookup over the raw items of source, indexed by key.
// If several items map to the same key, it returns a *DuplicateKeyError for the first repeated key.
func NewKeyedUnique[K comparable, T any](source Source[T], key KeyFunc[T, K]) (*Keyed[K, T], error) {
	items := source.Items()

	index := make(map[K]T, items.Len())
	for i, item := range items.elems {
		k := key(item)

		if _, ok := index[k]; ok {
			return nil, &DuplicateKeyError[T, K]{
				Element: item,
				Key:     k,
				Index:   i,
			}
		}

		index[k] = item
	}

	return &Keyed[K, T]{
		items: items,
		index: index,
	}, nil
}

// Items implements Source.
func (l *Keyed[K, T]) Items() Items[T] {
	return l.items
}

// Get returns the item indexed by key.
// It returns false if no item is indexed by key.
func (l *Keyed[K, T]) Get(key K) (T, bool) {
	item, ok := l.index[key]
	return item, ok
}

// GetOrFail returns the item indexed by key, or an *AccessError wrapping ErrKeyNotFound.
func (l *Keyed[K, T]) GetOrFail(key K) (T, error) {
	item, ok := l.Get(key)
	if !ok {
		return item, keyError(key)
	}

	return item, nil
}

// Has returns true if an item is indexed by key.
func (l *Keyed[K, T]) Has(key K) bool {
	_, ok := l.index[key]
	return ok
}

// Len returns the number of distinct keys.
func (l *Keyed[K, T]) Len() int {
	return len(l.index)
}

// Keys returns the indexed keys, in unspecified order.
func (l *Keyed[K, T]) Keys() []K {
	return maps.Keys(l.index)
}
