package collection

// PredicateFunc returns true if raw item matches a predicate.
type PredicateFunc[T any] func(item T) bool

// LessFunc returns true if raw item a is "less" than raw item b.
type LessFunc[T any] func(a T, b T) bool

// AccumulatorFunc folds raw item into the accumulator acc, returning acc, or a new accumulator.
type AccumulatorFunc[T any, A any] func(acc A, item T) A

// MapperFunc maps resolved item to type U.
// The index is the 0-based position of item in the collection.
type MapperFunc[R any, U any] func(item R, index int) U

// Collection is an immutable ordered sequence of raw items of type T whose reads return
// resolved items of type R. S is the concrete type embedding Collection; every transformation
// returns an S built by the concrete type's own constructor.
//
// A concrete collection type is declared by embedding Collection:
//
//	type Options struct {
//		collection.Collection[*Options, RawOption, *Option]
//	}
//
//	func NewOptions(src collection.Source[RawOption]) *Options {
//		return &Options{collection.New(src, NewOptions, NewOption)}
//	}
//
// The zero value has no constructor and must not be used; build collections with New.
type Collection[S any, T any, R any] struct {
	items   Items[T]
	subset  func(Source[T]) S
	resolve func(T) R
}

// Resolved is implemented by collections whose reads produce items of type R.
type Resolved[R any] interface {
	// ToSlice returns every item, resolved, in order.
	ToSlice() []R
}

// New returns a Collection over the raw items of source.
// If source is another collection, its backing sequence is shared, not copied.
// subset must return the concrete collection type for a new source, resolve maps a raw item
// to its resolved form and is called on every read.
func New[S any, T any, R any](source Source[T], subset func(Source[T]) S, resolve func(T) R) Collection[S, T, R] {
	var items Items[T]
	if source != nil {
		items = source.Items()
	}

	return Collection[S, T, R]{
		items:   items,
		subset:  subset,
		resolve: resolve,
	}
}

// Identity returns item unchanged.
func Identity[T any](item T) T {
	return item
}

// Items implements Source.
func (c Collection[S, T, R]) Items() Items[T] {
	return c.items
}

// Len returns the number of items.
func (c Collection[S, T, R]) Len() int {
	return len(c.items.elems)
}

// IsEmpty returns true if there are no items.
func (c Collection[S, T, R]) IsEmpty() bool {
	return c.Len() == 0
}

// IsNotEmpty returns true if there is at least one item.
func (c Collection[S, T, R]) IsNotEmpty() bool {
	return c.Len() > 0
}

// HasMany returns true if there is more than one item.
func (c Collection[S, T, R]) HasMany() bool {
	return c.Len() > 1
}

// Raw returns a copy of the raw items, in order.
func (c Collection[S, T, R]) Raw() []T {
	return c.items.Slice()
}

// ToSlice returns every item, resolved, in order.
func (c Collection[S, T, R]) ToSlice() []R {
	out := make([]R, len(c.items.elems))
	for i, item := range c.items.elems {
		out[i] = c.resolve(item)
	}

	return out
}

// ToCollection returns a Plain collection of every item, resolved.
func (c Collection[S, T, R]) ToCollection() *Plain[R] {
	return NewPlain[R](wrap(c.ToSlice()))
}

// Each calls each for every item, resolved, in order.
func (c Collection[S, T, R]) Each(each func(item R, index int)) {
	for i, item := range c.items.elems {
		each(c.resolve(item), i)
	}
}

// rebuild returns the concrete collection over elems.
func (c Collection[S, T, R]) rebuild(elems []T) S {
	return c.subset(wrap(elems))
}

// Map resolves every item of c and calls mapp for each, returning the results in order.
func Map[R any, U any](c Resolved[R], mapp MapperFunc[R, U]) []U {
	items := c.ToSlice()

	out := make([]U, len(items))
	for i, item := range items {
		out[i] = mapp(item, i)
	}

	return out
}

// Reduce calls reduce for each raw item of c, in order, folding it into accumulator acc,
// and returns the final accumulator.
func Reduce[T any, A any](c Source[T], acc A, reduce AccumulatorFunc[T, A]) A {
	for _, item := range c.Items().elems {
		acc = reduce(acc, item)
	}

	return acc
}
