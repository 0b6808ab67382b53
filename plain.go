package collection

// Plain is a collection whose reads return raw items unchanged.
type Plain[T any] struct {
	Collection[*Plain[T], T, T]
}

// NewPlain returns a Plain collection over the raw items of source.
func NewPlain[T any](source Source[T]) *Plain[T] {
	return &Plain[T]{
		Collection: New(source, NewPlain[T], Identity[T]),
	}
}

// PlainOf returns a Plain collection of the given elements, in order.
func PlainOf[T any](elems ...T) *Plain[T] {
	return NewPlain[T](FromSlice(elems))
}
