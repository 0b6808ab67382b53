package collection

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by AccessError.
var (
	// ErrEmpty is the cause of a failed read of the first or last item of an empty collection.
	ErrEmpty = errors.New("empty source")

	// ErrNotFound is the cause of a failed read when no item matches a predicate.
	ErrNotFound = errors.New("no matching item")

	// ErrIndexOutOfRange is the cause of a failed access to an index outside [0, Len()-1].
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrKeyNotFound is the cause of a failed lookup of a key that is not indexed.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidJSON is returned when a JSON payload cannot be parsed.
	ErrInvalidJSON = errors.New("invalid JSON")
)

// Op names the operation that failed in an AccessError.
type Op string

const (
	OpFirst  Op = "first"
	OpLast   Op = "last"
	OpFind   Op = "find"
	OpGet    Op = "get"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
	OpLookup Op = "lookup"
)

// An AccessError is returned by every strict accessor when the requested item does not exist.
// Err is one of ErrEmpty, ErrNotFound, ErrIndexOutOfRange, or ErrKeyNotFound.
type AccessError struct {
	// Op is the operation that failed.
	Op Op

	// Index is the requested index, for OpGet, OpUpdate, and OpRemove.
	Index int

	// Key is the requested key, for OpLookup.
	Key any

	Err error
}

// A DuplicateKeyError is returned by NewKeyedUnique when two items map to the same key.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the item that caused the error.
	Element T

	// Key is the key that was already indexed.
	Key K

	// Index is the position of Element in the source.
	Index int
}

func accessError(op Op, err error) *AccessError {
	return &AccessError{
		Op:  op,
		Err: err,
	}
}

func indexError(op Op, index int) *AccessError {
	return &AccessError{
		Op:    op,
		Index: index,
		Err:   ErrIndexOutOfRange,
	}
}

func keyError(key any) *AccessError {
	return &AccessError{
		Op:  OpLookup,
		Key: key,
		Err: ErrKeyNotFound,
	}
}

// Error implements error.
func (e *AccessError) Error() string {
	switch e.Op {
	case OpFirst, OpLast:
		return fmt.Sprintf("collection: unable to get %s item from %v", e.Op, e.Err)
	case OpFind:
		return fmt.Sprintf("collection: unable to find item: %v", e.Err)
	case OpGet, OpUpdate, OpRemove:
		return fmt.Sprintf("collection: unable to %s item by index %d: %v", e.Op, e.Index, e.Err)
	case OpLookup:
		return fmt.Sprintf("collection: unable to get item by key %q: %v", fmt.Sprint(e.Key), e.Err)
	default:
		return fmt.Sprintf("collection: %s: %v", e.Op, e.Err)
	}
}

// Unwrap returns the cause of e.
func (e *AccessError) Unwrap() error {
	return e.Err
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return fmt.Sprintf("collection: duplicate key %v at index %d", e.Key, e.Index)
}
