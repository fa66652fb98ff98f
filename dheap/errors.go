package dheap

import "errors"

// ErrEmpty is returned by PeekMin/RemoveMin when the heap holds no elements.
var ErrEmpty = errors.New("dheap: heap is empty")

// ErrOutOfRange is returned by Peek, Remove and Update when slot is outside
// [0, Count()).
var ErrOutOfRange = errors.New("dheap: slot out of range")

// ErrModified is returned by an Enumerator when the heap was mutated since
// the enumerator was created.
var ErrModified = errors.New("dheap: heap modified during enumeration")

// ErrInvalidArgument is returned by constructors given a nil comparator or
// priority selector.
var ErrInvalidArgument = errors.New("dheap: invalid argument")
