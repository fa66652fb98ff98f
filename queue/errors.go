package queue

import (
	"errors"

	"github.com/kdeque/dheap/dheap"
)

// ErrDuplicate is returned by Enqueue on a Unique queue when an element
// with the same key is already present.
var ErrDuplicate = errors.New("queue: element already present")

// ErrNotPresent is returned by Update and Remove on a Unique queue when no
// element with the given key is present.
var ErrNotPresent = errors.New("queue: element not present")

// ErrEmpty is returned by RemoveMin/Peek when the queue holds no elements.
// It is the same sentinel the underlying engine returns.
var ErrEmpty = dheap.ErrEmpty
