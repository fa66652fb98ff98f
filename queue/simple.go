package queue

import (
	"github.com/kdeque/dheap/dheap"
	"go.uber.org/zap"
)

// Simple is a duplicate-tolerant priority queue: any number of elements
// comparing equal, or even identical, may be enqueued at once.
type Simple[E, P any] struct {
	engine *dheap.Heap[E, P, *plainProvider[E, P]]
	logger *zap.Logger
}

// NewSimple creates a Simple queue ordered by compare over priorities
// derived from priorityOf. It panics if compare or priorityOf is nil: a
// queue with no way to order its elements is a construction bug, not a
// recoverable runtime condition.
func NewSimple[E, P any](compare dheap.CompareFunc[P], priorityOf func(E) P, opts ...Option) *Simple[E, P] {
	if compare == nil {
		panic("queue: nil comparator")
	}
	if priorityOf == nil {
		panic("queue: nil priority selector")
	}

	cfg := newConfig(opts)
	provider := &plainProvider[E, P]{compare: compare, priorityOf: priorityOf}

	q := &Simple[E, P]{
		engine: dheap.NewWithCapacity[E, P, *plainProvider[E, P]](provider, cfg.capacity),
		logger: cfg.logger,
	}
	q.logger.Debug("simple queue created", zap.Int("capacity", cfg.capacity))
	return q
}

// Enqueue inserts e into the queue. It never fails.
func (q *Simple[E, P]) Enqueue(e E) {
	q.engine.Add(e)
}

// RemoveMin removes and returns the minimum-priority element. Fails with
// ErrEmpty when the queue holds no elements.
func (q *Simple[E, P]) RemoveMin() (E, error) {
	return q.engine.RemoveMin()
}

// TryRemoveMin removes and returns the minimum-priority element and true,
// or the zero value and false when the queue is empty.
func (q *Simple[E, P]) TryRemoveMin() (E, bool) {
	return q.engine.TryRemoveMin()
}

// Peek returns the minimum-priority element without removing it. Fails
// with ErrEmpty when the queue holds no elements.
func (q *Simple[E, P]) Peek() (E, error) {
	return q.engine.PeekMin()
}

// TryPeek returns the minimum-priority element and true, or the zero value
// and false when the queue is empty.
func (q *Simple[E, P]) TryPeek() (E, bool) {
	return q.engine.TryPeekMin()
}

// Count returns the number of elements currently in the queue.
func (q *Simple[E, P]) Count() int {
	return q.engine.Count()
}

// Clear removes every element from the queue.
func (q *Simple[E, P]) Clear() {
	q.engine.Clear()
	q.logger.Debug("simple queue cleared")
}

// Enumerate returns an enumerator over the queue's elements in heap order
// (not priority order). It fails mid-walk with dheap.ErrModified if the
// queue is mutated during enumeration.
func (q *Simple[E, P]) Enumerate() *dheap.Enumerator[E, P, *plainProvider[E, P]] {
	return q.engine.Enumerate()
}
