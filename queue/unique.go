package queue

import (
	"github.com/kdeque/dheap/dheap"
	"github.com/kdeque/dheap/indexed"
	"go.uber.org/zap"
)

// Unique is a one-entry-per-key, updateable priority queue: Enqueue
// rejects a key already present, and Update/Remove/Contains operate by
// element (translated internally to a slot via the indexed provider) in
// O(1) lookup plus O(log n) restore.
type Unique[E, P any, K comparable] struct {
	engine   *dheap.Heap[E, P, *indexed.Provider[E, P, K]]
	provider *indexed.Provider[E, P, K]
	logger   *zap.Logger
}

// NewUnique creates a Unique queue ordered by compare over priorities
// derived from priorityOf, keyed by keyOf. It returns
// dheap.ErrInvalidArgument if keyOf, priorityOf or compare is nil.
func NewUnique[E, P any, K comparable](
	keyOf func(E) K,
	priorityOf func(E) P,
	compare dheap.CompareFunc[P],
	opts ...Option,
) (*Unique[E, P, K], error) {
	provider, err := indexed.New[E, P, K](keyOf, priorityOf, compare)
	if err != nil {
		return nil, err
	}

	cfg := newConfig(opts)
	q := &Unique[E, P, K]{
		engine:   dheap.NewWithCapacity[E, P, *indexed.Provider[E, P, K]](provider, cfg.capacity),
		provider: provider,
		logger:   cfg.logger,
	}
	q.logger.Debug("unique queue created", zap.Int("capacity", cfg.capacity))
	return q, nil
}

// Enqueue inserts e into the queue. It fails with ErrDuplicate if an
// element with the same key is already present.
func (q *Unique[E, P, K]) Enqueue(e E) error {
	if q.provider.Contains(e) {
		q.logger.Debug("enqueue rejected: duplicate key")
		return ErrDuplicate
	}
	q.engine.Add(e)
	return nil
}

// TryEnqueue inserts e and returns true, or returns false without
// modifying the queue if an element with the same key is already present.
func (q *Unique[E, P, K]) TryEnqueue(e E) bool {
	return q.Enqueue(e) == nil
}

// Update replaces the element with e's key in place, restoring the heap
// invariant. It fails with ErrNotPresent if no such element exists.
//
// This always routes through the engine's slot-based Update — never a
// remove-then-re-add — so the operation stays O(log n), the element never
// leaves the index, and the index invariant holds again once Update returns.
func (q *Unique[E, P, K]) Update(e E) error {
	slot, ok := q.provider.PositionOf(e)
	if !ok {
		q.logger.Debug("update rejected: key not present")
		return ErrNotPresent
	}
	return q.engine.Update(slot, e)
}

// TryUpdate updates e and returns true, or returns false without
// modifying the queue if no element with e's key is present.
func (q *Unique[E, P, K]) TryUpdate(e E) bool {
	return q.Update(e) == nil
}

// UpdateOrEnqueue updates the element with e's key if present, or
// enqueues e otherwise. It never fails.
func (q *Unique[E, P, K]) UpdateOrEnqueue(e E) {
	if slot, ok := q.provider.PositionOf(e); ok {
		_ = q.engine.Update(slot, e)
		return
	}
	q.engine.Add(e)
}

// Remove removes the element with e's key. It fails with ErrNotPresent if
// no such element exists.
func (q *Unique[E, P, K]) Remove(e E) error {
	slot, ok := q.provider.PositionOf(e)
	if !ok {
		q.logger.Debug("remove rejected: key not present")
		return ErrNotPresent
	}
	_, err := q.engine.Remove(slot)
	return err
}

// TryRemove removes the element with e's key and returns true, or returns
// false without modifying the queue if no such element exists.
func (q *Unique[E, P, K]) TryRemove(e E) bool {
	return q.Remove(e) == nil
}

// Contains reports whether an element with e's key is present.
func (q *Unique[E, P, K]) Contains(e E) bool {
	return q.provider.Contains(e)
}

// RemoveMin removes and returns the minimum-priority element. Fails with
// ErrEmpty when the queue holds no elements.
func (q *Unique[E, P, K]) RemoveMin() (E, error) {
	return q.engine.RemoveMin()
}

// TryRemoveMin removes and returns the minimum-priority element and true,
// or the zero value and false when the queue is empty.
func (q *Unique[E, P, K]) TryRemoveMin() (E, bool) {
	return q.engine.TryRemoveMin()
}

// Peek returns the minimum-priority element without removing it. Fails
// with ErrEmpty when the queue holds no elements.
func (q *Unique[E, P, K]) Peek() (E, error) {
	return q.engine.PeekMin()
}

// TryPeek returns the minimum-priority element and true, or the zero value
// and false when the queue is empty.
func (q *Unique[E, P, K]) TryPeek() (E, bool) {
	return q.engine.TryPeekMin()
}

// Count returns the number of elements currently in the queue.
func (q *Unique[E, P, K]) Count() int {
	return q.engine.Count()
}

// Clear removes every element from the queue.
func (q *Unique[E, P, K]) Clear() {
	q.engine.Clear()
	q.logger.Debug("unique queue cleared")
}

// Enumerate returns an enumerator over the queue's elements in heap order
// (not priority order). It fails mid-walk with dheap.ErrModified if the
// queue is mutated during enumeration.
func (q *Unique[E, P, K]) Enumerate() *dheap.Enumerator[E, P, *indexed.Provider[E, P, K]] {
	return q.engine.Enumerate()
}
