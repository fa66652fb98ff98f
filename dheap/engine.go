package dheap

import "go.uber.org/atomic"

// Arity is the number of children per node, d in "d-ary heap". Tuned here
// as a named constant rather than derived, per the design note that an
// implementer may want to re-tune it for a different platform: shallower
// trees cost more comparisons per level but reduce sift-down depth.
const Arity = 4

// minCapacity is the smallest backing buffer New allocates, avoiding a
// resize on every one of the first few Add calls.
const minCapacity = 8

// Heap is a generic, array-backed, d-ary min-heap. E is the element type,
// P is the priority type, and Prov is the caller's Provider implementation,
// carried as a type parameter (not a boxed interface field) so every call
// into it monomorphizes instead of going through virtual dispatch.
//
// The zero value is not usable; construct with New, NewWithCapacity or
// NewFromSlice.
type Heap[E, P any, Prov Provider[E, P]] struct {
	items    []E
	count    int
	provider Prov
	version  atomic.Uint64

	// suppressMoved is set for the duration of the bulk-heapify walk in
	// NewFromSlice, so intermediate sift-downs don't fire O(n log n)
	// Moved callbacks; the walk finishes with one Moved per element.
	suppressMoved bool
}

// New creates an empty heap using provider for ordering and notifications.
func New[E, P any, Prov Provider[E, P]](provider Prov) *Heap[E, P, Prov] {
	return NewWithCapacity[E, P, Prov](provider, 0)
}

// NewWithCapacity creates an empty heap pre-sized to hold capacity elements
// without reallocating its backing buffer.
func NewWithCapacity[E, P any, Prov Provider[E, P]](provider Prov, capacity int) *Heap[E, P, Prov] {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	return &Heap[E, P, Prov]{
		items:    make([]E, capacity),
		provider: provider,
	}
}

// NewFromSlice builds a heap from items in O(n) using Floyd's bulk-heapify
// walk, instead of O(n log n) one-at-a-time Add calls. items is copied; the
// caller's slice is never retained or mutated.
func NewFromSlice[E, P any, Prov Provider[E, P]](provider Prov, items []E) *Heap[E, P, Prov] {
	h := NewWithCapacity[E, P, Prov](provider, len(items))
	h.count = copy(h.items, items)
	h.heapify()
	h.version.Inc()
	return h
}

// Count returns the number of elements currently in the heap.
func (h *Heap[E, P, Prov]) Count() int { return h.count }

// currentVersion reports the current modification version, for Enumerator.
func (h *Heap[E, P, Prov]) currentVersion() uint64 { return h.version.Load() }

func (h *Heap[E, P, Prov]) compare(a, b E) int {
	return h.provider.Compare(h.provider.GetPriority(a), h.provider.GetPriority(b))
}

func (h *Heap[E, P, Prov]) emitMoved(e E, slot int) {
	if !h.suppressMoved {
		h.provider.Moved(e, slot)
	}
}

func parentOf(slot int) int     { return (slot - 1) / Arity }
func firstChildOf(slot int) int { return slot*Arity + 1 }

// siftUp floats e up from slot until it no longer outranks its parent (or
// slot 0 is reached), then writes e at its resting slot and emits Moved for
// it — unconditionally, even when no displacement happened, so every Add
// and every Update fires at least one Moved callback for its element. Each
// displaced parent along the way gets its own Moved call at its new slot.
// Returns e's final resting slot.
func (h *Heap[E, P, Prov]) siftUp(slot int, e E) int {
	for slot > 0 {
		parentSlot := parentOf(slot)
		parent := h.items[parentSlot]
		if h.compare(e, parent) >= 0 {
			break
		}
		h.items[slot] = parent
		h.emitMoved(parent, slot)
		slot = parentSlot
	}
	h.items[slot] = e
	h.emitMoved(e, slot)
	return slot
}

// siftDown floats e down from slot, at each level picking the child with
// minimum priority (lowest slot index wins ties) among up to Arity
// children, descending while that child outranks e. Writes e at its
// resting slot and emits Moved for it unconditionally. Returns e's final
// resting slot.
func (h *Heap[E, P, Prov]) siftDown(slot int, e E) int {
	for {
		first := firstChildOf(slot)
		if first >= h.count {
			break
		}
		last := first + Arity
		if last > h.count {
			last = h.count
		}
		best := first
		for c := first + 1; c < last; c++ {
			if h.compare(h.items[c], h.items[best]) < 0 {
				best = c
			}
		}
		if h.compare(h.items[best], e) >= 0 {
			break
		}
		h.items[slot] = h.items[best]
		h.emitMoved(h.items[slot], slot)
		slot = best
	}
	h.items[slot] = e
	h.emitMoved(e, slot)
	return slot
}

// restore installs e at slot via a two-phase try-up-then-down walk: at
// most one of the two directions can do any work, since e can't
// simultaneously outrank its parent and be outranked by a child. This is
// the path both Update and interior Remove use: a sift-down-only interior
// removal is not safe in general, since the hole's replacement (the
// former tail) can have a priority smaller than the hole's former parent.
func (h *Heap[E, P, Prov]) restore(slot int, e E) {
	if final := h.siftUp(slot, e); final != slot {
		return
	}
	h.siftDown(slot, e)
}

func (h *Heap[E, P, Prov]) ensureCapacity(n int) {
	if n <= len(h.items) {
		return
	}
	newCap := len(h.items) * 2
	if newCap < n {
		newCap = n
	}
	if newCap < minCapacity {
		newCap = minCapacity
	}
	grown := make([]E, newCap)
	copy(grown, h.items[:h.count])
	h.items = grown
}

// Add inserts e into the heap and restores the heap invariant.
func (h *Heap[E, P, Prov]) Add(e E) {
	h.ensureCapacity(h.count + 1)
	slot := h.count
	h.count++
	h.siftUp(slot, e)
	h.version.Inc()
}

// PeekMin returns the minimum-priority element without removing it. It
// fails with ErrEmpty when the heap holds no elements.
func (h *Heap[E, P, Prov]) PeekMin() (E, error) {
	if h.count == 0 {
		var zero E
		return zero, ErrEmpty
	}
	return h.items[0], nil
}

// TryPeekMin returns the minimum-priority element and true, or the zero
// value and false when the heap is empty. It never errors.
func (h *Heap[E, P, Prov]) TryPeekMin() (E, bool) {
	if h.count == 0 {
		var zero E
		return zero, false
	}
	return h.items[0], true
}

// Peek returns the element at slot, with no ordering implied beyond "it is
// somewhere in the heap". Fails with ErrOutOfRange outside [0, Count()).
func (h *Heap[E, P, Prov]) Peek(slot int) (E, error) {
	if slot < 0 || slot >= h.count {
		var zero E
		return zero, ErrOutOfRange
	}
	return h.items[slot], nil
}

// RemoveMin removes and returns the minimum-priority element. Fails with
// ErrEmpty when the heap holds no elements.
func (h *Heap[E, P, Prov]) RemoveMin() (E, error) {
	if h.count == 0 {
		var zero E
		return zero, ErrEmpty
	}
	return h.removeAt(0), nil
}

// TryRemoveMin removes and returns the minimum-priority element and true,
// or the zero value and false when the heap is empty. It never errors.
func (h *Heap[E, P, Prov]) TryRemoveMin() (E, bool) {
	if h.count == 0 {
		var zero E
		return zero, false
	}
	return h.removeAt(0), true
}

// Remove removes and returns the element at slot, restoring the heap
// invariant for the remaining elements. Fails with ErrOutOfRange outside
// [0, Count()).
func (h *Heap[E, P, Prov]) Remove(slot int) (E, error) {
	if slot < 0 || slot >= h.count {
		var zero E
		return zero, ErrOutOfRange
	}
	return h.removeAt(slot), nil
}

// removeAt assumes slot is already validated.
func (h *Heap[E, P, Prov]) removeAt(slot int) E {
	victim := h.items[slot]
	h.provider.Removed(victim, slot)
	h.count--

	if slot < h.count {
		tail := h.items[h.count]
		h.clearSlot(h.count)
		h.restore(slot, tail)
	} else {
		h.clearSlot(slot)
	}

	h.version.Inc()
	return victim
}

// Update installs e at slot and restores the heap invariant, choosing
// whichever of sift-up or sift-down is needed. Fails with ErrOutOfRange
// outside [0, Count()).
func (h *Heap[E, P, Prov]) Update(slot int, e E) error {
	if slot < 0 || slot >= h.count {
		return ErrOutOfRange
	}
	h.restore(slot, e)
	h.version.Inc()
	return nil
}

// Clear removes every element from the heap. The provider observes a
// single Cleared call, not one Removed per element.
func (h *Heap[E, P, Prov]) Clear() {
	clear(h.items[:h.count])
	h.count = 0
	h.provider.Cleared()
	h.version.Inc()
}

func (h *Heap[E, P, Prov]) clearSlot(slot int) {
	var zero E
	h.items[slot] = zero
}

// heapify restores the heap invariant over h.items[:h.count] in place via
// Floyd's algorithm, suppressing intermediate Moved callbacks and firing
// exactly one Moved per element once every slot is final.
func (h *Heap[E, P, Prov]) heapify() {
	if h.count == 0 {
		return
	}
	if h.count > 1 {
		h.suppressMoved = true
		for slot := parentOf(h.count - 1); slot >= 0; slot-- {
			h.siftDown(slot, h.items[slot])
		}
		h.suppressMoved = false
	}
	for slot := 0; slot < h.count; slot++ {
		h.provider.Moved(h.items[slot], slot)
	}
}
