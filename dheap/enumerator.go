package dheap

// Enumerator walks a Heap's backing array in slot order (0 … Count()-1),
// which is heap order, not priority order. It snapshots the heap's
// modification version at creation; any mutation of the heap between
// creation and a call to Next invalidates the walk.
//
// Usage mirrors bufio.Scanner / sql.Rows:
//
//	it := h.Enumerate()
//	for it.Next() {
//		use(it.Current())
//	}
//	if err := it.Err(); err != nil {
//		// ErrModified: the heap changed underneath the enumerator
//	}
type Enumerator[E, P any, Prov Provider[E, P]] struct {
	heap            *Heap[E, P, Prov]
	snapshotVersion uint64
	index           int
	current         E
	err             error
}

// Enumerate creates an Enumerator snapshotting the heap's current version.
func (h *Heap[E, P, Prov]) Enumerate() *Enumerator[E, P, Prov] {
	return &Enumerator[E, P, Prov]{
		heap:            h,
		snapshotVersion: h.currentVersion(),
	}
}

// Next advances the enumerator and reports whether a new element is
// available via Current. It returns false both at the end of the heap and
// after a modification is detected; call Err to distinguish the two.
func (it *Enumerator[E, P, Prov]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.heap.currentVersion() != it.snapshotVersion {
		it.err = ErrModified
		return false
	}
	if it.index >= it.heap.Count() {
		return false
	}
	it.current = it.heap.items[it.index]
	it.index++
	return true
}

// Current returns the element produced by the most recent call to Next.
func (it *Enumerator[E, P, Prov]) Current() E { return it.current }

// Err returns ErrModified if the heap was mutated during enumeration, or
// nil if the walk ran to completion.
func (it *Enumerator[E, P, Prov]) Err() error { return it.err }
