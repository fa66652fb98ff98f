package indexed

import "github.com/kdeque/dheap/dheap"

// Provider is the indexed dheap.Provider: it delegates priority comparison
// and derivation to caller-supplied functions, and maintains index as a
// side effect of every Moved/Removed/Cleared notification the engine sends
// it. Construct with New; the zero value is not usable (keyOf is nil).
//
// Index invariant: for every (e, s) such that keyOf(e) maps to s in index,
// the heap holds e at slot s, and len(index) equals the heap's Count().
// That invariant is exactly what lets Contains and PositionOf run in O(1).
type Provider[E, P any, K comparable] struct {
	keyOf      func(E) K
	priorityOf func(E) P
	compare    dheap.CompareFunc[P]
	index      map[K]int
}

// New builds an indexed Provider. It returns dheap.ErrInvalidArgument if
// keyOf, priorityOf or compare is nil.
func New[E, P any, K comparable](
	keyOf func(E) K,
	priorityOf func(E) P,
	compare dheap.CompareFunc[P],
) (*Provider[E, P, K], error) {
	if keyOf == nil || priorityOf == nil || compare == nil {
		return nil, dheap.ErrInvalidArgument
	}
	return &Provider[E, P, K]{
		keyOf:      keyOf,
		priorityOf: priorityOf,
		compare:    compare,
		index:      make(map[K]int),
	}, nil
}

// Compare implements dheap.Provider.
func (p *Provider[E, P, K]) Compare(a, b P) int { return p.compare(a, b) }

// GetPriority implements dheap.Provider.
func (p *Provider[E, P, K]) GetPriority(e E) P { return p.priorityOf(e) }

// Moved implements dheap.Provider by upserting e's slot in the index.
func (p *Provider[E, P, K]) Moved(e E, slot int) { p.index[p.keyOf(e)] = slot }

// Removed implements dheap.Provider by deleting e from the index.
func (p *Provider[E, P, K]) Removed(e E, _ int) { delete(p.index, p.keyOf(e)) }

// Cleared implements dheap.Provider by discarding the whole index.
func (p *Provider[E, P, K]) Cleared() { p.index = make(map[K]int) }

// Contains reports whether an element with e's key is currently indexed.
func (p *Provider[E, P, K]) Contains(e E) bool {
	_, ok := p.index[p.keyOf(e)]
	return ok
}

// PositionOf returns the slot an element with e's key currently occupies.
func (p *Provider[E, P, K]) PositionOf(e E) (int, bool) {
	slot, ok := p.index[p.keyOf(e)]
	return slot, ok
}

// PositionOfKey returns the slot the element with key k currently
// occupies.
func (p *Provider[E, P, K]) PositionOfKey(k K) (int, bool) {
	slot, ok := p.index[k]
	return slot, ok
}

// Len returns the number of indexed elements. Equal to the owning heap's
// Count() whenever the index invariant holds.
func (p *Provider[E, P, K]) Len() int { return len(p.index) }
