package queue

import "github.com/kdeque/dheap/dheap"

// plainProvider is the no-index dheap.Provider backing Simple: it
// delegates ordering to the caller's comparator and priority selector, and
// ignores every positional notification, since Simple never needs to
// translate an element back into a slot.
type plainProvider[E, P any] struct {
	compare    dheap.CompareFunc[P]
	priorityOf func(E) P
}

func (p *plainProvider[E, P]) Compare(a, b P) int { return p.compare(a, b) }
func (p *plainProvider[E, P]) GetPriority(e E) P  { return p.priorityOf(e) }
func (p *plainProvider[E, P]) Moved(E, int)       {}
func (p *plainProvider[E, P]) Removed(E, int)     {}
func (p *plainProvider[E, P]) Cleared()           {}
