// Package dheap provides a generic, indexed, updateable d-ary min-heap.
//
// A d-ary heap is a tree structure where:
//   - Each node has at most d children (d = 4 here)
//   - The root holds the element with minimum priority
//   - Every parent's priority is less than or equal to each child's
//   - The tree is complete (filled left-to-right, level by level)
//
// The heap never inspects element or priority identity directly: priority
// comparison and priority derivation are supplied by a caller-implemented
// Provider, which also receives Moved/Removed/Cleared notifications for
// every positional change. This is what lets Remove and Update operate on
// an arbitrary interior slot in O(log n): the caller's own index (see the
// indexed package) stays consistent without the engine knowing it exists.
//
// # Basic usage
//
//	type noopProvider struct{}
//
//	func (noopProvider) Compare(a, b int) int   { return a - b }
//	func (noopProvider) GetPriority(e int) int  { return e }
//	func (noopProvider) Moved(int, int)         {}
//	func (noopProvider) Removed(int, int)       {}
//	func (noopProvider) Cleared()               {}
//
//	h := dheap.New[int, int](noopProvider{})
//	h.Add(5)
//	h.Add(3)
//	min, _ := h.PeekMin() // 3
//
// Most callers will not implement Provider by hand; see the indexed and
// queue packages for ready-made providers and façades.
package dheap
