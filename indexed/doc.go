// Package indexed provides the stock dheap.Provider implementation: one
// that maintains an element→slot map so callers can translate
// element-keyed operations (remove this element, update this element's
// priority) into the engine's slot-keyed Remove/Update in O(1) lookup plus
// O(log n) restore.
//
// Element identity is defined by a caller-supplied key extractor rather
// than direct comparable-element equality, mirroring
// PCfVW/d-Heap-priority-queue's KeyExtractor[T, K] — this lets the key be
// a stable field of a larger, possibly non-comparable element (e.g. a
// struct with a slice field), as long as the key itself is comparable.
package indexed
