// Package queue composes the dheap engine with a Provider into two
// ready-to-use priority queues, translating element-keyed calls into the
// engine's slot-keyed operations:
//
//   - Simple: duplicates permitted, no per-element lookup.
//   - Unique: one entry per element (by key), supporting Update, Remove
//     and UpdateOrEnqueue by element instead of by slot.
//
// Both accept functional Options (WithCapacity, WithLogger) at
// construction.
package queue
