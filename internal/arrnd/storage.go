package arrnd

import "sync/atomic"

// Storage is a contiguous element buffer shared by an array and all of its
// views. It counts the views that retained it; the count is safe for
// concurrent use, element access is not synchronized.
//
// The count is bookkeeping only. Array values are copied freely (assignment,
// arguments, nesting) without retaining, so the buffer is never cleared on
// release and the garbage collector reclaims it once no Array refers to it.
type Storage[T any] struct {
	data []T
	refs atomic.Int32
}

// newStorage creates a zeroed buffer of n elements with one reference.
func newStorage[T any](n int) *Storage[T] {
	s := &Storage[T]{
		data: make([]T, n),
	}
	s.refs.Store(1)
	return s
}

// retain increments the reference count (a new view shares the buffer).
func (s *Storage[T]) retain() *Storage[T] {
	s.refs.Add(1)
	return s
}

// release decrements the reference count, never below 0.
func (s *Storage[T]) release() {
	for {
		n := s.refs.Load()
		if n <= 0 || s.refs.CompareAndSwap(n, n-1) {
			return
		}
	}
}

// Refs returns the number of views that retained the buffer and were not released.
func (s *Storage[T]) Refs() int {
	return int(s.refs.Load())
}
