package app

import "sync"

// SafeRef holds a value that many goroutines read and one logical owner
// replaces. Reads (Get) take a shared lock; writes (Set, Swap) are
// serialized behind an exclusive lock.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef creates a SafeRef initialized with the given value.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns a copy of the current value under a read lock.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Set replaces the current value under a write lock.
func (r *SafeRef[T]) Set(val T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val = val
}

// Swap computes the next value from the current one under the write lock.
// The result is stored only when fn returns a nil error. Swap returns the
// value held after the call together with fn's error.
func (r *SafeRef[T]) Swap(fn func(T) (T, error)) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := fn(r.val)
	if err != nil {
		return r.val, err
	}
	r.val = next
	return next, nil
}
