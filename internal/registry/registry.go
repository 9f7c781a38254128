// Package registry provides the mutex-guarded handle table behind a
// liquidglass Manager.
//
// Application code refers to glass views through small integer handles
// rather than native object pointers, so stale or foreign pointers can
// never be routed to the native layer. Handles are assigned monotonically
// and never reused: a removed handle can never alias a later entry.
//
// Mutate and Evict run their callback while holding the registry lock, so
// "look up the handle, issue the native call, update the stored snapshot"
// behaves as one critical section with respect to every other operation on
// the table.
package registry

import (
	"sync"
)

// Registry maps int32 handles to live entries of type T.
// The zero value is not usable; call New.
//
// Thread-safe.
type Registry[T any] struct {
	mu      sync.Mutex
	next    int32
	entries map[int32]T
}

// New returns an empty registry. Handles start at 0 and increase by one
// per Insert for the lifetime of the registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[int32]T)}
}

// Insert stores v and returns its freshly assigned handle.
func (r *Registry[T]) Insert(v T) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.next
	r.next++
	r.entries[h] = v
	return h
}

// Mutate invokes fn on the entry for h while holding the registry lock and
// returns fn's error. When h has no live entry, fn is not called and found
// is false.
func (r *Registry[T]) Mutate(h int32, fn func(T) error) (found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.entries[h]
	if !ok {
		return false, nil
	}
	return true, fn(v)
}

// Evict removes the entry for h. fn runs under the lock before the entry
// is dropped; the entry is dropped even when fn fails, and fn's error is
// returned. When h has no live entry, fn is not called and found is false.
func (r *Registry[T]) Evict(h int32, fn func(T) error) (found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.entries[h]
	if !ok {
		return false, nil
	}
	if fn != nil {
		err = fn(v)
	}
	delete(r.entries, h)
	return true, err
}

// Drain removes every entry, invoking fn on each under the lock, and
// returns the first error fn produced. Handles already assigned are not
// reissued after a drain.
func (r *Registry[T]) Drain(fn func(int32, T) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var first error
	for h, v := range r.entries {
		if fn != nil {
			if err := fn(h, v); err != nil && first == nil {
				first = err
			}
		}
		delete(r.entries, h)
	}
	return first
}

// Len returns the number of live entries.
//
// Thread-safe.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
