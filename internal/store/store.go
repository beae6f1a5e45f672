package store

import "sync"

// Readable exposes read-only access to a store.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func()) (unsubscribe func())
}

// Store is a single-slot observable value.
// The zero value is not usable; create instances with New.
type Store[T any] struct {
	mu sync.Mutex

	// value is the last value passed to Set.
	value T
	// subscribers are kept in registration order.
	subscribers []*subscription
	// nextID numbers registrations so equal callbacks stay distinct.
	nextID uint64
	// onNotify runs after each subscriber callback.
	onNotify func()
}

// Option configures a Store.
type Option func(*options)

// options collects settings that do not depend on the value type.
type options struct {
	onNotify func()
}

// WithNotifyHook runs fn after every subscriber callback, e.g. to count
// notifications.
func WithNotifyHook(fn func()) Option {
	return func(o *options) {
		o.onNotify = fn
	}
}

// subscription is one registration of a callback.
type subscription struct {
	id uint64
	fn func()
}

// New creates an empty store.
func New[T any](opts ...Option) *Store[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Store[T]{
		onNotify: o.onNotify,
	}
}

// Set replaces the held value and notifies every subscriber registered at the
// time of the call. It returns after all callbacks have returned.
// Identical consecutive values are not deduplicated.
func (s *Store[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	snapshot := make([]*subscription, len(s.subscribers))
	copy(snapshot, s.subscribers)
	s.mu.Unlock()

	for _, sub := range snapshot {
		sub.fn()

		if s.onNotify != nil {
			s.onNotify()
		}
	}
}

// Get returns the current value by reference; callers must not modify it.
func (s *Store[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value
}

// Subscribe registers fn and returns a function removing exactly this
// registration. Subscribing the same function twice creates two independent
// registrations. The returned function is safe to call more than once.
// Changes to the registry made during a Set take effect from the next Set.
func (s *Store[T]) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subscribers = append(s.subscribers, &subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() { s.remove(id) })
	}
}

// Len returns the number of live registrations.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.subscribers)
}

// Reset clears the value and drops every subscriber.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T

	s.value = zero
	s.subscribers = nil
}

// remove deletes the registration with the given id, if still present.
func (s *Store[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subscribers {
		if sub.id == id {
			// Build a fresh slice so snapshots taken by Set are unaffected.
			kept := make([]*subscription, 0, len(s.subscribers)-1)
			kept = append(kept, s.subscribers[:i]...)
			kept = append(kept, s.subscribers[i+1:]...)
			s.subscribers = kept

			return
		}
	}
}
