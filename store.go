package flexui

import (
	"fmt"
	"reflect"

	"github.com/grindlemire/flexui/internal/debug"
)

// MaxNotifyDepth is the number of nested notifications a single store allows
// before it panics. Subscribers that set the store they are notified by
// recurse synchronously; only equal values stop the recursion.
const MaxNotifyDepth = 100

// Unsubscribe is a handle to remove a subscription. Calling it more than once
// is a no-op.
type Unsubscribe func()

// Observable is anything that can report that it changed.
type Observable interface {
	// Observe registers fn to be called after every change.
	Observe(fn func()) Unsubscribe
}

// Readable is the read contract shared by stores and computed stores.
type Readable[T any] interface {
	Observable
	// Get returns the current value.
	Get() T
	// Subscribe registers fn to be called with the new value after every
	// change. It is not called with the current value.
	Subscribe(fn func(T)) Unsubscribe
}

// Writable is a Readable that also accepts new values.
type Writable[T any] interface {
	Readable[T]
	Set(v T)
}

// Store wraps a value and notifies subscribers when it changes.
//
// Stores are not safe for concurrent use. All reads, writes and notifications
// happen on the goroutine that drives the host's event loop.
//
// Example:
//
//	count := flexui.NewStore(0)
//	count.Subscribe(func(v int) {
//	    fmt.Println("count changed to", v)
//	})
//	count.Set(count.Get() + 1)
type Store[T any] struct {
	value       T
	subscribers []*subscriber[T]
	equal       func(a, b T) bool
	depth       int
}

// subscriber is a registered callback. It is compared by identity so the
// same function can be subscribed more than once.
type subscriber[T any] struct {
	fn     func(T)
	active bool
}

// StoreOption configures a Store.
type StoreOption[T any] func(*Store[T])

// WithEqual replaces the equality check used by Set to decide whether a new
// value is a change.
func WithEqual[T any](eq func(a, b T) bool) StoreOption[T] {
	return func(s *Store[T]) {
		s.equal = eq
	}
}

// NewStore creates a store holding initial.
//
// By default two values are equal when they are the same primitive value or
// pointer, or, for slices and maps, the same backing storage. Functions are
// never equal.
func NewStore[T any](initial T, opts ...StoreOption[T]) *Store[T] {
	s := &Store[T]{value: initial, equal: defaultEqual[T]}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	return s.value
}

// Set stores v and notifies subscribers in subscription order. Nothing
// happens when v equals the current value.
func (s *Store[T]) Set(v T) {
	if s.equal(s.value, v) {
		return
	}
	s.value = v
	s.notify(v)
}

// Update applies fn to the current value and sets the result.
//
// Example:
//
//	count.Update(func(v int) int { return v + 1 })
func (s *Store[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Subscribe registers fn to be called after every change. Subscriptions fire
// in the order they were made.
func (s *Store[T]) Subscribe(fn func(T)) Unsubscribe {
	sub := &subscriber[T]{fn: fn, active: true}
	s.subscribers = append(s.subscribers, sub)

	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		for i, other := range s.subscribers {
			if other == sub {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				break
			}
		}
	}
}

// Observe registers fn to be called after every change, without the value.
func (s *Store[T]) Observe(fn func()) Unsubscribe {
	return s.Subscribe(func(T) { fn() })
}

// Subscribers returns the number of active subscriptions.
func (s *Store[T]) Subscribers() int {
	return len(s.subscribers)
}

func (s *Store[T]) notify(v T) {
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > MaxNotifyDepth {
		panic(&Error{
			Op:   "flexui.Store.Set",
			Kind: KindInvalidOperation,
			Err:  fmt.Errorf("notification depth exceeded %d; a subscriber keeps setting a new value", MaxNotifyDepth),
		})
	}

	// Snapshot so subscriptions made or dropped during notification take
	// effect from the next change on.
	subs := s.subscribers
	debug.Log("Store.Set: notifying %d subscribers of %v", len(subs), v)
	for _, sub := range subs {
		if sub.active {
			sub.fn(v)
		}
	}
}

func defaultEqual[T any](a, b T) bool {
	va := reflect.ValueOf(any(a))
	vb := reflect.ValueOf(any(b))
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Func:
		return false
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	}
	if va.Comparable() {
		return va.Equal(vb)
	}
	return false
}
