package flexui

import "errors"

// Computed is a read-only store derived from one or more sources. Its value
// is recomputed synchronously whenever a source changes, and its subscribers
// are notified before the source's Set returns.
type Computed[T any] struct {
	store   *Store[T]
	compute func() T
	sources []Unsubscribe
}

var errComputedSet = errors.New("computed stores are read-only")

func newComputed[T any](fn func() T, sources ...Observable) *Computed[T] {
	c := &Computed[T]{store: NewStore(fn()), compute: fn}
	for _, src := range sources {
		c.sources = append(c.sources, src.Observe(c.refresh))
	}
	return c
}

// Compute derives a store from a single source.
//
// Example:
//
//	label := flexui.Compute(count, func(v int) string {
//	    return fmt.Sprintf("Count: %d", v)
//	})
func Compute[A, T any](a Readable[A], fn func(A) T) *Computed[T] {
	return newComputed(func() T { return fn(a.Get()) }, a)
}

// Compute2 derives a store from two sources.
func Compute2[A, B, T any](a Readable[A], b Readable[B], fn func(A, B) T) *Computed[T] {
	return newComputed(func() T { return fn(a.Get(), b.Get()) }, a, b)
}

// Compute3 derives a store from three sources.
func Compute3[A, B, C, T any](a Readable[A], b Readable[B], c Readable[C], fn func(A, B, C) T) *Computed[T] {
	return newComputed(func() T { return fn(a.Get(), b.Get(), c.Get()) }, a, b, c)
}

// ComputeAll derives a store from any number of sources. fn reads the
// sources itself; it is called again whenever one of them changes.
func ComputeAll[T any](fn func() T, sources ...Observable) *Computed[T] {
	return newComputed(fn, sources...)
}

func (c *Computed[T]) refresh() {
	c.store.Set(c.compute())
}

// Get returns the current derived value.
func (c *Computed[T]) Get() T {
	return c.store.Get()
}

// Subscribe registers fn to be called after the derived value changes.
func (c *Computed[T]) Subscribe(fn func(T)) Unsubscribe {
	return c.store.Subscribe(fn)
}

// Observe registers fn to be called after the derived value changes.
func (c *Computed[T]) Observe(fn func()) Unsubscribe {
	return c.store.Observe(fn)
}

// Set always fails: computed values only change through their sources.
func (c *Computed[T]) Set(T) error {
	return &Error{Op: "flexui.Computed.Set", Kind: KindInvalidOperation, Err: errComputedSet}
}

// Dispose drops the subscriptions on the sources. The computed store keeps
// its last value and stops updating.
func (c *Computed[T]) Dispose() {
	for _, unsub := range c.sources {
		unsub()
	}
	c.sources = nil
}
