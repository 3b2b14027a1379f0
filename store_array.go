package flexui

import (
	"fmt"
	"slices"
)

// ArrayStore is a store of a slice with copy-on-write helpers. Every
// modification replaces the slice, so subscribers always see a change and
// never observe a slice they received being mutated.
type ArrayStore[T any] struct {
	*Store[[]T]
}

// NewArrayStore creates an array store holding a copy of items.
func NewArrayStore[T any](items ...T) *ArrayStore[T] {
	return &ArrayStore[T]{Store: NewStore(slices.Clone(items))}
}

// Len returns the number of items.
func (a *ArrayStore[T]) Len() int {
	return len(a.Get())
}

// At returns the item at index i.
func (a *ArrayStore[T]) At(i int) (T, error) {
	items := a.Get()
	if i < 0 || i >= len(items) {
		var zero T
		return zero, a.outOfRange("At", i, len(items))
	}
	return items[i], nil
}

// Push appends items to the end.
func (a *ArrayStore[T]) Push(items ...T) {
	if len(items) == 0 {
		return
	}
	a.Set(append(slices.Clone(a.Get()), items...))
}

// Insert places items before index i. An index equal to Len appends.
func (a *ArrayStore[T]) Insert(i int, items ...T) error {
	current := a.Get()
	if i < 0 || i > len(current) {
		return a.outOfRange("Insert", i, len(current))
	}
	a.Set(slices.Insert(slices.Clone(current), i, items...))
	return nil
}

// RemoveAt removes the item at index i.
func (a *ArrayStore[T]) RemoveAt(i int) error {
	current := a.Get()
	if i < 0 || i >= len(current) {
		return a.outOfRange("RemoveAt", i, len(current))
	}
	a.Set(slices.Delete(slices.Clone(current), i, i+1))
	return nil
}

// SetAt replaces the item at index i.
func (a *ArrayStore[T]) SetAt(i int, v T) error {
	current := a.Get()
	if i < 0 || i >= len(current) {
		return a.outOfRange("SetAt", i, len(current))
	}
	next := slices.Clone(current)
	next[i] = v
	a.Set(next)
	return nil
}

func (a *ArrayStore[T]) outOfRange(op string, i, n int) error {
	return &Error{
		Op:   "flexui.ArrayStore." + op,
		Kind: KindInvalidOperation,
		Err:  fmt.Errorf("index %d out of range [0, %d)", i, n),
	}
}
