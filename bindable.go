package flexui

// TwoWay adapts a store into a value controls can write user edits back into.
type TwoWay[T any] struct {
	store *Store[T]
}

// Twoway wraps s for two-way binding.
func Twoway[T any](s *Store[T]) TwoWay[T] {
	return TwoWay[T]{store: s}
}

// Get returns the current value of the wrapped store.
func (t TwoWay[T]) Get() T { return t.store.Get() }

// Set writes a user edit back into the wrapped store.
func (t TwoWay[T]) Set(v T) { t.store.Set(v) }

// Subscribe forwards to the wrapped store.
func (t TwoWay[T]) Subscribe(fn func(T)) Unsubscribe { return t.store.Subscribe(fn) }

// Observe forwards to the wrapped store.
func (t TwoWay[T]) Observe(fn func()) Unsubscribe { return t.store.Observe(fn) }

// Store returns the wrapped store.
func (t TwoWay[T]) Store() *Store[T] { return t.store }

type bindKind uint8

const (
	bindNone bindKind = iota
	bindLiteral
	bindStore
	bindTwoWay
)

// Bindable is a control property that is either unset, a literal value, a
// read-only store, or a two-way store. The zero value is unset and leaves the
// property at its default.
type Bindable[T any] struct {
	kind   bindKind
	value  T
	store  Readable[T]
	twoway TwoWay[T]
}

// Value returns a Bindable holding a literal.
func Value[T any](v T) Bindable[T] {
	return Bindable[T]{kind: bindLiteral, value: v}
}

// Bind returns a Bindable that follows r. User edits are not written back.
func Bind[T any](r Readable[T]) Bindable[T] {
	if r == nil {
		return Bindable[T]{}
	}
	return Bindable[T]{kind: bindStore, store: r}
}

// BindTwoWay returns a Bindable that follows s and receives user edits.
func BindTwoWay[T any](s *Store[T]) Bindable[T] {
	if s == nil {
		return Bindable[T]{}
	}
	tw := Twoway(s)
	return Bindable[T]{kind: bindTwoWay, store: tw, twoway: tw}
}

// IsSet reports whether the bindable carries a literal or a store.
func (b Bindable[T]) IsSet() bool {
	return b.kind != bindNone
}

// IsStore reports whether the bindable follows a store.
func (b Bindable[T]) IsStore() bool {
	return b.kind == bindStore || b.kind == bindTwoWay
}

// IsTwoWay reports whether user edits are written back.
func (b Bindable[T]) IsTwoWay() bool {
	return b.kind == bindTwoWay
}

// Source returns the store the bindable follows, or nil for literals.
func (b Bindable[T]) Source() Readable[T] {
	if !b.IsStore() {
		return nil
	}
	return b.store
}

// Or returns b, or a literal of fallback when b is unset.
func (b Bindable[T]) Or(fallback T) Bindable[T] {
	if b.kind == bindNone {
		return Value(fallback)
	}
	return b
}

// writeBack stores a user edit when the bindable is two-way. It reports
// whether the value was written.
func (b Bindable[T]) writeBack(v T) bool {
	if b.kind != bindTwoWay {
		return false
	}
	b.twoway.Set(v)
	return true
}

// Read returns the current value of b: the store's value, the literal, or
// the zero value when unset.
func Read[T any](b Bindable[T]) T {
	switch b.kind {
	case bindLiteral:
		return b.value
	case bindStore, bindTwoWay:
		return b.store.Get()
	default:
		var zero T
		return zero
	}
}

// On subscribes fn to b when it follows a store. Literals and unset values
// never change, so the returned handle is a no-op for them.
func On[T any](b Bindable[T], fn func(T)) Unsubscribe {
	if !b.IsStore() {
		return func() {}
	}
	return b.store.Subscribe(fn)
}
