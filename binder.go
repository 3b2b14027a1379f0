package flexui

import "github.com/grindlemire/flexui/internal/debug"

// binding is one entry of a Binder.
type binding interface {
	// refresh writes the current value without subscribing.
	refresh()
	// bind subscribes and writes the current value.
	bind()
	// unbind drops the subscription, if any.
	unbind()
}

// Binder wires stores to the widgets of one window. Bindings are recorded
// while the window is built and become live when the window opens.
//
// Every write goes to the template's descriptor, and to the live widget of
// the same name when the window is open. A live widget that is missing or of
// another type is skipped.
type Binder struct {
	bindings []binding
	window   HostWindow
}

// NewBinder creates an empty binder.
func NewBinder() *Binder {
	return &Binder{}
}

// HasBindings reports whether any binding follows a store.
func (b *Binder) HasBindings() bool {
	return len(b.bindings) > 0
}

// Len returns the number of bindings.
func (b *Binder) Len() int {
	return len(b.bindings)
}

// Window returns the window the binder is bound to, or nil.
func (b *Binder) Window() HostWindow {
	return b.window
}

// Refresh writes the current value of every binding into the descriptors.
func (b *Binder) Refresh() {
	for _, bd := range b.bindings {
		bd.refresh()
	}
}

// Bind subscribes every binding and writes the current values into the
// descriptors and the live widgets of window. Bindings from an earlier Bind
// are dropped first.
func (b *Binder) Bind(window HostWindow) {
	b.Unbind()
	b.window = window
	debug.Log("Binder.Bind: subscribing %d bindings", len(b.bindings))
	for _, bd := range b.bindings {
		bd.bind()
	}
}

// Unbind drops every subscription. Later store changes reach neither the
// descriptors nor the window.
func (b *Binder) Unbind() {
	for _, bd := range b.bindings {
		bd.unbind()
	}
	b.window = nil
}

func (b *Binder) add(bd binding) {
	b.bindings = append(b.bindings, bd)
}

// live returns the live widget named like target when it has target's type.
func live[W Widget](window HostWindow, target W) (W, bool) {
	var zero W
	if window == nil {
		return zero, false
	}
	w, ok := window.FindWidget(target.Base().Name).(W)
	if !ok {
		return zero, false
	}
	return w, true
}

type propertyBinding[W Widget, V any] struct {
	binder *Binder
	target W
	source Readable[V]
	set    func(W, V)
	unsub  Unsubscribe
}

func (p *propertyBinding[W, V]) write(v V) {
	p.set(p.target, v)
	if w, ok := live(p.binder.window, p.target); ok {
		p.set(w, v)
	}
}

func (p *propertyBinding[W, V]) refresh() {
	p.set(p.target, p.source.Get())
}

func (p *propertyBinding[W, V]) bind() {
	p.write(p.source.Get())
	p.unsub = p.source.Subscribe(p.write)
}

func (p *propertyBinding[W, V]) unbind() {
	if p.unsub != nil {
		p.unsub()
		p.unsub = nil
	}
}

// AddBinding writes value into target with set. A store is followed for as
// long as the window is open; a literal is written once now; an unset value
// leaves target untouched.
func AddBinding[W Widget, V any](b *Binder, target W, value Bindable[V], set func(W, V)) {
	switch {
	case value.IsStore():
		set(target, Read(value))
		b.add(&propertyBinding[W, V]{binder: b, target: target, source: value.Source(), set: set})
	case value.IsSet():
		set(target, Read(value))
	}
}

// AddTwoWayBinding behaves as AddBinding and wires the host's change callback
// on target. When the host reports a change, the new value is written back
// into a two-way store and then passed to callback.
func AddTwoWayBinding[W Widget, V any](b *Binder, target W, value Bindable[V], set func(W, V), wire func(W, func(V)), callback func(V)) {
	AddBinding(b, target, value, set)
	if !value.IsTwoWay() && callback == nil {
		return
	}
	wire(target, func(v V) {
		value.writeBack(v)
		if callback != nil {
			callback(v)
		}
	})
}

// AddCallbackBinding wires a host callback with a compound payload P on
// target. convert turns the payload into the bound value; it may return the
// previous value to keep the store from notifying about an unchanged value.
func AddCallbackBinding[W Widget, P, V any](b *Binder, target W, value Bindable[V], wire func(W, func(P)), convert func(P) V, callback func(V)) {
	if !value.IsTwoWay() && callback == nil {
		return
	}
	wire(target, func(payload P) {
		v := convert(payload)
		value.writeBack(v)
		if callback != nil {
			callback(v)
		}
	})
}

type watchBinding[V any] struct {
	source Readable[V]
	fn     func(V)
	unsub  Unsubscribe
}

func (w *watchBinding[V]) refresh() {
	w.fn(w.source.Get())
}

func (w *watchBinding[V]) bind() {
	w.fn(w.source.Get())
	w.unsub = w.source.Subscribe(w.fn)
}

func (w *watchBinding[V]) unbind() {
	if w.unsub != nil {
		w.unsub()
		w.unsub = nil
	}
}

// AddWatch calls fn whenever a store-backed value changes while the window
// is open, and once with the current value each time it opens. Literals and
// unset values are never watched.
func AddWatch[V any](b *Binder, value Bindable[V], fn func(V)) {
	if !value.IsStore() {
		return
	}
	b.add(&watchBinding[V]{source: value.Source(), fn: fn})
}
