package flexui

import (
	"errors"
	"fmt"
	"slices"

	"github.com/grindlemire/flexui/internal/debug"
	"github.com/grindlemire/flexui/internal/layout"
)

const (
	// titleBarHeight is the height of the host's window title bar.
	titleBarHeight = 15
	// tabBarHeight is the extra height of the tab strip of tabbed windows.
	tabBarHeight = 28
)

// WindowState is the lifecycle state of a WindowTemplate.
type WindowState uint8

const (
	StateUnopened WindowState = iota
	StateOpen
	StateClosed
)

func (s WindowState) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("WindowState(%d)", int(s))
	}
}

var errNoHost = errors.New("no host configured; use WithHost or SetDefaultHost")

// WindowTemplate is a built window that can be opened, closed and opened
// again. It owns the widget descriptors, the bindings and the layout tree.
type WindowTemplate struct {
	desc    WindowDesc
	padding Padding
	top     int

	binder  *Binder
	ctx     *WindowContext
	root    *container
	widgets []Widget
	events  eventLists

	tabs        []*tabPage
	active      int
	onTabChange func(index int)

	host   Host
	window HostWindow
	state  WindowState

	width, height int
	dirty         []*frame
	layouts       int
}

// TemplateOption configures a WindowTemplate.
type TemplateOption func(*WindowTemplate) error

// WithHost sets the host the template opens its window on.
func WithHost(h Host) TemplateOption {
	return func(t *WindowTemplate) error {
		if h == nil {
			return fmt.Errorf("host must not be nil")
		}
		t.host = h
		return nil
	}
}

// State returns the lifecycle state.
func (t *WindowTemplate) State() WindowState {
	return t.state
}

// Context returns the runtime context shared by the window's controls.
func (t *WindowTemplate) Context() *WindowContext {
	return t.ctx
}

// Binder returns the template's binder.
func (t *WindowTemplate) Binder() *Binder {
	return t.binder
}

// Title returns the window title.
func (t *WindowTemplate) Title() string {
	return t.desc.Title
}

// ActiveTab returns the index of the shown tab, or 0 without tabs.
func (t *WindowTemplate) ActiveTab() int {
	return t.active
}

// Size returns the window size used by the last layout.
func (t *WindowTemplate) Size() (width, height int) {
	return t.width, t.height
}

// Widgets returns the descriptors: static widgets first, then those of every
// tab in order.
func (t *WindowTemplate) Widgets() []Widget {
	out := slices.Clone(t.widgets)
	for _, tab := range t.tabs {
		out = append(out, tab.widgets...)
	}
	return out
}

func (t *WindowTemplate) descriptor(name string) Widget {
	for _, w := range t.Widgets() {
		if w.Base().Name == name {
			return w
		}
	}
	return nil
}

// Open creates the window on the host, binds every store and lays out the
// window. Opening an open window does nothing. A closed template can be
// opened again.
func (t *WindowTemplate) Open() error {
	if t.state == StateOpen {
		return nil
	}
	host := t.host
	if host == nil {
		host = DefaultHost()
	}
	if host == nil {
		return &Error{Op: "flexui.WindowTemplate.Open", Kind: KindInvalidOperation, Err: errNoHost}
	}

	// Stores may have changed while the window was closed.
	t.binder.Refresh()
	t.width, t.height = t.desc.Width, t.desc.Height
	t.layoutAll()

	window, err := host.OpenWindow(t.describe())
	if err != nil {
		return fmt.Errorf("opening window %q: %w", t.desc.Title, err)
	}
	t.window = window
	t.binder.Bind(window)
	t.state = StateOpen
	debug.Log("WindowTemplate.Open: %q opened with %d bindings", t.desc.Title, t.binder.Len())

	t.events.fire(EventOpen, t.ctx)
	if tab := t.activeTab(); tab != nil {
		tab.events.fire(EventOpen, t.ctx)
	}
	return nil
}

// Close closes the window and drops every binding. Closing a window that is
// not open does nothing.
func (t *WindowTemplate) Close() {
	if t.state != StateOpen {
		return
	}
	window := t.window
	t.shutdown()
	window.Close()
}

// shutdown unbinds and fires the close events. The host window is already
// closed or about to be.
func (t *WindowTemplate) shutdown() {
	t.binder.Unbind()
	t.window = nil
	t.state = StateClosed
	debug.Log("WindowTemplate.Close: %q closed", t.desc.Title)

	if tab := t.activeTab(); tab != nil {
		tab.events.fire(EventClose, t.ctx)
	}
	t.events.fire(EventClose, t.ctx)
}

func (t *WindowTemplate) hostClosed() {
	if t.state == StateOpen {
		t.shutdown()
	}
}

// update handles a host update tick. A changed window size lays out the
// whole window before the update callbacks run.
func (t *WindowTemplate) update() {
	if t.state != StateOpen {
		return
	}
	if w, h := t.window.Size(); w != t.width || h != t.height {
		debug.Log("WindowTemplate.update: resized from %dx%d to %dx%d", t.width, t.height, w, h)
		t.width, t.height = w, h
		t.layoutAll()
		t.window.Invalidate()
	}

	t.events.fire(EventUpdate, t.ctx)
	if tab := t.activeTab(); tab != nil {
		tab.events.fire(EventUpdate, t.ctx)
	}
}

// layoutAll lays out the root container in the window's content area.
func (t *WindowTemplate) layoutAll() {
	area := layout.NewRect(0, t.top, t.width, max(0, t.height-t.top))
	inner := layout.ApplyPadding(area, Auto(), Auto(), t.padding)
	t.root.Layout(inner)
	t.layouts++

	t.dirty = slices.DeleteFunc(t.dirty, func(f *frame) bool { return !f.dirty })
}

// redraw lays out dirty frames of the visible tree in their last area and
// invalidates the host window once.
func (t *WindowTemplate) redraw() {
	if t.state != StateOpen {
		return
	}
	pending := t.dirty
	t.dirty = nil

	relaid := false
	for _, f := range pending {
		if !f.dirty {
			continue
		}
		if !f.placed || !t.isShown(f) {
			t.dirty = append(t.dirty, f)
			continue
		}
		f.redo(f.area)
		relaid = true
	}
	if relaid {
		t.layouts++
	}
	t.window.Invalidate()
}

func (t *WindowTemplate) isShown(f *frame) bool {
	return f.tab < 0 || f.tab == t.active
}

func (t *WindowTemplate) activeTab() *tabPage {
	if len(t.tabs) == 0 {
		return nil
	}
	return t.tabs[t.active]
}

// describe creates the description the host opens the window from.
func (t *WindowTemplate) describe() *WindowDesc {
	desc := t.desc
	desc.Width, desc.Height = t.width, t.height
	desc.Widgets = slices.Clone(t.widgets)
	desc.Tabs = nil
	for _, tab := range t.tabs {
		desc.Tabs = append(desc.Tabs, TabDesc{Title: tab.title, Widgets: slices.Clone(tab.widgets)})
	}
	desc.TabIndex = t.active
	desc.OnUpdate = t.update
	desc.OnClose = t.hostClosed
	if len(t.tabs) > 0 {
		desc.OnTabChange = t.selectTab
	}
	return &desc
}
