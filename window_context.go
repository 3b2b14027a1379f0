package flexui

// WindowContext gives controls and event callbacks access to the window they
// belong to.
type WindowContext struct {
	t *WindowTemplate
}

// Redraw lays out every container marked by Recalculate again and asks the
// host to redraw. It does nothing while the window is not open.
func (c *WindowContext) Redraw() {
	c.t.redraw()
}

// Recalculate lays out the whole window again and redraws it.
func (c *WindowContext) Recalculate() {
	c.t.root.Recalculate()
	c.t.redraw()
}

// Window returns the open host window, or nil when the window is not open.
func (c *WindowContext) Window() HostWindow {
	return c.t.window
}

// Template returns the template the context belongs to.
func (c *WindowContext) Template() *WindowTemplate {
	return c.t
}

// Widgets returns the descriptors of the window: static widgets first, then
// the widgets of every tab.
func (c *WindowContext) Widgets() []Widget {
	return c.t.Widgets()
}

// Widget returns the live widget with the given name while the window is
// open, and its descriptor otherwise.
func (c *WindowContext) Widget(name string) Widget {
	if c.t.window != nil {
		if w := c.t.window.FindWidget(name); w != nil {
			return w
		}
	}
	return c.t.descriptor(name)
}

func (c *WindowContext) markDirty(f *frame) {
	c.t.dirty = append(c.t.dirty, f)
}

// place writes area into the descriptor and the live widget.
func (c *WindowContext) place(w Widget, area Rect) {
	update(c, w, func(w Widget) {
		b := w.Base()
		b.X, b.Y = area.X, area.Y
		b.Width, b.Height = area.Width, area.Height
	})
}

// update applies fn to desc and, when the window is open, to the live widget
// with desc's name and type.
func update[W Widget](c *WindowContext, desc W, fn func(W)) {
	fn(desc)
	if w, ok := live(c.t.window, desc); ok {
		fn(w)
	}
}
