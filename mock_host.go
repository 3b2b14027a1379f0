package flexui

import "fmt"

// MockHost is a Host for tests. It records every window it opens and keeps
// cloned live widgets the way a real host would.
type MockHost struct {
	CreatedWindows []*MockWindow

	// OpenErr, when set, is returned by the next OpenWindow call.
	OpenErr error
}

// Ensure MockHost implements Host.
var _ Host = (*MockHost)(nil)

// NewMockHost creates a mock host.
func NewMockHost() *MockHost {
	return &MockHost{}
}

// OpenWindow clones the descriptors of desc into a new MockWindow.
func (h *MockHost) OpenWindow(desc *WindowDesc) (HostWindow, error) {
	if err := h.OpenErr; err != nil {
		h.OpenErr = nil
		return nil, err
	}
	w := &MockWindow{
		Desc:    desc,
		Widgets: CloneWidgets(desc.Widgets),
		tab:     desc.TabIndex,
		width:   desc.Width,
		height:  desc.Height,
	}
	for _, tab := range desc.Tabs {
		w.Tabs = append(w.Tabs, CloneWidgets(tab.Widgets))
	}
	h.CreatedWindows = append(h.CreatedWindows, w)
	return w, nil
}

// Last returns the most recently created window, or nil.
func (h *MockHost) Last() *MockWindow {
	if len(h.CreatedWindows) == 0 {
		return nil
	}
	return h.CreatedWindows[len(h.CreatedWindows)-1]
}

// MockWindow is a window opened by MockHost.
type MockWindow struct {
	Desc    *WindowDesc
	Widgets []Widget
	Tabs    [][]Widget

	// Invalidations counts calls to Invalidate.
	Invalidations int
	// Closed is set by Close and UserClose.
	Closed bool

	tab           int
	width, height int
}

// Ensure MockWindow implements HostWindow.
var _ HostWindow = (*MockWindow)(nil)

// FindWidget returns the live widget with the given name from the static
// widgets or any tab.
func (w *MockWindow) FindWidget(name string) Widget {
	for _, widget := range w.Widgets {
		if widget.Base().Name == name {
			return widget
		}
	}
	for _, tab := range w.Tabs {
		for _, widget := range tab {
			if widget.Base().Name == name {
				return widget
			}
		}
	}
	return nil
}

// Widget returns the live widget at index i of the static widgets followed
// by the current tab's widgets.
func (w *MockWindow) Widget(i int) Widget {
	all := w.Visible()
	if i < 0 || i >= len(all) {
		panic(fmt.Sprintf("flexui: mock window has %d widgets, index %d", len(all), i))
	}
	return all[i]
}

// Visible returns the static widgets followed by the current tab's widgets.
func (w *MockWindow) Visible() []Widget {
	all := append([]Widget(nil), w.Widgets...)
	if w.tab < len(w.Tabs) {
		all = append(all, w.Tabs[w.tab]...)
	}
	return all
}

// Size returns the window size.
func (w *MockWindow) Size() (width, height int) {
	return w.width, w.height
}

// TabIndex returns the selected tab.
func (w *MockWindow) TabIndex() int {
	return w.tab
}

// Invalidate counts a redraw request.
func (w *MockWindow) Invalidate() {
	w.Invalidations++
}

// Close marks the window closed without notifying the template.
func (w *MockWindow) Close() {
	w.Closed = true
}

// Update fires the window's update tick.
func (w *MockWindow) Update() {
	if w.Desc.OnUpdate != nil {
		w.Desc.OnUpdate()
	}
}

// Resize changes the window size within its bounds. The template notices on
// the next Update.
func (w *MockWindow) Resize(width, height int) {
	w.width = min(max(width, w.Desc.MinWidth), w.Desc.MaxWidth)
	w.height = min(max(height, w.Desc.MinHeight), w.Desc.MaxHeight)
}

// UserClose closes the window as if the user clicked its close button.
func (w *MockWindow) UserClose() {
	w.Closed = true
	if w.Desc.OnClose != nil {
		w.Desc.OnClose()
	}
}

// SwitchTab selects a tab as if the user clicked it.
func (w *MockWindow) SwitchTab(index int) {
	w.tab = index
	if w.Desc.OnTabChange != nil {
		w.Desc.OnTabChange(index)
	}
}
