// Package termhost runs flexui windows in a terminal.
//
// Window pixels are mapped onto terminal cells, 6x14 pixels per cell by
// default. Only the most recently opened window is shown and receives keys.
package termhost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grindlemire/flexui"
	"github.com/grindlemire/flexui/internal/debug"
)

// ErrNoWindow is returned by Run when no window is open.
var ErrNoWindow = errors.New("termhost: no open window")

// Host is a flexui.Host drawing into a terminal. All window callbacks run on
// the goroutine that drives Run.
type Host struct {
	cellWidth, cellHeight int
	tick                  time.Duration
	input                 io.Reader
	output                io.Writer

	windows []*window
}

// Ensure Host implements flexui.Host.
var _ flexui.Host = (*Host)(nil)

// New creates a terminal host.
func New(opts ...Option) (*Host, error) {
	h := &Host{
		cellWidth:  6,
		cellHeight: 14,
		tick:       50 * time.Millisecond,
		input:      os.Stdin,
		output:     os.Stdout,
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// OpenWindow keeps live copies of desc's widgets and shows the window on top.
func (h *Host) OpenWindow(desc *flexui.WindowDesc) (flexui.HostWindow, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("window %q has size %dx%d", desc.Title, desc.Width, desc.Height)
	}
	w := &window{
		host:   h,
		desc:   desc,
		static: flexui.CloneWidgets(desc.Widgets),
		tab:    desc.TabIndex,
		width:  desc.Width,
		height: desc.Height,
		dirty:  true,
	}
	for _, tab := range desc.Tabs {
		w.tabs = append(w.tabs, flexui.CloneWidgets(tab.Widgets))
	}
	h.windows = append(h.windows, w)
	debug.Log("termhost.OpenWindow: %q %dx%d with %d widgets and %d tabs", desc.Title, desc.Width, desc.Height, len(w.static), len(w.tabs))
	return w, nil
}

// Run shows the open windows until the user quits, every window is closed
// or ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	if h.top() == nil {
		return ErrNoWindow
	}
	p := tea.NewProgram(newModel(h),
		tea.WithContext(ctx),
		tea.WithInput(h.input),
		tea.WithOutput(h.output),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal host: %w", err)
	}
	return nil
}

// top returns the window shown on screen, or nil.
func (h *Host) top() *window {
	if len(h.windows) == 0 {
		return nil
	}
	return h.windows[len(h.windows)-1]
}

func (h *Host) remove(w *window) {
	for i, open := range h.windows {
		if open == w {
			h.windows = append(h.windows[:i], h.windows[i+1:]...)
			return
		}
	}
}

// closeAll closes every window as if the user closed it.
func (h *Host) closeAll() {
	for len(h.windows) > 0 {
		h.top().userClose()
	}
}

// window is an open window of a Host.
type window struct {
	host   *Host
	desc   *flexui.WindowDesc
	static []flexui.Widget
	tabs   [][]flexui.Widget
	tab    int

	width, height int
	dirty         bool
	// focus is the name of the focused widget.
	focus string
}

// Ensure window implements flexui.HostWindow.
var _ flexui.HostWindow = (*window)(nil)

func (w *window) FindWidget(name string) flexui.Widget {
	for _, widget := range w.static {
		if widget.Base().Name == name {
			return widget
		}
	}
	for _, tab := range w.tabs {
		for _, widget := range tab {
			if widget.Base().Name == name {
				return widget
			}
		}
	}
	return nil
}

func (w *window) Size() (width, height int) {
	return w.width, w.height
}

func (w *window) TabIndex() int {
	return w.tab
}

func (w *window) Invalidate() {
	w.dirty = true
}

func (w *window) Close() {
	debug.Log("termhost.window(%s): closed by template", w.desc.Title)
	w.host.remove(w)
}

func (w *window) userClose() {
	debug.Log("termhost.window(%s): closed by user", w.desc.Title)
	w.host.remove(w)
	if w.desc.OnClose != nil {
		w.desc.OnClose()
	}
}

func (w *window) update() {
	if w.desc.OnUpdate != nil {
		w.desc.OnUpdate()
	}
}

// resize sets the window size within its bounds.
func (w *window) resize(width, height int) {
	d := w.desc
	width = min(max(width, d.MinWidth), max(d.MaxWidth, d.MinWidth))
	height = min(max(height, d.MinHeight), max(d.MaxHeight, d.MinHeight))
	if width == w.width && height == w.height {
		return
	}
	debug.Log("termhost.window(%s): resized to %dx%d", d.Title, width, height)
	w.width, w.height = width, height
	w.dirty = true
}

// switchTab selects the tab delta steps away, wrapping around.
func (w *window) switchTab(delta int) {
	n := len(w.tabs)
	if n < 2 {
		return
	}
	w.tab = ((w.tab+delta)%n + n) % n
	w.focus = ""
	w.dirty = true
	if w.desc.OnTabChange != nil {
		w.desc.OnTabChange(w.tab)
	}
}

// visible returns the static widgets followed by the selected tab's widgets.
func (w *window) visible() []flexui.Widget {
	all := append([]flexui.Widget(nil), w.static...)
	if w.tab < len(w.tabs) {
		all = append(all, w.tabs[w.tab]...)
	}
	return all
}
