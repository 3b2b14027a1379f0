package flexui

// Host is the windowing runtime that draws widgets and dispatches input.
type Host interface {
	// OpenWindow creates a window from desc. The host keeps its own live
	// copies of desc's widgets, reachable through HostWindow.FindWidget.
	OpenWindow(desc *WindowDesc) (HostWindow, error)
}

// HostWindow is an open window of a Host.
type HostWindow interface {
	// FindWidget returns the live widget with the given name, or nil.
	FindWidget(name string) Widget
	// Size returns the current window size in pixels.
	Size() (width, height int)
	// TabIndex returns the selected tab, or 0 for windows without tabs.
	TabIndex() int
	// Invalidate asks the host to redraw the window.
	Invalidate()
	// Close closes the window without calling WindowDesc.OnClose.
	Close()
}

// WindowDesc describes a window for Host.OpenWindow.
type WindowDesc struct {
	Title     string
	Width     int
	Height    int
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int

	// Widgets are shown on every tab.
	Widgets []Widget
	// Tabs is empty for windows without tabs.
	Tabs     []TabDesc
	TabIndex int

	// OnUpdate is called by the host once per frame.
	OnUpdate func()
	// OnClose is called by the host when the user closes the window.
	OnClose func()
	// OnTabChange is called by the host after the user selects a tab.
	OnTabChange func(index int)
}

// TabDesc describes one tab of a WindowDesc.
type TabDesc struct {
	Title   string
	Widgets []Widget
}

var defaultHost Host

// SetDefaultHost sets the host used by templates built without WithHost.
func SetDefaultHost(h Host) {
	defaultHost = h
}

// DefaultHost returns the host set by SetDefaultHost, or nil.
func DefaultHost() Host {
	return defaultHost
}
