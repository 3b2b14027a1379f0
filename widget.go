package flexui

import "slices"

// WidgetType names the kind of a host widget.
type WidgetType string

const (
	TypeButton   WidgetType = "button"
	TypeLabel    WidgetType = "label"
	TypeCheckbox WidgetType = "checkbox"
	TypeSpinner  WidgetType = "spinner"
	TypeDropdown WidgetType = "dropdown"
	TypeListView WidgetType = "listview"
	TypeViewport WidgetType = "viewport"
	TypeGroupBox WidgetType = "groupbox"
	TypeTextBox  WidgetType = "textbox"
)

// WidgetBase holds the properties every host widget has.
type WidgetBase struct {
	Type       WidgetType
	Name       string
	X, Y       int
	Width      int
	Height     int
	Tooltip    string
	IsDisabled bool
	IsVisible  bool
}

// Base returns the shared properties.
func (b *WidgetBase) Base() *WidgetBase { return b }

func (*WidgetBase) widget() {}

// Widget is a host-facing widget description. The set of implementations is
// closed: ButtonWidget, LabelWidget, CheckboxWidget, SpinnerWidget,
// DropdownWidget, ListViewWidget, ViewportWidget, GroupBoxWidget and
// TextBoxWidget.
//
// The same records serve as the window template's descriptors and, after a
// host clones them, as the live widgets of an open window.
type Widget interface {
	Base() *WidgetBase
	// Clone returns an independent copy, callbacks included.
	Clone() Widget
	widget()
}

// ButtonWidget is a clickable button, optionally drawn pressed.
type ButtonWidget struct {
	WidgetBase
	Text      string
	Border    bool
	IsPressed bool
	OnClick   func()
}

func (w *ButtonWidget) Clone() Widget { c := *w; return &c }

// TextAlign is the horizontal alignment of a label.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCentred
)

func (a TextAlign) String() string {
	if a == AlignCentred {
		return "centred"
	}
	return "left"
}

// LabelWidget is a line of static text.
type LabelWidget struct {
	WidgetBase
	Text      string
	TextAlign TextAlign
}

func (w *LabelWidget) Clone() Widget { c := *w; return &c }

// CheckboxWidget is a labelled checkbox.
type CheckboxWidget struct {
	WidgetBase
	Text      string
	IsChecked bool
	OnChange  func(checked bool)
}

func (w *CheckboxWidget) Clone() Widget { c := *w; return &c }

// SpinnerWidget shows a value with increment and decrement buttons.
type SpinnerWidget struct {
	WidgetBase
	Text        string
	OnIncrement func()
	OnDecrement func()
}

func (w *SpinnerWidget) Clone() Widget { c := *w; return &c }

// DropdownWidget is a list of items with one selected.
type DropdownWidget struct {
	WidgetBase
	Items         []string
	SelectedIndex int
	OnChange      func(index int)
}

func (w *DropdownWidget) Clone() Widget {
	c := *w
	c.Items = slices.Clone(w.Items)
	return &c
}

// ScrollbarType selects which scrollbars a list view shows.
type ScrollbarType uint8

const (
	ScrollbarVertical ScrollbarType = iota
	ScrollbarNone
	ScrollbarHorizontal
	ScrollbarBoth
)

// ListViewColumn is a host column. Exactly one of Width and RatioWidth is
// used: Width in pixels, or RatioWidth as a share of the list's width.
type ListViewColumn struct {
	Header        string
	HeaderTooltip string
	CanSort       bool
	Width         int
	RatioWidth    float64
}

// ListViewItem is one row of cells.
type ListViewItem []string

// RowColumn identifies a cell in a list view.
type RowColumn struct {
	Row, Column int
}

// ListViewWidget shows rows of cells in columns.
type ListViewWidget struct {
	WidgetBase
	ShowColumnHeaders bool
	Columns           []ListViewColumn
	Items             []ListViewItem
	Scrollbars        ScrollbarType
	CanSelect         bool
	IsStriped         bool
	SelectedCell      *RowColumn
	OnHighlight       func(row, column int)
	OnClick           func(row, column int)
}

func (w *ListViewWidget) Clone() Widget {
	c := *w
	c.Columns = slices.Clone(w.Columns)
	c.Items = slices.Clone(w.Items)
	if w.SelectedCell != nil {
		cell := *w.SelectedCell
		c.SelectedCell = &cell
	}
	return &c
}

// Coords is a position in the host's world.
type Coords struct {
	X, Y, Z int
}

// ViewportFlags toggles what a viewport draws.
type ViewportFlags uint32

const (
	ViewportGridlines ViewportFlags = 1 << iota
	ViewportUndergroundInside
	ViewportSeeThroughScenery
	ViewportInvisiblePeeps
)

// ViewportView is the camera of a viewport widget. Left and Bottom are the world
// coordinates of its lower-left corner.
type ViewportView struct {
	Left, Bottom    int
	Rotation        int
	Zoom            int
	VisibilityFlags ViewportFlags
}

// ViewportWidget shows a view of the host's world.
type ViewportWidget struct {
	WidgetBase
	Viewport ViewportView
}

func (w *ViewportWidget) Clone() Widget { c := *w; return &c }

// GroupBoxWidget is a titled frame around other widgets.
type GroupBoxWidget struct {
	WidgetBase
	Text string
}

func (w *GroupBoxWidget) Clone() Widget { c := *w; return &c }

// TextBoxWidget is an editable line of text.
type TextBoxWidget struct {
	WidgetBase
	Text      string
	MaxLength int
	OnChange  func(text string)
}

func (w *TextBoxWidget) Clone() Widget { c := *w; return &c }

// CloneWidgets clones every widget in ws.
func CloneWidgets(ws []Widget) []Widget {
	out := make([]Widget, len(ws))
	for i, w := range ws {
		out[i] = w.Clone()
	}
	return out
}
