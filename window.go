package flexui

import "fmt"

// defaultWindowPadding surrounds the content of a window.
var defaultWindowPadding = PadAll(Pixels(5))

// WindowParams configures a window without tabs.
type WindowParams struct {
	Title string
	// Width and Height are the initial size in pixels.
	Width, Height int
	// Bounds the user can resize the window to. Unset bounds default to the
	// initial size.
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int

	// Padding around the content defaults to 5px on every side.
	Padding Padding
	// Spacing between content elements defaults to 3px.
	Spacing Scale
	// Direction defaults to Column.
	Direction Direction
	Content   []WidgetCreator

	OnOpen   func()
	OnUpdate func()
	OnClose  func()
}

// windowShape holds the parameters a plain and a tabbed window share.
type windowShape struct {
	title                string
	width, height        int
	minWidth, maxWidth   int
	minHeight, maxHeight int
	padding              Padding
	spacing              Scale
	direction            Direction
	onOpen               func()
	onUpdate             func()
	onClose              func()
}

func (p WindowParams) shape() windowShape {
	return windowShape{
		title: p.Title, width: p.Width, height: p.Height,
		minWidth: p.MinWidth, maxWidth: p.MaxWidth,
		minHeight: p.MinHeight, maxHeight: p.MaxHeight,
		padding: p.Padding, spacing: p.Spacing, direction: p.Direction,
		onOpen: p.OnOpen, onUpdate: p.OnUpdate, onClose: p.OnClose,
	}
}

// newTemplate validates the shape and creates a template with an empty root.
func newTemplate(op string, s windowShape, top int, opts []TemplateOption) (*WindowTemplate, *BuildOutput, error) {
	if s.width <= 0 || s.height <= 0 {
		return nil, nil, configError(op, "window size %dx%d must be positive", s.width, s.height)
	}
	minW, maxW := orDefault(s.minWidth, s.width), orDefault(s.maxWidth, s.width)
	minH, maxH := orDefault(s.minHeight, s.height), orDefault(s.maxHeight, s.height)
	if minW > maxW {
		return nil, nil, configError(op, "minimum width %d is larger than maximum width %d", minW, maxW)
	}
	if minH > maxH {
		return nil, nil, configError(op, "minimum height %d is larger than maximum height %d", minH, maxH)
	}

	padding := s.padding
	if padding == (Padding{}) {
		padding = defaultWindowPadding
	}
	if err := padding.Validate(); err != nil {
		return nil, nil, wrapConfig(op, err)
	}
	if err := s.spacing.Validate(); err != nil {
		return nil, nil, configError(op, "spacing: %v", err)
	}

	t := &WindowTemplate{
		desc: WindowDesc{
			Title:     s.title,
			Width:     min(max(s.width, minW), maxW),
			Height:    min(max(s.height, minH), maxH),
			MinWidth:  minW,
			MaxWidth:  maxW,
			MinHeight: minH,
			MaxHeight: maxH,
		},
		padding: padding,
		top:     top,
		binder:  NewBinder(),
	}
	t.ctx = &WindowContext{t: t}
	t.width, t.height = t.desc.Width, t.desc.Height
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, nil, &Error{Op: op, Kind: KindConfiguration, Err: err}
		}
	}

	out := newBuildOutput(t.binder, t.ctx, &t.widgets, &t.events)
	t.root = newContainer(out, Item{})
	t.root.axis = s.direction
	t.root.spacing = s.spacing.Or(defaultSpacing)

	hook := func(event WindowEvent, fn func()) {
		if fn != nil {
			out.On(event, func(*WindowContext) { fn() })
		}
	}
	hook(EventOpen, s.onOpen)
	hook(EventUpdate, s.onUpdate)
	hook(EventClose, s.onClose)
	return t, out, nil
}

func orDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

// Window builds a window template from params. Any error in the content
// aborts the build; no template is returned.
//
// Example:
//
//	count := flexui.NewStore(0)
//	tmpl, err := flexui.Window(flexui.WindowParams{
//	    Title: "Counter", Width: 200, Height: 100,
//	    Content: []flexui.WidgetCreator{
//	        flexui.Label(flexui.LabelParams{Text: flexui.Bind(flexui.Compute(count, strconv.Itoa))}),
//	        flexui.Spinner(flexui.SpinnerParams{Value: flexui.BindTwoWay(count)}),
//	    },
//	})
func Window(params WindowParams, opts ...TemplateOption) (*WindowTemplate, error) {
	const op = "flexui.Window"
	t, out, err := newTemplate(op, params.shape(), titleBarHeight, opts)
	if err != nil {
		return nil, err
	}
	if t.root.children, err = buildAll(params.Content, t.root, out); err != nil {
		return nil, fmt.Errorf("building window %q: %w", params.Title, err)
	}
	return t, nil
}
