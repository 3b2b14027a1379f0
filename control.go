package flexui

import (
	"fmt"
	"strings"

	"github.com/grindlemire/flexui/internal/debug"
)

// Visibility controls whether an element is drawn and whether it takes space.
type Visibility uint8

const (
	// VisibilityVisible draws the element.
	VisibilityVisible Visibility = iota
	// VisibilityHidden hides the element but keeps its space.
	VisibilityHidden
	// VisibilityNone hides the element and gives its space to its siblings.
	VisibilityNone
)

func (v Visibility) String() string {
	switch v {
	case VisibilityVisible:
		return "visible"
	case VisibilityHidden:
		return "hidden"
	case VisibilityNone:
		return "none"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// ParseVisibility parses "visible", "hidden" or "none".
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "visible", "":
		return VisibilityVisible, nil
	case "hidden":
		return VisibilityHidden, nil
	case "none":
		return VisibilityNone, nil
	default:
		return VisibilityVisible, fmt.Errorf("unknown visibility %q", s)
	}
}

// ElementParams are the options shared by all controls.
type ElementParams struct {
	// Width and Height default to a size that suits the control.
	Width, Height Scale
	Padding       Padding

	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int

	// X and Y are only used inside Absolute containers.
	X, Y int

	Tooltip    Bindable[string]
	Disabled   Bindable[bool]
	Visibility Bindable[Visibility]
}

// LayoutParams are the placement options of a container.
type LayoutParams struct {
	Width, Height Scale
	Padding       Padding

	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int

	X, Y int
}

func (p ElementParams) item() Item {
	return Item{
		Width: p.Width, Height: p.Height, Padding: p.Padding,
		MinWidth: p.MinWidth, MaxWidth: p.MaxWidth,
		MinHeight: p.MinHeight, MaxHeight: p.MaxHeight,
		X: p.X, Y: p.Y,
	}
}

func (p LayoutParams) item() Item {
	return Item{
		Width: p.Width, Height: p.Height, Padding: p.Padding,
		MinWidth: p.MinWidth, MaxWidth: p.MaxWidth,
		MinHeight: p.MinHeight, MaxHeight: p.MaxHeight,
		X: p.X, Y: p.Y,
	}
}

// parseItem validates an element's placement and fills in default sizes.
func parseItem(op string, it Item, defaultWidth, defaultHeight Scale) (Item, error) {
	for _, s := range []struct {
		name  string
		scale Scale
	}{{"width", it.Width}, {"height", it.Height}} {
		if err := s.scale.Validate(); err != nil {
			return Item{}, configError(op, "%s: %v", s.name, err)
		}
	}
	if err := it.Padding.Validate(); err != nil {
		return Item{}, wrapConfig(op, err)
	}
	for _, b := range []struct {
		name     string
		min, max int
	}{{"width", it.MinWidth, it.MaxWidth}, {"height", it.MinHeight, it.MaxHeight}} {
		if b.min < 0 || b.max < 0 {
			return Item{}, configError(op, "%s bounds must not be negative", b.name)
		}
		if b.max > 0 && b.min > b.max {
			return Item{}, configError(op, "minimum %s %d is larger than maximum %s %d", b.name, b.min, b.name, b.max)
		}
	}
	it.Width = it.Width.Or(defaultWidth)
	it.Height = it.Height.Or(defaultHeight)
	return it, nil
}

// control is the part every leaf control shares: its descriptor, placement
// and the bindings of the common properties.
type control[W Widget] struct {
	desc      W
	placement Placement
	ctx       *WindowContext
}

// newControl names desc, binds tooltip, disabled and visibility, and adds the
// descriptor to out.
func newControl[W Widget](op string, kind WidgetType, desc W, parent Parent, out *BuildOutput, p ElementParams, defaultWidth, defaultHeight Scale) (*control[W], error) {
	it, err := parseItem(op, p.item(), defaultWidth, defaultHeight)
	if err != nil {
		return nil, err
	}

	base := desc.Base()
	base.Type = kind
	base.Name = out.NextName(kind)
	base.IsVisible = true

	c := &control[W]{
		desc:      desc,
		placement: Placement{Item: it, Hidden: Read(p.Visibility) == VisibilityNone},
		ctx:       out.Context,
	}

	b := out.Binder
	AddBinding(b, desc, p.Tooltip, func(w W, v string) { w.Base().Tooltip = v })
	AddBinding(b, desc, p.Disabled, func(w W, v bool) { w.Base().IsDisabled = v })
	AddBinding(b, desc, p.Visibility, func(w W, v Visibility) { w.Base().IsVisible = v == VisibilityVisible })

	// Hiding with "none" frees the control's space, so its container has to
	// lay out again.
	AddWatch(b, p.Visibility, func(v Visibility) {
		skip := v == VisibilityNone
		if skip == c.placement.Hidden {
			return
		}
		debug.Log("control(%s:%s): skip changed from %v to %v", kind, base.Name, c.placement.Hidden, skip)
		c.placement.Hidden = skip
		parent.Recalculate()
		c.ctx.Redraw()
	})

	out.Add(desc)
	return c, nil
}

func (c *control[W]) Placement() Placement {
	return c.placement
}

func (c *control[W]) Layout(area Rect) {
	c.ctx.place(c.desc, area)
}

// Name returns the widget name of the control.
func (c *control[W]) Name() string {
	return c.desc.Base().Name
}

// Widget returns the control's descriptor.
func (c *control[W]) Widget() W {
	return c.desc
}
