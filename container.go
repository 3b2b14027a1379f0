package flexui

import (
	"github.com/grindlemire/flexui/internal/debug"
	"github.com/grindlemire/flexui/internal/layout"
)

// defaultSpacing is the gap between children of a flexible container.
var defaultSpacing = Pixels(3)

// frame tracks the area a parent element was last laid out in so it can lay
// out its children again after Recalculate.
type frame struct {
	ctx    *WindowContext
	tab    int
	area   Rect
	placed bool
	dirty  bool
	redo   func(area Rect)
}

// Recalculate marks the frame dirty. The next redraw lays it out again in
// the area it last had.
func (f *frame) Recalculate() {
	if f.dirty {
		return
	}
	f.dirty = true
	f.ctx.markDirty(f)
}

func (f *frame) laidOut(area Rect) {
	f.area = area
	f.placed = true
	f.dirty = false
}

// container places its children next to each other or at absolute offsets.
type container struct {
	frame
	placement Placement
	axis      Direction
	spacing   Scale
	absolute  bool
	children  []Element
}

func newFrame(out *BuildOutput) frame {
	return frame{ctx: out.Context, tab: out.tab}
}

func newContainer(out *BuildOutput, it Item) *container {
	c := &container{frame: newFrame(out), placement: Placement{Item: it}}
	c.redo = c.Layout
	return c
}

func (c *container) Placement() Placement {
	return c.placement
}

// Layout places every child that is not hidden inside area.
func (c *container) Layout(area Rect) {
	c.laidOut(area)

	visible := make([]Element, 0, len(c.children))
	items := make([]Item, 0, len(c.children))
	for _, child := range c.children {
		p := child.Placement()
		if p.Hidden {
			continue
		}
		visible = append(visible, child)
		items = append(items, p.Item)
	}
	debug.Log("container.Layout: %d of %d children in %v", len(visible), len(c.children), area)

	apply := func(i int, r Rect) { visible[i].Layout(r) }
	if c.absolute {
		layout.Absolute(items, area, apply)
		return
	}
	layout.Flexible(items, area, c.axis, c.spacing, apply)
}

// FlexibleParams configures a container that places its children one after
// another.
type FlexibleParams struct {
	LayoutParams
	Content []WidgetCreator
	// Direction defaults to Column.
	Direction Direction
	// Spacing between children defaults to 3px.
	Spacing Scale
}

// Flexible creates a container that places its children along one axis.
func Flexible(params FlexibleParams) WidgetCreator {
	return func(parent Parent, out *BuildOutput) (Element, error) {
		it, err := parseItem("flexui.Flexible", params.item(), Weight(1), Weight(1))
		if err != nil {
			return nil, err
		}
		if err := params.Spacing.Validate(); err != nil {
			return nil, configError("flexui.Flexible", "spacing: %v", err)
		}
		c := newContainer(out, it)
		c.axis = params.Direction
		c.spacing = params.Spacing.Or(defaultSpacing)

		if c.children, err = buildAll(params.Content, c, out); err != nil {
			return nil, err
		}
		return c, nil
	}
}

// Horizontal places content left to right.
func Horizontal(content ...WidgetCreator) WidgetCreator {
	return Flexible(FlexibleParams{Content: content, Direction: Row})
}

// Vertical places content top to bottom.
func Vertical(content ...WidgetCreator) WidgetCreator {
	return Flexible(FlexibleParams{Content: content, Direction: Column})
}

// AbsoluteParams configures a container that places children at fixed offsets.
type AbsoluteParams struct {
	LayoutParams
	Content []WidgetCreator
}

// Absolute creates a container that places each child at its X and Y offset.
// Children may overlap.
func Absolute(params AbsoluteParams) WidgetCreator {
	return func(parent Parent, out *BuildOutput) (Element, error) {
		it, err := parseItem("flexui.Absolute", params.item(), Weight(1), Weight(1))
		if err != nil {
			return nil, err
		}
		c := newContainer(out, it)
		c.absolute = true

		if c.children, err = buildAll(params.Content, c, out); err != nil {
			return nil, err
		}
		return c, nil
	}
}
