package flexui

import "github.com/grindlemire/flexui/internal/layout"

// boxInset is the space between a group box's frame and its content. The top
// leaves room for the title.
var boxInset = PadTRBL(Pixels(14), Pixels(5), Pixels(5), Pixels(5))

// BoxParams configures a titled frame around one element.
type BoxParams struct {
	ElementParams
	Text Bindable[string]
	// Content is placed inside the frame. Use a container for more than one
	// element.
	Content WidgetCreator
}

type boxControl struct {
	*control[*GroupBoxWidget]
	frame
	content Element
}

// Box creates a group box with content inside it.
func Box(params BoxParams) WidgetCreator {
	return func(parent Parent, out *BuildOutput) (Element, error) {
		const op = "flexui.Box"
		if params.Content == nil {
			return nil, configError(op, "box content is nil")
		}
		desc := &GroupBoxWidget{}
		c, err := newControl(op, TypeGroupBox, desc, parent, out, params.ElementParams, Weight(1), Weight(1))
		if err != nil {
			return nil, err
		}
		AddBinding(out.Binder, desc, params.Text, func(w *GroupBoxWidget, v string) { w.Text = v })

		box := &boxControl{control: c, frame: newFrame(out)}
		box.redo = box.layoutContent
		if box.content, err = params.Content(box, out); err != nil {
			return nil, err
		}
		return box, nil
	}
}

// Layout places the frame in area and the content inside the frame.
func (b *boxControl) Layout(area Rect) {
	b.control.Layout(area)
	b.layoutContent(layout.ApplyPadding(area, Auto(), Auto(), boxInset))
}

func (b *boxControl) layoutContent(area Rect) {
	b.laidOut(area)
	p := b.content.Placement()
	if p.Hidden {
		return
	}
	layout.Flexible([]Item{p.Item}, area, layout.Vertical, Pixels(0), func(_ int, r Rect) {
		b.content.Layout(r)
	})
}
