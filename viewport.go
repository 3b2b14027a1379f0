package flexui

// ViewportParams configures a viewport.
type ViewportParams struct {
	ElementParams
	// Target is the world position the viewport centres on. The position is
	// read again on every update tick, so it may be changed in place.
	Target          Bindable[*Coords]
	Rotation        Bindable[int]
	Zoom            Bindable[int]
	VisibilityFlags Bindable[ViewportFlags]
}

type viewportControl struct {
	*control[*ViewportWidget]
	target Bindable[*Coords]
}

// Viewport creates a view into the host's world.
func Viewport(params ViewportParams) WidgetCreator {
	return func(parent Parent, out *BuildOutput) (Element, error) {
		desc := &ViewportWidget{}
		c, err := newControl("flexui.Viewport", TypeViewport, desc, parent, out, params.ElementParams, Weight(1), Weight(1))
		if err != nil {
			return nil, err
		}
		v := &viewportControl{control: c, target: params.Target}

		b := out.Binder
		AddBinding(b, desc, params.Rotation, func(w *ViewportWidget, r int) { w.Viewport.Rotation = r })
		AddBinding(b, desc, params.Zoom, func(w *ViewportWidget, z int) { w.Viewport.Zoom = z })
		AddBinding(b, desc, params.VisibilityFlags, func(w *ViewportWidget, f ViewportFlags) { w.Viewport.VisibilityFlags = f })
		AddBinding(b, desc, params.Target, func(w *ViewportWidget, t *Coords) { centreOn(w, t) })

		if params.Target.IsSet() {
			out.On(EventUpdate, func(ctx *WindowContext) {
				target := Read(v.target)
				update(ctx, v.desc, func(w *ViewportWidget) { centreOn(w, target) })
			})
		}
		return v, nil
	}
}

// Layout places the viewport and keeps it centred on its target.
func (v *viewportControl) Layout(area Rect) {
	v.control.Layout(area)
	if v.target.IsSet() {
		target := Read(v.target)
		update(v.ctx, v.desc, func(w *ViewportWidget) { centreOn(w, target) })
	}
}

// centreOn moves the viewport so target is in its middle.
func centreOn(w *ViewportWidget, target *Coords) {
	if target == nil {
		return
	}
	w.Viewport.Left = target.X - w.Width/2
	w.Viewport.Bottom = target.Y - w.Height/2
}
