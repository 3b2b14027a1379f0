package flexui

// Default sizes of single line controls.
var (
	buttonHeight = Pixels(15)
	lineHeight   = Pixels(14)
)

// ButtonParams configures a button.
type ButtonParams struct {
	ElementParams
	Text Bindable[string]
	// Border draws a frame around the button.
	Border    bool
	IsPressed Bindable[bool]
	OnClick   func()
}

// Button creates a push button.
func Button(params ButtonParams) WidgetCreator {
	return func(parent Parent, out *BuildOutput) (Element, error) {
		desc := &ButtonWidget{Border: params.Border, OnClick: params.OnClick}
		c, err := newControl("flexui.Button", TypeButton, desc, parent, out, params.ElementParams, Weight(1), buttonHeight)
		if err != nil {
			return nil, err
		}
		AddBinding(out.Binder, desc, params.Text, func(w *ButtonWidget, v string) { w.Text = v })
		AddBinding(out.Binder, desc, params.IsPressed, func(w *ButtonWidget, v bool) { w.IsPressed = v })
		return c, nil
	}
}

// ToggleParams configures a button that stays pressed until clicked again.
type ToggleParams struct {
	ElementParams
	Text   Bindable[string]
	Border bool
	// IsPressed receives the new state when bound with BindTwoWay.
	IsPressed Bindable[bool]
	OnChange  func(pressed bool)
}

// Toggle creates a button that flips its pressed state on every click.
func Toggle(params ToggleParams) WidgetCreator {
	return func(parent Parent, out *BuildOutput) (Element, error) {
		desc := &ButtonWidget{Border: params.Border}
		c, err := newControl("flexui.Toggle", TypeButton, desc, parent, out, params.ElementParams, Weight(1), buttonHeight)
		if err != nil {
			return nil, err
		}

		// Without a two-way store the toggle keeps its own state.
		pressed := params.IsPressed
		if !pressed.IsStore() {
			pressed = BindTwoWay(NewStore(Read(pressed)))
		}

		AddBinding(out.Binder, desc, params.Text, func(w *ButtonWidget, v string) { w.Text = v })
		AddBinding(out.Binder, desc, pressed, func(w *ButtonWidget, v bool) { w.IsPressed = v })
		desc.OnClick = func() {
			next := !Read(pressed)
			pressed.writeBack(next)
			if params.OnChange != nil {
				params.OnChange(next)
			}
		}
		return c, nil
	}
}
