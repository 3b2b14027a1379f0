package flexui

// TextBoxParams configures an editable line of text.
type TextBoxParams struct {
	ElementParams
	// Text receives user edits when bound with BindTwoWay.
	Text Bindable[string]
	// MaxLength limits the text the user can type; zero means no limit.
	MaxLength int
	OnChange  func(text string)
}

// TextBox creates an editable line of text.
func TextBox(params TextBoxParams) WidgetCreator {
	return func(parent Parent, out *BuildOutput) (Element, error) {
		if params.MaxLength < 0 {
			return nil, configError("flexui.TextBox", "max length %d must not be negative", params.MaxLength)
		}
		desc := &TextBoxWidget{MaxLength: params.MaxLength}
		c, err := newControl("flexui.TextBox", TypeTextBox, desc, parent, out, params.ElementParams, Weight(1), lineHeight)
		if err != nil {
			return nil, err
		}
		AddTwoWayBinding(out.Binder, desc, params.Text,
			func(w *TextBoxWidget, v string) { w.Text = v },
			func(w *TextBoxWidget, fn func(string)) { w.OnChange = fn },
			params.OnChange,
		)
		return c, nil
	}
}
