package flexui

// CheckboxParams configures a checkbox.
type CheckboxParams struct {
	ElementParams
	Text Bindable[string]
	// IsChecked receives user edits when bound with BindTwoWay.
	IsChecked Bindable[bool]
	OnChange  func(checked bool)
}

// Checkbox creates a labelled checkbox.
func Checkbox(params CheckboxParams) WidgetCreator {
	return func(parent Parent, out *BuildOutput) (Element, error) {
		desc := &CheckboxWidget{}
		c, err := newControl("flexui.Checkbox", TypeCheckbox, desc, parent, out, params.ElementParams, Weight(1), lineHeight)
		if err != nil {
			return nil, err
		}
		AddBinding(out.Binder, desc, params.Text, func(w *CheckboxWidget, v string) { w.Text = v })
		AddTwoWayBinding(out.Binder, desc, params.IsChecked,
			func(w *CheckboxWidget, v bool) { w.IsChecked = v },
			func(w *CheckboxWidget, fn func(bool)) { w.OnChange = fn },
			params.OnChange,
		)
		return c, nil
	}
}
