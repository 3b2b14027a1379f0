package flexui

// LabelParams configures a label.
type LabelParams struct {
	ElementParams
	Text      Bindable[string]
	Alignment TextAlign
}

// Label creates a line of text.
func Label(params LabelParams) WidgetCreator {
	return func(parent Parent, out *BuildOutput) (Element, error) {
		desc := &LabelWidget{TextAlign: params.Alignment}
		c, err := newControl("flexui.Label", TypeLabel, desc, parent, out, params.ElementParams, Weight(1), lineHeight)
		if err != nil {
			return nil, err
		}
		AddBinding(out.Binder, desc, params.Text, func(w *LabelWidget, v string) { w.Text = v })
		return c, nil
	}
}
