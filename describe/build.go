package describe

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/flexui"
)

// builder turns content nodes into widget creators. It is shared by the
// static content and every tab of a description so they resolve the same
// stores.
type builder struct {
	stores *Stores
}

type creatorFunc func(b *builder, p *props) (flexui.WidgetCreator, error)

var kinds map[string]creatorFunc

func init() {
	kinds = map[string]creatorFunc{
		"label":      (*builder).label,
		"button":     (*builder).button,
		"toggle":     (*builder).toggle,
		"checkbox":   (*builder).checkbox,
		"textbox":    (*builder).textbox,
		"spinner":    (*builder).spinner,
		"dropdown":   (*builder).dropdown,
		"listview":   (*builder).listview,
		"viewport":   (*builder).viewport,
		"box":        (*builder).box,
		"horizontal": (*builder).horizontal,
		"vertical":   (*builder).vertical,
		"flexible":   (*builder).flexible,
		"absolute":   (*builder).absolute,
	}
}

// Kinds returns the control names a description may use.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (b *builder) creators(nodes []yaml.Node) ([]flexui.WidgetCreator, error) {
	out := make([]flexui.WidgetCreator, 0, len(nodes))
	for i := range nodes {
		c, err := b.creator(&nodes[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (b *builder) creator(n *yaml.Node) (flexui.WidgetCreator, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return nil, fmt.Errorf("line %d: content entries must be a map with one control name", n.Line)
	}
	kind := n.Content[0].Value
	create, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("line %d: unknown control %q", n.Content[0].Line, kind)
	}

	body := n.Content[1]
	// A bare list is shorthand for a container's content.
	if body.Kind == yaml.SequenceNode && isContainer(kind) {
		body = &yaml.Node{
			Kind: yaml.MappingNode, Tag: "!!map", Line: body.Line,
			Content: []*yaml.Node{{Kind: yaml.ScalarNode, Tag: "!!str", Value: "content", Line: body.Line}, body},
		}
	}
	p, err := newProps(kind, body)
	if err != nil {
		return nil, err
	}
	c, err := create(b, p)
	if err != nil {
		return nil, err
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return c, nil
}

func isContainer(kind string) bool {
	switch kind {
	case "horizontal", "vertical", "flexible", "absolute", "box":
		return true
	}
	return false
}

func (b *builder) layoutParams(p *props) (flexui.LayoutParams, error) {
	var (
		lp  flexui.LayoutParams
		err error
	)
	if lp.Width, err = b.scale(p, "width"); err != nil {
		return lp, err
	}
	if lp.Height, err = b.scale(p, "height"); err != nil {
		return lp, err
	}
	if lp.Padding, err = b.padding(p); err != nil {
		return lp, err
	}
	for _, f := range []struct {
		key string
		dst *int
	}{
		{"minWidth", &lp.MinWidth}, {"maxWidth", &lp.MaxWidth},
		{"minHeight", &lp.MinHeight}, {"maxHeight", &lp.MaxHeight},
		{"x", &lp.X}, {"y", &lp.Y},
	} {
		if *f.dst, err = plain(p, f.key, 0); err != nil {
			return lp, err
		}
	}
	return lp, nil
}

func (b *builder) element(p *props) (flexui.ElementParams, error) {
	lp, err := b.layoutParams(p)
	if err != nil {
		return flexui.ElementParams{}, err
	}
	ep := flexui.ElementParams{
		Width: lp.Width, Height: lp.Height, Padding: lp.Padding,
		MinWidth: lp.MinWidth, MaxWidth: lp.MaxWidth,
		MinHeight: lp.MinHeight, MaxHeight: lp.MaxHeight,
		X: lp.X, Y: lp.Y,
	}
	if ep.Tooltip, err = b.text(p, "tooltip"); err != nil {
		return ep, err
	}
	if ep.Disabled, err = b.boolean(p, "disabled", false); err != nil {
		return ep, err
	}
	if ep.Visibility, err = b.visibility(p); err != nil {
		return ep, err
	}
	return ep, nil
}

func (b *builder) label(p *props) (flexui.WidgetCreator, error) {
	ep, err := b.element(p)
	if err != nil {
		return nil, err
	}
	text, err := b.text(p, "text")
	if err != nil {
		return nil, err
	}
	align, err := plain(p, "align", "left")
	if err != nil {
		return nil, err
	}
	params := flexui.LabelParams{ElementParams: ep, Text: text}
	switch strings.ToLower(align) {
	case "left":
	case "centred", "centered", "center":
		params.Alignment = flexui.AlignCentred
	default:
		return nil, p.errorf(nil, "unknown alignment %q", align)
	}
	return flexui.Label(params), nil
}

func (b *builder) button(p *props) (flexui.WidgetCreator, error) {
	ep, err := b.element(p)
	if err != nil {
		return nil, err
	}
	text, err := b.text(p, "text")
	if err != nil {
		return nil, err
	}
	border, err := plain(p, "border", false)
	if err != nil {
		return nil, err
	}
	pressed, err := b.boolean(p, "pressed", false)
	if err != nil {
		return nil, err
	}
	return flexui.Button(flexui.ButtonParams{ElementParams: ep, Text: text, Border: border, IsPressed: pressed}), nil
}

func (b *builder) toggle(p *props) (flexui.WidgetCreator, error) {
	ep, err := b.element(p)
	if err != nil {
		return nil, err
	}
	text, err := b.text(p, "text")
	if err != nil {
		return nil, err
	}
	border, err := plain(p, "border", false)
	if err != nil {
		return nil, err
	}
	pressed, err := b.boolean(p, "pressed", true)
	if err != nil {
		return nil, err
	}
	return flexui.Toggle(flexui.ToggleParams{ElementParams: ep, Text: text, Border: border, IsPressed: pressed}), nil
}

func (b *builder) checkbox(p *props) (flexui.WidgetCreator, error) {
	ep, err := b.element(p)
	if err != nil {
		return nil, err
	}
	text, err := b.text(p, "text")
	if err != nil {
		return nil, err
	}
	checked, err := b.boolean(p, "checked", true)
	if err != nil {
		return nil, err
	}
	return flexui.Checkbox(flexui.CheckboxParams{ElementParams: ep, Text: text, IsChecked: checked}), nil
}

func (b *builder) textbox(p *props) (flexui.WidgetCreator, error) {
	ep, err := b.element(p)
	if err != nil {
		return nil, err
	}
	text, err := b.editableText(p, "text")
	if err != nil {
		return nil, err
	}
	maxLength, err := plain(p, "maxLength", 0)
	if err != nil {
		return nil, err
	}
	return flexui.TextBox(flexui.TextBoxParams{ElementParams: ep, Text: text, MaxLength: maxLength}), nil
}

func (b *builder) spinner(p *props) (flexui.WidgetCreator, error) {
	ep, err := b.element(p)
	if err != nil {
		return nil, err
	}
	params := flexui.SpinnerParams{ElementParams: ep}
	if params.Value, err = b.integer(p, "value", true); err != nil {
		return nil, err
	}
	if params.Minimum, err = b.integer(p, "minimum", false); err != nil {
		return nil, err
	}
	if params.Maximum, err = b.integer(p, "maximum", false); err != nil {
		return nil, err
	}
	if params.Step, err = plain(p, "step", 0); err != nil {
		return nil, err
	}
	mode, err := plain(p, "wrapMode", "")
	if err != nil {
		return nil, err
	}
	if params.WrapMode, err = flexui.ParseWrapMode(mode); err != nil {
		return nil, p.errorf(nil, "%v", err)
	}
	format, err := plain(p, "format", "")
	if err != nil {
		return nil, err
	}
	if format != "" {
		if !strings.Contains(format, "%d") {
			return nil, p.errorf(nil, "format %q must contain %%d", format)
		}
		params.Format = func(value int) string { return fmt.Sprintf(format, value) }
	}
	return flexui.Spinner(params), nil
}

func (b *builder) dropdown(p *props) (flexui.WidgetCreator, error) {
	ep, err := b.element(p)
	if err != nil {
		return nil, err
	}
	params := flexui.DropdownParams{ElementParams: ep}
	if params.Items, err = b.list(p, "items"); err != nil {
		return nil, err
	}
	if params.SelectedIndex, err = b.integer(p, "selected", true); err != nil {
		return nil, err
	}
	mode, err := plain(p, "autoDisable", "")
	if err != nil {
		return nil, err
	}
	if params.AutoDisable, err = flexui.ParseDropdownDisableMode(mode); err != nil {
		return nil, p.errorf(nil, "%v", err)
	}
	if params.DisabledMessage, err = plain(p, "disabledMessage", ""); err != nil {
		return nil, err
	}
	return flexui.Dropdown(params), nil
}

type columnDocument struct {
	Header  string `yaml:"header"`
	Tooltip string `yaml:"tooltip"`
	CanSort bool   `yaml:"canSort"`
	Width   any    `yaml:"width"`
}

func (b *builder) listview(p *props) (flexui.WidgetCreator, error) {
	ep, err := b.element(p)
	if err != nil {
		return nil, err
	}
	params := flexui.ListViewParams{ElementParams: ep}

	columns, err := plain[[]columnDocument](p, "columns", nil)
	if err != nil {
		return nil, err
	}
	for i, cd := range columns {
		width, err := flexui.ParseScaleValue(cd.Width)
		if err != nil {
			return nil, p.errorf(nil, "columns[%d]: width: %v", i, err)
		}
		params.Columns = append(params.Columns, flexui.ListViewColumnParams{
			Header: cd.Header, Tooltip: cd.Tooltip, CanSort: cd.CanSort, Width: width,
		})
	}

	if params.Items, err = b.rows(p, "items"); err != nil {
		return nil, err
	}
	scrollbars, err := plain(p, "scrollbars", "vertical")
	if err != nil {
		return nil, err
	}
	if params.Scrollbars, err = parseScrollbars(scrollbars); err != nil {
		return nil, p.errorf(nil, "%v", err)
	}
	if params.CanSelect, err = plain(p, "canSelect", false); err != nil {
		return nil, err
	}
	if params.IsStriped, err = plain(p, "isStriped", false); err != nil {
		return nil, err
	}
	return flexui.ListView(params), nil
}

// rows resolves list view items. A list store gives one single cell row per
// entry.
func (b *builder) rows(p *props, key string) (flexui.Bindable[[]flexui.ListViewItem], error) {
	var zero flexui.Bindable[[]flexui.ListViewItem]
	n := p.take(key)
	if n == nil {
		return zero, nil
	}
	name, ok := reference(n)
	if !ok {
		var rows []flexui.ListViewItem
		if err := n.Decode(&rows); err != nil {
			return zero, p.errorf(n, "%s must be a list of rows: %v", key, err)
		}
		return flexui.Value(rows), nil
	}
	s, err := b.store(p, n, name)
	if err != nil {
		return zero, err
	}
	st, ok := s.(*flexui.Store[[]string])
	if !ok {
		return zero, p.errorf(n, "%s needs a list store, %q is %s", key, name, storeType(s))
	}
	return flexui.Bind(flexui.Compute(st, func(items []string) []flexui.ListViewItem {
		rows := make([]flexui.ListViewItem, len(items))
		for i, item := range items {
			rows[i] = flexui.ListViewItem{item}
		}
		return rows
	})), nil
}

func parseScrollbars(s string) (flexui.ScrollbarType, error) {
	switch strings.ToLower(s) {
	case "vertical":
		return flexui.ScrollbarVertical, nil
	case "none":
		return flexui.ScrollbarNone, nil
	case "horizontal":
		return flexui.ScrollbarHorizontal, nil
	case "both":
		return flexui.ScrollbarBoth, nil
	default:
		return flexui.ScrollbarVertical, fmt.Errorf("unknown scrollbars %q", s)
	}
}

func (b *builder) viewport(p *props) (flexui.WidgetCreator, error) {
	ep, err := b.element(p)
	if err != nil {
		return nil, err
	}
	params := flexui.ViewportParams{ElementParams: ep}
	target, err := plain[*flexui.Coords](p, "target", nil)
	if err != nil {
		return nil, err
	}
	if target != nil {
		params.Target = flexui.Value(target)
	}
	if params.Rotation, err = b.integer(p, "rotation", false); err != nil {
		return nil, err
	}
	if params.Zoom, err = b.integer(p, "zoom", false); err != nil {
		return nil, err
	}
	return flexui.Viewport(params), nil
}

// content resolves the child list of a container.
func (b *builder) content(p *props) ([]flexui.WidgetCreator, error) {
	n := p.take("content")
	if n == nil {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, p.errorf(n, "content must be a list")
	}
	nodes := make([]yaml.Node, len(n.Content))
	for i, c := range n.Content {
		nodes[i] = *c
	}
	return b.creators(nodes)
}

func (b *builder) box(p *props) (flexui.WidgetCreator, error) {
	ep, err := b.element(p)
	if err != nil {
		return nil, err
	}
	text, err := b.text(p, "text")
	if err != nil {
		return nil, err
	}
	content, err := b.content(p)
	if err != nil {
		return nil, err
	}
	params := flexui.BoxParams{ElementParams: ep, Text: text}
	switch len(content) {
	case 0:
		return nil, p.errorf(nil, "box needs content")
	case 1:
		params.Content = content[0]
	default:
		params.Content = flexui.Vertical(content...)
	}
	return flexui.Box(params), nil
}

func (b *builder) horizontal(p *props) (flexui.WidgetCreator, error) {
	return b.flexibleAlong(p, flexui.Row)
}

func (b *builder) vertical(p *props) (flexui.WidgetCreator, error) {
	return b.flexibleAlong(p, flexui.Column)
}

func (b *builder) flexible(p *props) (flexui.WidgetCreator, error) {
	name, err := plain(p, "direction", "")
	if err != nil {
		return nil, err
	}
	direction, err := parseDirection(name)
	if err != nil {
		return nil, p.errorf(nil, "%v", err)
	}
	return b.flexibleAlong(p, direction)
}

func (b *builder) flexibleAlong(p *props, direction flexui.Direction) (flexui.WidgetCreator, error) {
	lp, err := b.layoutParams(p)
	if err != nil {
		return nil, err
	}
	spacing, err := b.scale(p, "spacing")
	if err != nil {
		return nil, err
	}
	content, err := b.content(p)
	if err != nil {
		return nil, err
	}
	return flexui.Flexible(flexui.FlexibleParams{
		LayoutParams: lp, Content: content, Direction: direction, Spacing: spacing,
	}), nil
}

func (b *builder) absolute(p *props) (flexui.WidgetCreator, error) {
	lp, err := b.layoutParams(p)
	if err != nil {
		return nil, err
	}
	content, err := b.content(p)
	if err != nil {
		return nil, err
	}
	return flexui.Absolute(flexui.AbsoluteParams{LayoutParams: lp, Content: content}), nil
}
