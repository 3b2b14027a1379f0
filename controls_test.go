package flexui

import (
	"slices"
	"testing"
)

func openControl[W Widget](t *testing.T, create WidgetCreator) (*WindowTemplate, *MockWindow, W) {
	t.Helper()
	tmpl, window := openWindow(t, WindowParams{
		Width: 200, Height: 100,
		MinWidth: 100, MaxWidth: 400,
		Content: []WidgetCreator{create},
	})
	return tmpl, window, window.Widget(0).(W)
}

func TestLabel_CommonProperties(t *testing.T) {
	tooltip := NewStore("first")
	_, _, w := openControl[*LabelWidget](t, Label(LabelParams{
		ElementParams: ElementParams{
			Tooltip:  Bind[string](tooltip),
			Disabled: Value(true),
		},
		Text:      Value("Name"),
		Alignment: AlignCentred,
	}))

	if w.Text != "Name" || w.TextAlign != AlignCentred {
		t.Errorf("Text = %q, TextAlign = %v", w.Text, w.TextAlign)
	}
	if !w.IsDisabled || !w.IsVisible {
		t.Errorf("IsDisabled = %v, IsVisible = %v, want true, true", w.IsDisabled, w.IsVisible)
	}
	if w.Type != TypeLabel {
		t.Errorf("Type = %q, want %q", w.Type, TypeLabel)
	}

	tooltip.Set("second")
	if w.Tooltip != "second" {
		t.Errorf("Tooltip = %q, want second", w.Tooltip)
	}
}

func TestCheckbox_TwoWay(t *testing.T) {
	checked := NewStore(false)
	var changes []bool
	_, _, w := openControl[*CheckboxWidget](t, Checkbox(CheckboxParams{
		Text:      Value("Enabled"),
		IsChecked: BindTwoWay(checked),
		OnChange:  func(v bool) { changes = append(changes, v) },
	}))

	w.OnChange(true)

	if !checked.Get() {
		t.Error("store was not updated by the user edit")
	}
	if !w.IsChecked {
		t.Error("live widget does not show the new state")
	}
	if len(changes) != 1 || !changes[0] {
		t.Errorf("changes = %v, want [true]", changes)
	}

	checked.Set(false)
	if w.IsChecked {
		t.Error("live widget did not follow the store")
	}
}

func TestToggle(t *testing.T) {
	type tc struct {
		pressed func() (Bindable[bool], *Store[bool])
	}

	tests := map[string]tc{
		"keeps its own state": {
			pressed: func() (Bindable[bool], *Store[bool]) { return Bindable[bool]{}, nil },
		},
		"writes to a two way store": {
			pressed: func() (Bindable[bool], *Store[bool]) {
				s := NewStore(false)
				return BindTwoWay(s), s
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pressed, store := tt.pressed()
			var changes []bool
			_, _, w := openControl[*ButtonWidget](t, Toggle(ToggleParams{
				IsPressed: pressed,
				OnChange:  func(v bool) { changes = append(changes, v) },
			}))

			w.OnClick()
			w.OnClick()
			w.OnClick()

			if !w.IsPressed {
				t.Error("IsPressed = false after three clicks")
			}
			if !slices.Equal(changes, []bool{true, false, true}) {
				t.Errorf("changes = %v, want [true false true]", changes)
			}
			if store != nil && !store.Get() {
				t.Error("store = false after three clicks")
			}
		})
	}
}

func TestButton(t *testing.T) {
	clicks := 0
	pressed := NewStore(false)
	_, _, w := openControl[*ButtonWidget](t, Button(ButtonParams{
		Text:      Value("Go"),
		Border:    true,
		IsPressed: Bind[bool](pressed),
		OnClick:   func() { clicks++ },
	}))

	w.OnClick()
	pressed.Set(true)

	if clicks != 1 || !w.IsPressed || !w.Border || w.Text != "Go" {
		t.Errorf("clicks = %d, IsPressed = %v, Border = %v, Text = %q", clicks, w.IsPressed, w.Border, w.Text)
	}
	if w.Height != 15 {
		t.Errorf("Height = %d, want 15", w.Height)
	}
}

func TestTextBox_TwoWay(t *testing.T) {
	text := NewStore("")
	var edits []string
	_, _, w := openControl[*TextBoxWidget](t, TextBox(TextBoxParams{
		Text:      BindTwoWay(text),
		MaxLength: 8,
		OnChange:  func(v string) { edits = append(edits, v) },
	}))

	w.OnChange("hello")

	if text.Get() != "hello" || w.Text != "hello" {
		t.Errorf("store = %q, live = %q, want hello", text.Get(), w.Text)
	}
	if w.MaxLength != 8 {
		t.Errorf("MaxLength = %d, want 8", w.MaxLength)
	}
	if !slices.Equal(edits, []string{"hello"}) {
		t.Errorf("edits = %v", edits)
	}
}

func TestDropdown_AutoDisable(t *testing.T) {
	type tc struct {
		mode         DropdownDisableMode
		items        []string
		message      string
		wantDisabled bool
		wantItems    []string
	}

	tests := map[string]tc{
		"empty disables with message": {
			mode: DropdownDisableEmpty, message: "Nothing here",
			wantDisabled: true, wantItems: []string{"Nothing here"},
		},
		"empty without message": {
			mode:         DropdownDisableEmpty,
			wantDisabled: true,
		},
		"single item disables in single mode": {
			mode: DropdownDisableSingle, items: []string{"only"},
			wantDisabled: true, wantItems: []string{"only"},
		},
		"single item stays enabled in empty mode": {
			mode: DropdownDisableEmpty, items: []string{"only"},
			wantItems: []string{"only"},
		},
		"never disables": {
			mode: DropdownDisableNever, message: "unused",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, w := openControl[*DropdownWidget](t, Dropdown(DropdownParams{
				Items:           Value(tt.items),
				AutoDisable:     tt.mode,
				DisabledMessage: tt.message,
			}))
			if w.IsDisabled != tt.wantDisabled {
				t.Errorf("IsDisabled = %v, want %v", w.IsDisabled, tt.wantDisabled)
			}
			if !slices.Equal(w.Items, tt.wantItems) {
				t.Errorf("Items = %v, want %v", w.Items, tt.wantItems)
			}
		})
	}
}

func TestDropdown_Bindings(t *testing.T) {
	items := NewStore([]string{})
	selected := NewStore(1)
	disabled := NewStore(false)
	var changes []int

	_, _, w := openControl[*DropdownWidget](t, Dropdown(DropdownParams{
		ElementParams:   ElementParams{Disabled: Bind[bool](disabled)},
		Items:           Bind[[]string](items),
		SelectedIndex:   BindTwoWay(selected),
		DisabledMessage: "Loading",
		OnChange:        func(i int) { changes = append(changes, i) },
	}))

	if !w.IsDisabled || !slices.Equal(w.Items, []string{"Loading"}) || w.SelectedIndex != 0 {
		t.Fatalf("before items: disabled %v, items %v, selected %d", w.IsDisabled, w.Items, w.SelectedIndex)
	}

	items.Set([]string{"a", "b", "c"})
	if w.IsDisabled || !slices.Equal(w.Items, []string{"a", "b", "c"}) || w.SelectedIndex != 1 {
		t.Errorf("after items: disabled %v, items %v, selected %d", w.IsDisabled, w.Items, w.SelectedIndex)
	}

	w.OnChange(2)
	if selected.Get() != 2 || w.SelectedIndex != 2 {
		t.Errorf("store = %d, live = %d, want 2", selected.Get(), w.SelectedIndex)
	}
	if !slices.Equal(changes, []int{2}) {
		t.Errorf("changes = %v, want [2]", changes)
	}

	disabled.Set(true)
	if !w.IsDisabled || !slices.Equal(w.Items, []string{"Loading"}) {
		t.Errorf("user disabled: disabled %v, items %v", w.IsDisabled, w.Items)
	}
	disabled.Set(false)
	if w.IsDisabled || w.SelectedIndex != 2 {
		t.Errorf("re-enabled: disabled %v, selected %d", w.IsDisabled, w.SelectedIndex)
	}
}

func TestListView_Columns(t *testing.T) {
	type tc struct {
		widths    []Scale
		wantWidth []int
		wantRatio []float64
	}

	tests := map[string]tc{
		"pixel columns": {
			widths:    []Scale{Pixels(50), Pixels(80)},
			wantWidth: []int{50, 80},
			wantRatio: []float64{0, 0},
		},
		"weighted columns": {
			widths:    []Scale{Weight(1), Weight(2)},
			wantWidth: []int{0, 0},
			wantRatio: []float64{1, 2},
		},
		"default columns are weighted": {
			widths:    []Scale{{}, {}},
			wantWidth: []int{0, 0},
			wantRatio: []float64{1, 1},
		},
		"mixed columns are computed": {
			widths:    []Scale{Pixels(50), Weight(1)},
			wantWidth: []int{50, 140},
			wantRatio: []float64{0, 0},
		},
		"percent columns are computed": {
			widths:    []Scale{Percent(50), Percent(50)},
			wantWidth: []int{95, 95},
			wantRatio: []float64{0, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			columns := make([]ListViewColumnParams, len(tt.widths))
			for i, w := range tt.widths {
				columns[i] = ListViewColumnParams{Header: "col", Width: w}
			}
			_, _, w := openControl[*ListViewWidget](t, ListView(ListViewParams{Columns: columns}))

			if !w.ShowColumnHeaders {
				t.Error("ShowColumnHeaders = false with columns")
			}
			if len(w.Columns) != len(tt.widths) {
				t.Fatalf("got %d columns, want %d", len(w.Columns), len(tt.widths))
			}
			for i, c := range w.Columns {
				if c.Width != tt.wantWidth[i] || c.RatioWidth != tt.wantRatio[i] {
					t.Errorf("column %d = width %d ratio %v, want width %d ratio %v",
						i, c.Width, c.RatioWidth, tt.wantWidth[i], tt.wantRatio[i])
				}
			}
		})
	}
}

func TestListView_ComputedColumnsFollowResize(t *testing.T) {
	_, window, w := openControl[*ListViewWidget](t, ListView(ListViewParams{
		Columns: []ListViewColumnParams{{Width: Pixels(50)}, {Width: Weight(1)}},
	}))

	window.Resize(300, 100)
	window.Update()

	if w.Columns[0].Width != 50 || w.Columns[1].Width != 240 {
		t.Errorf("columns = %d, %d, want 50, 240", w.Columns[0].Width, w.Columns[1].Width)
	}
}

func TestListView_SelectedCell(t *testing.T) {
	cell := NewStore[*RowColumn](nil)
	notified := 0
	cell.Observe(func() { notified++ })
	var clicks []RowColumn

	_, _, w := openControl[*ListViewWidget](t, ListView(ListViewParams{
		Items:        Value([]ListViewItem{{"a", "1"}, {"b", "2"}, {"c", "3"}}),
		CanSelect:    true,
		SelectedCell: BindTwoWay(cell),
		OnClick:      func(row, column int) { clicks = append(clicks, RowColumn{Row: row, Column: column}) },
	}))

	w.OnClick(2, 1)
	first := cell.Get()
	if first == nil || *first != (RowColumn{Row: 2, Column: 1}) {
		t.Fatalf("SelectedCell = %v, want {2 1}", first)
	}
	if w.SelectedCell != first {
		t.Error("live widget does not show the selected cell")
	}

	w.OnClick(2, 1)
	if cell.Get() != first || notified != 1 {
		t.Errorf("same cell: pointer kept %v, notified %d, want true, 1", cell.Get() == first, notified)
	}

	w.OnClick(0, 0)
	if notified != 2 {
		t.Errorf("notified = %d, want 2", notified)
	}
	if len(clicks) != 3 {
		t.Errorf("clicks = %v, want 3", clicks)
	}
	if len(w.Items) != 3 || w.ShowColumnHeaders {
		t.Errorf("items = %d, headers = %v", len(w.Items), w.ShowColumnHeaders)
	}
}

func TestViewport_CentresOnTarget(t *testing.T) {
	target := &Coords{X: 100, Y: 200}
	rotation := NewStore(0)
	_, window, w := openControl[*ViewportWidget](t, Viewport(ViewportParams{
		Target:   Value(target),
		Rotation: Bind[int](rotation),
		Zoom:     Value(1),
	}))

	if w.Viewport.Left != 5 || w.Viewport.Bottom != 163 {
		t.Errorf("after open: left %d bottom %d, want 5 163", w.Viewport.Left, w.Viewport.Bottom)
	}

	target.X = 300
	window.Update()
	if w.Viewport.Left != 205 {
		t.Errorf("after update: left %d, want 205", w.Viewport.Left)
	}

	rotation.Set(2)
	if w.Viewport.Rotation != 2 || w.Viewport.Zoom != 1 {
		t.Errorf("rotation %d zoom %d, want 2 1", w.Viewport.Rotation, w.Viewport.Zoom)
	}
}

func TestViewport_TargetStore(t *testing.T) {
	target := NewStore(&Coords{X: 50, Y: 50})
	_, _, w := openControl[*ViewportWidget](t, Viewport(ViewportParams{Target: Bind[*Coords](target)}))

	target.Set(&Coords{X: 195, Y: 137})
	if w.Viewport.Left != 100 || w.Viewport.Bottom != 100 {
		t.Errorf("left %d bottom %d, want 100 100", w.Viewport.Left, w.Viewport.Bottom)
	}
}
