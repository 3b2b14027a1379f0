package flexui

import (
	"github.com/grindlemire/flexui/internal/debug"
	"github.com/grindlemire/flexui/internal/layout"
)

// ListViewColumnParams configures one column of a list view.
type ListViewColumnParams struct {
	Header  string
	Tooltip string
	CanSort bool
	// Width of the column within the list, 1w by default.
	Width Scale
}

// ListViewParams configures a list view.
type ListViewParams struct {
	ElementParams
	// Columns adds headers. Without columns the list has one unnamed column.
	Columns []ListViewColumnParams
	Items   Bindable[[]ListViewItem]
	// Scrollbars defaults to vertical.
	Scrollbars ScrollbarType
	CanSelect  bool
	IsStriped  bool
	// SelectedCell receives the clicked cell when bound with BindTwoWay.
	SelectedCell Bindable[*RowColumn]
	OnHighlight  func(row, column int)
	OnClick      func(row, column int)
}

type listViewControl struct {
	*control[*ListViewWidget]
	columns []ListViewColumn
	// widths is set when the columns are sized by the layout engine.
	widths []Item
}

// ListView creates a list of rows with optional column headers.
//
// Columns that are all pixel sized or all weighted are sized by the host.
// Any other mix, or any percentage, makes the list compute every column's
// pixel width itself whenever its own width changes.
func ListView(params ListViewParams) WidgetCreator {
	return func(parent Parent, out *BuildOutput) (Element, error) {
		const op = "flexui.ListView"
		desc := &ListViewWidget{
			ShowColumnHeaders: len(params.Columns) > 0,
			Scrollbars:        params.Scrollbars,
			CanSelect:         params.CanSelect,
			IsStriped:         params.IsStriped,
			OnHighlight:       params.OnHighlight,
		}
		c, err := newControl(op, TypeListView, desc, parent, out, params.ElementParams, Weight(1), Weight(1))
		if err != nil {
			return nil, err
		}
		lv := &listViewControl{control: c}
		if err := lv.parseColumns(op, params.Columns); err != nil {
			return nil, err
		}
		desc.Columns = append([]ListViewColumn(nil), lv.columns...)

		b := out.Binder
		AddBinding(b, desc, params.Items, func(w *ListViewWidget, v []ListViewItem) { w.Items = v })
		AddBinding(b, desc, params.SelectedCell, func(w *ListViewWidget, v *RowColumn) { w.SelectedCell = v })

		selected := params.SelectedCell
		var onClick func(*RowColumn)
		if params.OnClick != nil {
			onClick = func(cell *RowColumn) { params.OnClick(cell.Row, cell.Column) }
		}
		AddCallbackBinding(b, desc, selected,
			func(w *ListViewWidget, fn func(RowColumn)) {
				w.OnClick = func(row, column int) { fn(RowColumn{Row: row, Column: column}) }
			},
			// Clicking the same cell again keeps the previous value so a
			// bound store does not notify.
			func(cell RowColumn) *RowColumn {
				if last := Read(selected); last != nil && *last == cell {
					return last
				}
				return &cell
			},
			onClick,
		)
		return lv, nil
	}
}

func (lv *listViewControl) parseColumns(op string, params []ListViewColumnParams) error {
	if len(params) == 0 {
		return nil
	}

	lv.columns = make([]ListViewColumn, len(params))
	widths := make([]Scale, len(params))
	mixed := false
	for i, p := range params {
		if err := p.Width.Validate(); err != nil {
			return configError(op, "column %d width: %v", i, err)
		}
		widths[i] = p.Width.Or(Weight(1))
		lv.columns[i] = ListViewColumn{Header: p.Header, HeaderTooltip: p.Tooltip, CanSort: p.CanSort}
		if i > 0 && widths[i].Unit != widths[0].Unit {
			mixed = true
		}
	}

	if mixed || widths[0].Unit == UnitPercent {
		lv.widths = make([]Item, len(widths))
		for i, w := range widths {
			lv.widths[i] = Item{Width: w}
		}
		return nil
	}

	for i, w := range widths {
		if w.Unit == UnitPixel {
			lv.columns[i].Width = int(w.Amount)
		} else {
			lv.columns[i].RatioWidth = w.Amount
		}
	}
	return nil
}

// Layout places the list and, for columns sized by the layout engine, sizes
// the columns when the list's width changed.
func (lv *listViewControl) Layout(area Rect) {
	if lv.widths != nil && lv.desc.Width != area.Width {
		layout.Flexible(lv.widths, area, layout.Horizontal, Pixels(0), func(i int, r Rect) {
			lv.columns[i].Width = r.Width
		})
		debug.Log("listview(%s): manual column widths for width %d", lv.Name(), area.Width)
		columns := lv.columns
		update(lv.ctx, lv.desc, func(w *ListViewWidget) {
			w.Columns = append([]ListViewColumn(nil), columns...)
		})
	}
	lv.control.Layout(area)
}
