package termhost

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/flexui"
)

// Theme colors
const (
	colorAccent    = "86"
	colorHighlight = "205"
	colorMuted     = "241"
	colorText      = "252"
)

var styles = struct {
	Frame    lipgloss.Style
	Help     lipgloss.Style
	Title    lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Normal   lipgloss.Style
	Focused  lipgloss.Style
	Pressed  lipgloss.Style
	Disabled lipgloss.Style
	Header   lipgloss.Style
	Stripe   lipgloss.Style
}{
	Frame: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorHighlight)),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	TabOn: lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(colorAccent)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText)),
	Focused: lipgloss.NewStyle().
		Reverse(true),
	Pressed: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)),
	Disabled: lipgloss.NewStyle().
		Faint(true),
	Header: lipgloss.NewStyle().
		Bold(true).
		Underline(true),
	Stripe: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
}

// style indexes the cell styles of a canvas.
type style uint8

const (
	styleNormal style = iota
	styleTitle
	styleTab
	styleTabOn
	styleFocused
	stylePressed
	styleDisabled
	styleHeader
	styleStripe
)

func (s style) styled() lipgloss.Style {
	switch s {
	case styleTitle:
		return styles.Title
	case styleTab:
		return styles.Tab
	case styleTabOn:
		return styles.TabOn
	case styleFocused:
		return styles.Focused
	case stylePressed:
		return styles.Pressed
	case styleDisabled:
		return styles.Disabled
	case styleHeader:
		return styles.Header
	case styleStripe:
		return styles.Stripe
	default:
		return styles.Normal
	}
}

type cell struct {
	r     rune
	style style
}

// canvas is a grid of styled terminal cells.
type canvas struct {
	cols, rows int
	cells      []cell
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: max(cols, 1), rows: max(rows, 1)}
	c.cells = make([]cell, c.cols*c.rows)
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *canvas) set(col, row int, r rune, s style) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = cell{r: r, style: s}
}

// text writes s from col, cut to width cells.
func (c *canvas) text(col, row, width int, s string, st style) {
	for i, r := range []rune(s) {
		if i >= width {
			return
		}
		c.set(col+i, row, r, st)
	}
}

// fill paints width cells from col.
func (c *canvas) fill(col, row, width int, r rune, st style) {
	for i := 0; i < width; i++ {
		c.set(col+i, row, r, st)
	}
}

// lines returns the rows without styles.
func (c *canvas) lines() []string {
	out := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var b strings.Builder
		for _, cl := range c.cells[row*c.cols : (row+1)*c.cols] {
			b.WriteRune(cl.r)
		}
		out[row] = b.String()
	}
	return out
}

// String renders the rows, one lipgloss style per run of equally styled
// cells.
func (c *canvas) String() string {
	rows := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var b strings.Builder
		line := c.cells[row*c.cols : (row+1)*c.cols]
		for start := 0; start < len(line); {
			end := start
			var run strings.Builder
			for end < len(line) && line[end].style == line[start].style {
				run.WriteRune(line[end].r)
				end++
			}
			b.WriteString(line[start].style.styled().Render(run.String()))
			start = end
		}
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n")
}

// area is a widget's rectangle in cells.
type area struct {
	col, row, cols, rows int
}

func cellArea(b *flexui.WidgetBase, cw, ch int) area {
	return area{
		col:  b.X / cw,
		row:  b.Y / ch,
		cols: max(b.Width/cw, 1),
		rows: max(b.Height/ch, 1),
	}
}

// render draws w into a framed grid.
func render(w *window, cw, ch int) string {
	return styles.Frame.Render(draw(w, cw, ch).String())
}

// draw paints the title, tab bar and visible widgets of w.
func draw(w *window, cw, ch int) *canvas {
	c := newCanvas(w.width/cw, w.height/ch)

	title := []rune(w.desc.Title)
	c.text(max((c.cols-len(title))/2, 0), 0, c.cols, w.desc.Title, styleTitle)

	if len(w.desc.Tabs) > 0 {
		col := 1
		for i, tab := range w.desc.Tabs {
			st := styleTab
			if i == w.tab {
				st = styleTabOn
			}
			label := " " + tab.Title + " "
			c.text(col, 1, c.cols-col, label, st)
			col += len([]rune(label)) + 1
		}
	}

	for _, widget := range w.visible() {
		b := widget.Base()
		if !b.IsVisible {
			continue
		}
		drawWidget(c, widget, cellArea(b, cw, ch), b.Name == w.focus, cw)
	}
	return c
}

func drawWidget(c *canvas, widget flexui.Widget, a area, focused bool, cw int) {
	st := styleNormal
	switch {
	case widget.Base().IsDisabled:
		st = styleDisabled
	case focused:
		st = styleFocused
	}

	switch w := widget.(type) {
	case *flexui.LabelWidget:
		col := a.col
		if w.TextAlign == flexui.AlignCentred {
			col += max((a.cols-len([]rune(w.Text)))/2, 0)
		}
		c.text(col, a.row, a.cols, w.Text, st)
	case *flexui.ButtonWidget:
		text := w.Text
		if w.Border {
			text = "[ " + text + " ]"
		}
		if w.IsPressed && st == styleNormal {
			st = stylePressed
		}
		c.text(a.col+max((a.cols-len([]rune(text)))/2, 0), a.row, a.cols, text, st)
	case *flexui.CheckboxWidget:
		box := "[ ] "
		if w.IsChecked {
			box = "[x] "
		}
		c.text(a.col, a.row, a.cols, box+w.Text, st)
	case *flexui.SpinnerWidget:
		c.fill(a.col, a.row, a.cols, ' ', st)
		c.text(a.col, a.row, a.cols, w.Text, st)
		if a.cols >= 4 {
			c.text(a.col+a.cols-2, a.row, 2, "-+", st)
		}
	case *flexui.DropdownWidget:
		var text string
		if w.SelectedIndex >= 0 && w.SelectedIndex < len(w.Items) {
			text = w.Items[w.SelectedIndex]
		}
		c.fill(a.col, a.row, a.cols, ' ', st)
		c.text(a.col, a.row, a.cols-1, text, st)
		c.set(a.col+a.cols-1, a.row, '▾', st)
	case *flexui.TextBoxWidget:
		if st == styleNormal {
			st = styleHeader
		}
		c.fill(a.col, a.row, a.cols, ' ', st)
		c.text(a.col, a.row, a.cols, w.Text, st)
	case *flexui.ListViewWidget:
		drawList(c, w, a, cw)
	case *flexui.GroupBoxWidget:
		drawBox(c, w.Text, a)
	case *flexui.ViewportWidget:
		for row := 0; row < a.rows; row++ {
			c.fill(a.col, a.row+row, a.cols, '·', styleStripe)
		}
		pos := fmt.Sprintf("%d,%d", w.Viewport.Left, w.Viewport.Bottom)
		c.text(a.col, a.row, a.cols, pos, styleNormal)
	}
}

// columnCells splits cols cells between the columns of a list.
func columnCells(columns []flexui.ListViewColumn, cols, cw int) []int {
	widths := make([]int, len(columns))
	rest := cols
	var ratio float64
	for i, col := range columns {
		if col.RatioWidth > 0 {
			ratio += col.RatioWidth
			continue
		}
		widths[i] = col.Width / cw
		rest -= widths[i]
	}
	for i, col := range columns {
		if col.RatioWidth > 0 && ratio > 0 {
			widths[i] = int(float64(max(rest, 0)) * col.RatioWidth / ratio)
		}
	}
	return widths
}

func drawList(c *canvas, w *flexui.ListViewWidget, a area, cw int) {
	widths := []int{a.cols}
	if len(w.Columns) > 0 {
		widths = columnCells(w.Columns, a.cols, cw)
	}
	row := a.row
	if w.ShowColumnHeaders {
		col := a.col
		for i, column := range w.Columns {
			c.fill(col, row, widths[i], ' ', styleHeader)
			c.text(col, row, widths[i], column.Header, styleHeader)
			col += widths[i]
		}
		row++
	}
	for i, item := range w.Items {
		if row >= a.row+a.rows {
			return
		}
		st := styleNormal
		if w.IsStriped && i%2 == 1 {
			st = styleStripe
		}
		if w.SelectedCell != nil && w.SelectedCell.Row == i {
			st = styleFocused
		}
		col := a.col
		for j, text := range item {
			if j >= len(widths) {
				break
			}
			c.text(col, row, widths[j], text, st)
			col += widths[j]
		}
		row++
	}
}

func drawBox(c *canvas, title string, a area) {
	last := a.col + a.cols - 1
	bottom := a.row + a.rows - 1
	c.fill(a.col, a.row, a.cols, '─', styleNormal)
	c.fill(a.col, bottom, a.cols, '─', styleNormal)
	for row := a.row; row <= bottom; row++ {
		c.set(a.col, row, '│', styleNormal)
		c.set(last, row, '│', styleNormal)
	}
	c.set(a.col, a.row, '┌', styleNormal)
	c.set(last, a.row, '┐', styleNormal)
	c.set(a.col, bottom, '└', styleNormal)
	c.set(last, bottom, '┘', styleNormal)
	if title != "" {
		c.text(a.col+2, a.row, a.cols-4, " "+title+" ", styleTitle)
	}
}
