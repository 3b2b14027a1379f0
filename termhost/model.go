package termhost

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grindlemire/flexui"
	"github.com/grindlemire/flexui/internal/debug"
)

// tickMsg fires the update tick of every open window.
type tickMsg time.Time

// model drives the host's windows from terminal input.
type model struct {
	host *Host
	keys keyMap
}

func newModel(h *Host) *model {
	return &model{host: h, keys: defaultKeyMap()}
}

func (m *model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *model) tickCmd() tea.Cmd {
	return tea.Tick(m.host.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil
	case tickMsg:
		// Updates may close windows, so iterate over a copy.
		for _, w := range slices.Clone(m.host.windows) {
			w.update()
		}
		if m.host.top() == nil {
			return m, tea.Quit
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m *model) handleResize(msg tea.WindowSizeMsg) {
	w := m.host.top()
	if w == nil {
		return
	}
	// Two rows are taken by the frame and one by the help line.
	cols, rows := msg.Width-2, msg.Height-3
	w.resize(cols*m.host.cellWidth, rows*m.host.cellHeight)
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.host.closeAll()
		return tea.Quit
	}
	w := m.host.top()
	if w == nil {
		return tea.Quit
	}
	focused := m.focused(w)

	// A focused text box takes every printable key.
	if tb, ok := focused.(*flexui.TextBoxWidget); ok && m.editText(tb, msg) {
		w.dirty = true
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.host.closeAll()
		return tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(w, 1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(w, -1)
	case key.Matches(msg, m.keys.NextTab):
		w.switchTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		w.switchTab(-1)
	case key.Matches(msg, m.keys.Activate):
		activate(focused)
	case key.Matches(msg, m.keys.Increment):
		step(focused, 1)
	case key.Matches(msg, m.keys.Decrement):
		step(focused, -1)
	default:
		return nil
	}
	w.dirty = true
	if m.host.top() == nil {
		return tea.Quit
	}
	return nil
}

// editText applies msg to a focused text box. It reports whether the key
// was consumed.
func (m *model) editText(tb *flexui.TextBoxWidget, msg tea.KeyMsg) bool {
	if tb.IsDisabled {
		return false
	}
	text := []rune(tb.Text)
	switch {
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		add := msg.Runes
		if msg.Type == tea.KeySpace {
			add = []rune{' '}
		}
		text = append(text, add...)
		if tb.MaxLength > 0 && len(text) > tb.MaxLength {
			text = text[:tb.MaxLength]
		}
	case key.Matches(msg, m.keys.Erase):
		if len(text) == 0 {
			return true
		}
		text = text[:len(text)-1]
	default:
		return false
	}
	if string(text) == tb.Text {
		return true
	}
	tb.Text = string(text)
	if tb.OnChange != nil {
		tb.OnChange(tb.Text)
	}
	return true
}

// focusable returns the widgets of w that take keyboard focus, in drawing
// order.
func focusable(w *window) []flexui.Widget {
	var out []flexui.Widget
	for _, widget := range w.visible() {
		b := widget.Base()
		if !b.IsVisible || b.IsDisabled {
			continue
		}
		switch widget.(type) {
		case *flexui.ButtonWidget, *flexui.CheckboxWidget, *flexui.SpinnerWidget,
			*flexui.DropdownWidget, *flexui.TextBoxWidget:
			out = append(out, widget)
		}
	}
	return out
}

// focused returns the focused widget of w. Focus moves to the first
// focusable widget when the focused one is gone, hidden or disabled.
func (m *model) focused(w *window) flexui.Widget {
	candidates := focusable(w)
	for _, c := range candidates {
		if c.Base().Name == w.focus {
			return c
		}
	}
	if len(candidates) == 0 {
		w.focus = ""
		return nil
	}
	w.focus = candidates[0].Base().Name
	return candidates[0]
}

func (m *model) moveFocus(w *window, delta int) {
	candidates := focusable(w)
	if len(candidates) == 0 {
		return
	}
	i := slices.IndexFunc(candidates, func(c flexui.Widget) bool { return c.Base().Name == w.focus })
	if i < 0 {
		i = 0
	} else {
		i = ((i+delta)%len(candidates) + len(candidates)) % len(candidates)
	}
	w.focus = candidates[i].Base().Name
	debug.Log("termhost: focus %s", w.focus)
}

// activate presses a button, flips a checkbox, steps a spinner up or moves a
// dropdown to its next item.
func activate(widget flexui.Widget) {
	switch w := widget.(type) {
	case *flexui.ButtonWidget:
		if w.OnClick != nil {
			w.OnClick()
		}
	case *flexui.CheckboxWidget:
		w.IsChecked = !w.IsChecked
		if w.OnChange != nil {
			w.OnChange(w.IsChecked)
		}
	case *flexui.SpinnerWidget, *flexui.DropdownWidget:
		step(widget, 1)
	}
}

// step increments or decrements a spinner or moves a dropdown's selection.
// Dropdowns stop at their first and last item.
func step(widget flexui.Widget, delta int) {
	switch w := widget.(type) {
	case *flexui.SpinnerWidget:
		fn := w.OnIncrement
		if delta < 0 {
			fn = w.OnDecrement
		}
		if fn != nil {
			fn()
		}
	case *flexui.DropdownWidget:
		next := w.SelectedIndex + delta
		if next < 0 || next >= len(w.Items) || next == w.SelectedIndex {
			return
		}
		w.SelectedIndex = next
		if w.OnChange != nil {
			w.OnChange(next)
		}
	}
}

func (m *model) View() string {
	w := m.host.top()
	if w == nil {
		return ""
	}
	w.dirty = false
	return render(w, m.host.cellWidth, m.host.cellHeight) + "\n" + styles.Help.Render(m.keys.helpLine())
}
