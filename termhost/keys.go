package termhost

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the host's key bindings.
type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Activate  key.Binding
	Increment key.Binding
	Decrement key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Erase     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next control"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous control"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		Increment: key.NewBinding(
			key.WithKeys("right", "+"),
			key.WithHelp("→/+", "increase"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("left", "-"),
			key.WithHelp("←/-", "decrease"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous tab"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// helpLine renders the short help shown under the window.
func (k keyMap) helpLine() string {
	var line string
	for i, b := range []key.Binding{k.Next, k.Activate, k.Increment, k.Decrement, k.NextTab, k.Quit} {
		h := b.Help()
		if i > 0 {
			line += "  "
		}
		line += h.Key + " " + h.Desc
	}
	return line
}
