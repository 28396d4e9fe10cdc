package display

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Back      key.Binding
	Browse    key.Binding
	Add       key.Binding
	About     key.Binding
	Contact   key.Binding
	Home      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// Form.
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Submit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Browse:    key.NewBinding(key.WithKeys("r", "/"), key.WithHelp("r", "all recipes")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add recipe")),
		About:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "about")),
		Contact:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contact")),
		Home:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),

		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "difficulty")),
		Right:  key.NewBinding(key.WithKeys("right")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
	}
}

// browseHelp lists the bindings shown on the home and detail pages.
func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Browse, k.Add, k.About, k.Contact, k.Quit}
}

func (k keyMap) searchHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Back}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Left, k.Submit, k.Back}
}

func (k keyMap) pageHelp() []key.Binding {
	return []key.Binding{k.Back, k.Home, k.Quit}
}
