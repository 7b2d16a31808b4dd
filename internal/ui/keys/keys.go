// Package keys defines the keyboard command set shared by every screen.
package keys

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shapes/internal/ui/layout"
)

// KeyMap holds every binding the app understands.
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Flip    key.Binding
	Shuffle key.Binding
	Cancel  key.Binding
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Retry   key.Binding
	Home    key.Binding
	Quit    key.Binding
	Options []key.Binding
}

// Default is the standard key map.
var Default = KeyMap{
	Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "Next")),
	Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "Prev")),
	Flip:    key.NewBinding(key.WithKeys("space", "enter"), key.WithHelp("Space", "Flip")),
	Shuffle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Shuffle")),
	Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Home")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "Up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "Down")),
	Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select")),
	Retry:   key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "Try Again")),
	Home:    key.NewBinding(key.WithKeys("h", "esc"), key.WithHelp("h", "Home")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Quit")),
	Options: []key.Binding{
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "Option 1")),
		key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "Option 2")),
		key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "Option 3")),
		key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "Option 4")),
	},
}

// OptionIndex returns the option number pressed (0-based), or -1.
func (k KeyMap) OptionIndex(msg tea.KeyMsg) int {
	for i, b := range k.Options {
		if key.Matches(msg, b) {
			return i
		}
	}
	return -1
}

// Hint converts a binding's help text to a footer hint.
func Hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}

// Hints converts several bindings.
func Hints(bs ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bs))
	for _, b := range bs {
		out = append(out, Hint(b))
	}
	return out
}
