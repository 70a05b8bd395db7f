package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the previous screen.
	Back key.Binding

	// Submit routes the typed query.
	Submit key.Binding

	// Up navigates up in the match list.
	Up key.Binding

	// Down navigates down in the match list.
	Down key.Binding

	// Open loads the selected skill's document.
	Open key.Binding

	// NewQuery clears the input and starts a fresh query.
	NewQuery key.Binding

	// Browse lists the whole catalog without routing.
	Browse key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "route"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		NewQuery: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new query"),
		),
		Browse: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "browse all"),
		),
	}
}

// QueryHelp returns keybindings shown on the query screen.
func (k *KeyMap) QueryHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Browse}
}

// ResultsHelp returns keybindings shown on the results screen.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Open, k.NewQuery, k.Back, k.Quit}
}

// ContentHelp returns keybindings shown while reading a document.
func (k *KeyMap) ContentHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
