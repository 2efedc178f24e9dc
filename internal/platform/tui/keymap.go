package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

// KeyMap defines the key bindings of the game screen.
// It translates Bubble Tea key messages to core commands so bindings stay in
// one place and can be tested.
type KeyMap struct {
	Submit  key.Binding
	Restart key.Binding
	Erase   key.Binding // Restarts when the input is already empty
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Restart, k.Erase},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "guess"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "new word"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "new word (empty input)"),
		),
		Help: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// MapKey translates a key message to a command. Submit yields a guess with
// empty text; the model fills in the typed input. Keys that only edit the
// input map to the zero Command.
func (k KeyMap) MapKey(msg tea.KeyMsg, inputEmpty bool) core.Command {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Quit()
	case key.Matches(msg, k.Restart):
		return core.Restart()
	case key.Matches(msg, k.Help):
		return core.Command{Action: core.ActionHelp}
	case key.Matches(msg, k.Submit):
		return core.Guess("")
	case key.Matches(msg, k.Erase) && inputEmpty:
		return core.Restart()
	}
	return core.Command{}
}
