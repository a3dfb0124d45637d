package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vanscape/internal/core"
)

// KeyMap defines the in-game key bindings. Move and Restart are shown in
// help only: the pointer follows the mouse and any key restarts.
type KeyMap struct {
	Quit    key.Binding
	Pause   key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Move    key.Binding
	Restart key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "nudge up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "nudge down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "nudge left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "nudge right"),
		),
		Move: key.NewBinding(
			key.WithKeys(),
			key.WithHelp("mouse/hjkl", "move"),
		),
		Restart: key.NewBinding(
			key.WithKeys(),
			key.WithHelp("any key", "try again"),
		),
	}
}

// PlayingHelp returns the bindings shown while playing.
func (k KeyMap) PlayingHelp() []key.Binding {
	return []key.Binding{k.Move, k.Pause, k.Quit}
}

// GameOverHelp returns the bindings shown on the game over screen.
func (k KeyMap) GameOverHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

// MapKey translates a key message to a game action and a pointer nudge in
// screen cells. Every key that is not quit or pause maps to ActionOther,
// which the game only acts on from the game over screen.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, dx, dy int) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, 0, 0
	case key.Matches(msg, k.Pause):
		return core.ActionPause, 0, 0
	case key.Matches(msg, k.Up):
		return core.ActionOther, 0, -1
	case key.Matches(msg, k.Down):
		return core.ActionOther, 0, 1
	case key.Matches(msg, k.Left):
		return core.ActionOther, -1, 0
	case key.Matches(msg, k.Right):
		return core.ActionOther, 1, 0
	}
	return core.ActionOther, 0, 0
}
