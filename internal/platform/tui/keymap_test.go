package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vanscape/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name           string
		msg            tea.KeyMsg
		expectedAction core.Action
		expectedDX     int
		expectedDY     int
	}{
		{"q quits", runeKey('q'), core.ActionQuit, 0, 0},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, 0, 0},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, 0, 0},
		{"p pauses", runeKey('p'), core.ActionPause, 0, 0},
		{"up nudges", tea.KeyMsg{Type: tea.KeyUp}, core.ActionOther, 0, -1},
		{"j nudges down", runeKey('j'), core.ActionOther, 0, 1},
		{"h nudges left", runeKey('h'), core.ActionOther, -1, 0},
		{"right nudges", tea.KeyMsg{Type: tea.KeyRight}, core.ActionOther, 1, 0},
		{"space is other", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionOther, 0, 0},
		{"enter is other", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionOther, 0, 0},
		{"letter is other", runeKey('x'), core.ActionOther, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, dx, dy := keys.MapKey(tt.msg)
			if action != tt.expectedAction {
				t.Errorf("Expected %v, got %v", tt.expectedAction, action)
			}
			if dx != tt.expectedDX || dy != tt.expectedDY {
				t.Errorf("Expected nudge (%d,%d), got (%d,%d)", tt.expectedDX, tt.expectedDY, dx, dy)
			}
		})
	}
}

func TestHelpBindings(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.PlayingHelp()) == 0 || len(keys.GameOverHelp()) == 0 {
		t.Fatal("Expected help bindings")
	}
	if keys.GameOverHelp()[0].Help().Key != "any key" {
		t.Errorf("Expected restart hint first, got %q", keys.GameOverHelp()[0].Help().Key)
	}
}
