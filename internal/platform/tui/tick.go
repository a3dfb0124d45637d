// Package tui provides the Bubble Tea front end for VanScape.
// It handles the terminal UI loop, mouse and key mapping, and hands
// finished runs to storage.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vanscape/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// configMsg carries a reloaded config from the file watcher.
type configMsg struct {
	cfg config.Config
}

// configErrMsg reports a config file that failed to reload.
type configErrMsg struct {
	err error
}

// waitForConfig blocks until the watcher reports something. It returns a
// nil message once the watcher is closed, which Bubble Tea ignores.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Updates:
			if !ok {
				return nil
			}
			return configMsg{cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}
