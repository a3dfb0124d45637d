package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vanscape/internal/config"
	"github.com/vovakirdan/vanscape/internal/core"
	"github.com/vovakirdan/vanscape/internal/games/vanscape"
	"github.com/vovakirdan/vanscape/internal/platform/session"
	"github.com/vovakirdan/vanscape/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Config     config.Config
	Runtime    core.RuntimeConfig // ScreenW/ScreenH is the full terminal size
	Best       vanscape.BestStore // May be nil
	Store      *storage.Store     // Run history; may be nil
	Watcher    *config.Watcher    // Config hot reload; may be nil
	Logger     *log.Logger
	Player     string
	Difficulty string
}

// Model is the Bubble Tea model for a VanScape session.
type Model struct {
	game       *vanscape.Game
	screen     *core.Screen
	recorder   session.Recorder
	watcher    *config.Watcher
	logger     *log.Logger
	runtime    core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	cursorX    int // Pointer position in screen cells
	cursorY    int
	quitting   bool
}

// NewModel creates a new Bubble Tea model. The bottom terminal row is kept
// for the help bar.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.ScaleX <= 0 || rt.ScaleY <= 0 {
		rt.ScaleX = opts.Config.Arena.CellWidth
		rt.ScaleY = opts.Config.Arena.CellHeight
	}
	rt.ScreenH = max(1, rt.ScreenH-1)

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = rt.ScreenW

	recorder := session.Recorder{
		Store:      opts.Store,
		Logger:     logger,
		Player:     opts.Player,
		Difficulty: opts.Difficulty,
	}

	return Model{
		game:       vanscape.New(opts.Config, opts.Best),
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		recorder:   recorder,
		watcher:    opts.Watcher,
		logger:     logger,
		runtime:    rt,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		cursorX:    rt.ScreenW / 2,
		cursorY:    rt.ScreenH / 2,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime)
	m.logger.Info("session started", "width", m.runtime.ScreenW, "height", m.runtime.ScreenH, "seed", m.runtime.Seed)

	return tea.Batch(tickCmd(m.runtime.TickRate), waitForConfig(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.moveCursor(msg.X, msg.Y)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configMsg:
		m.game.ApplyConfig(msg.cfg)
		m.logger.Info("config reloaded, applies on next restart", "path", m.watcher.Path())
		return m, waitForConfig(m.watcher)

	case configErrMsg:
		m.logger.Warn("config reload failed", "error", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey maps a key to actions for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, dx, dy := m.keys.MapKey(msg)
	m.inputFrame.Set(action)
	if dx != 0 || dy != 0 {
		m.moveCursor(m.cursorX+dx, m.cursorY+dy)
	}
	return m, nil
}

// moveCursor clamps the pointer to the play field and converts it to
// world units for the game.
func (m *Model) moveCursor(x, y int) {
	m.cursorX = min(max(x, 0), m.screen.Width()-1)
	m.cursorY = min(max(y, 0), m.screen.Height()-1)
	m.inputFrame.SetPointer(m.runtime.CellToWorld(m.cursorX, m.cursorY))
}

// handleResize rebuilds the arena for the new terminal size. This resets
// the session.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = max(1, msg.Height-1)
	m.screen.Resize(m.runtime.ScreenW, m.runtime.ScreenH)
	m.help.Width = msg.Width

	m.game.Reset(m.runtime)
	m.gameState = m.game.State()
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recorder.Record(result, m.game.Ticks())

	// Clear input for next frame
	m.inputFrame.Clear()

	if result.Quit {
		m.quitting = true
		m.logger.Info("session ended", "score", result.State.Score, "best", result.State.Best)
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	bindings := m.keys.PlayingHelp()
	if m.gameState.GameOver {
		bindings = m.keys.GameOverHelp()
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.ShortHelpView(bindings))
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the session has ended.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // The player follows the mouse without a button held
	)

	_, err := p.Run()
	return err
}
