package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size its arena and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in cells (pixels for the window front end)
	ScreenH  int     // Screen height in cells
	ScaleX   float64 // World units per screen cell, horizontally
	ScaleY   float64 // World units per screen cell, vertically
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		ScaleX:   1,
		ScaleY:   1,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// WorldSize returns the arena dimensions in world units.
func (c RuntimeConfig) WorldSize() (float64, float64) {
	sx, sy := c.scale()
	return float64(c.ScreenW) * sx, float64(c.ScreenH) * sy
}

// CellToWorld maps the center of a screen cell to world coordinates.
func (c RuntimeConfig) CellToWorld(x, y int) Vec {
	sx, sy := c.scale()
	return Vec{X: (float64(x) + 0.5) * sx, Y: (float64(y) + 0.5) * sy}
}

// WorldToCell maps a world position to the screen cell containing it.
func (c RuntimeConfig) WorldToCell(p Vec) (int, int) {
	sx, sy := c.scale()
	return floorDiv(p.X, sx), floorDiv(p.Y, sy)
}

func (c RuntimeConfig) scale() (float64, float64) {
	sx, sy := c.ScaleX, c.ScaleY
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	return sx, sy
}

func floorDiv(v, s float64) int {
	q := v / s
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best-ever score including this session
	Lives    int  // Remaining player lives
	Level    int  // Enemy difficulty level
	GameOver bool // Whether the terminal screen is showing
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventHit         EventKind = iota // player lost a life
	EventPickup                       // player collected a bonus
	EventLevelUp                      // enemy level increased
	EventBomb                         // enemy launched a bomb
	EventDetonation                   // a bomb burst into fragments
	EventPickupSpawn                  // a bonus appeared
	EventGameOver                     // lives reached zero
	EventRestart                      // session was reset from the game over screen
	EventBestSaved                    // best-ever score was written
	EventSaveFailed                   // best-ever score could not be written
)

// String returns a short name for logging.
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventPickup:
		return "pickup"
	case EventLevelUp:
		return "level_up"
	case EventBomb:
		return "bomb"
	case EventDetonation:
		return "detonation"
	case EventPickupSpawn:
		return "pickup_spawn"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	case EventBestSaved:
		return "best_saved"
	case EventSaveFailed:
		return "save_failed"
	default:
		return "unknown"
	}
}

// Event is a notable occurrence reported by a simulation tick.
type Event struct {
	Kind  EventKind
	Tick  int   // Score tick at which it happened
	Value int   // Kind-specific payload (lives, level, fragment count, score)
	Err   error // Set for EventSaveFailed
}

// StepResult is returned by Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
	Quit   bool // The player asked to leave
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
