package vanscape

import (
	"math"

	"github.com/vovakirdan/vanscape/internal/config"
	"github.com/vovakirdan/vanscape/internal/core"
)

// Player is the avatar glued to the pointer.
type Player struct {
	Pos    core.Vec
	Radius float64
	Lives  int
	Facing float64 // Display rotation in radians; 0 means the sprite points up
	Frame  int     // Sprite animation frame

	counter int // Ticks left until the next animation frame
	cfg     config.PlayerConfig
}

// NewPlayer creates a player at pos with a full set of lives.
func NewPlayer(cfg config.PlayerConfig, pos core.Vec) *Player {
	return &Player{
		Pos:     pos,
		Radius:  cfg.Radius,
		Lives:   cfg.Lives,
		counter: cfg.FrameTicks,
		cfg:     cfg,
	}
}

// Move snaps the player to the pointer. Facing only follows moves larger
// than the turn threshold so a resting cursor does not jitter the sprite.
func (p *Player) Move(pointer core.Vec) {
	d := pointer.Sub(p.Pos)
	if d.Manhattan() > p.cfg.TurnThreshold {
		p.Facing = math.Atan2(-d.Y, d.X) - math.Pi/2
	}
	p.Pos = pointer

	p.counter--
	if p.counter <= 0 {
		p.Frame = (p.Frame + 1) % p.cfg.Frames
		p.counter = p.cfg.FrameTicks
	}
}

// Reset moves the player to the pointer and restores lives.
func (p *Player) Reset(pointer core.Vec) {
	p.Pos = pointer
	p.Lives = p.cfg.Lives
}

// Hit removes one life and reports whether none are left.
func (p *Player) Hit() bool {
	if p.Lives > 0 {
		p.Lives--
	}
	return p.Lives == 0
}

// Circle returns the collision extent.
func (p *Player) Circle() core.Circle {
	return core.Circle{Center: p.Pos, R: p.Radius}
}
