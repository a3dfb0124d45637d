package vanscape

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/vanscape/internal/config"
	"github.com/vovakirdan/vanscape/internal/core"
)

// Enemy chases the pointer and owns every live projectile.
type Enemy struct {
	Pos         core.Vec
	Radius      float64
	Level       int     // Never decreases within a session
	Heading     float64 // Radians, recomputed every tick
	Projectiles []Projectile

	cfg   config.EnemyConfig
	arena Arena
	rng   *rand.Rand
}

// NewEnemy creates a level 0 enemy parked just off a random corner.
func NewEnemy(cfg config.EnemyConfig, arena Arena, rng *rand.Rand) *Enemy {
	e := &Enemy{
		Radius: cfg.Radius,
		cfg:    cfg,
		arena:  arena,
		rng:    rng,
	}
	e.Reset(0)
	return e
}

// Speed is the effective speed at the current level.
func (e *Enemy) Speed() float64 {
	return e.cfg.BaseSpeed + float64(e.Level)*e.cfg.LevelSpeed
}

// Move homes one step toward target and may fire a bullet at it.
// It reports whether a bullet was fired.
func (e *Enemy) Move(target core.Vec) bool {
	e.Heading = core.HeadingTo(e.Pos, target)
	e.Pos = core.Advance(e.Pos, e.Heading, e.Speed())
	if e.rng.Float64() < e.cfg.FireChance {
		e.Shoot(target)
		return true
	}
	return false
}

// Shoot fires a straight bullet at target.
func (e *Enemy) Shoot(target core.Vec) {
	e.Projectiles = append(e.Projectiles, NewBullet(e.Pos, e.ordnanceRadius(), e.cfg.BulletSpeed, target))
}

// HamAttack launches a bomb at target using the current effective speed.
func (e *Enemy) HamAttack(target core.Vec) {
	e.Projectiles = append(e.Projectiles, NewBomb(e.Pos, e.ordnanceRadius(), e.Speed(), target))
}

// Reset teleports the enemy one radius beyond a random corner and sets its level.
func (e *Enemy) Reset(level int) {
	e.Pos = e.arena.RandomCorner(e.rng, e.Radius)
	e.Level = level
}

// ClearProjectiles drops all live ordnance.
func (e *Enemy) ClearProjectiles() {
	e.Projectiles = nil
}

// Circle returns the collision extent.
func (e *Enemy) Circle() core.Circle {
	return core.Circle{Center: e.Pos, R: e.Radius}
}

func (e *Enemy) ordnanceRadius() float64 {
	return math.Floor(e.Radius / 2)
}
