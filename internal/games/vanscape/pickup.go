package vanscape

import (
	"github.com/vovakirdan/vanscape/internal/config"
	"github.com/vovakirdan/vanscape/internal/core"
)

// Pickup is a passive bonus granting extra lives when touched.
type Pickup struct {
	Pos    core.Vec
	Radius float64
	Bonus  int
}

// NewPickup creates a bonus at pos.
func NewPickup(cfg config.PickupConfig, pos core.Vec) Pickup {
	return Pickup{Pos: pos, Radius: cfg.Radius, Bonus: cfg.Bonus}
}

// Circle returns the collision extent.
func (p Pickup) Circle() core.Circle {
	return core.Circle{Center: p.Pos, R: p.Radius}
}
