package vanscape

import (
	"math/rand"

	"github.com/vovakirdan/vanscape/internal/core"
)

// Arena is the visible play field in world units. It is built once per
// session and handed to every entity that needs to know the bounds.
type Arena struct {
	Width  float64
	Height float64
}

// Contains reports whether p lies on the visible rectangle, edges included.
func (a Arena) Contains(p core.Vec) bool {
	return p.X >= 0 && p.X <= a.Width && p.Y >= 0 && p.Y <= a.Height
}

// Center returns the middle of the arena.
func (a Arena) Center() core.Vec {
	return core.V(a.Width/2, a.Height/2)
}

// Corners returns the four screen corners pushed outward by margin on both axes.
func (a Arena) Corners(margin float64) [4]core.Vec {
	return [4]core.Vec{
		core.V(-margin, -margin),
		core.V(-margin, a.Height+margin),
		core.V(a.Width+margin, a.Height+margin),
		core.V(a.Width+margin, -margin),
	}
}

// RandomCorner picks one of Corners(margin) uniformly.
func (a Arena) RandomCorner(rng *rand.Rand, margin float64) core.Vec {
	corners := a.Corners(margin)
	return corners[rng.Intn(len(corners))]
}

// RandomPoint picks a uniformly random point on the visible rectangle.
func (a Arena) RandomPoint(rng *rand.Rand) core.Vec {
	return core.V(rng.Float64()*a.Width, rng.Float64()*a.Height)
}
