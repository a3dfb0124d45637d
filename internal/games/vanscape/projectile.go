package vanscape

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/vanscape/internal/core"
)

// Kind selects the projectile variant.
type Kind int

const (
	KindBullet   Kind = iota // straight shot aimed once at spawn
	KindBomb                 // flies to a fixed destination, then bursts
	KindFragment             // one piece of a bomb burst
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindBullet:
		return "bullet"
	case KindBomb:
		return "bomb"
	case KindFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Projectile is any enemy ordnance. All variants share movement along a fixed
// heading and circular collision; Kind decides the per-tick extras.
type Projectile struct {
	Kind    Kind
	Pos     core.Vec
	Radius  float64
	Speed   float64
	Heading float64  // Radians, screen space; never re-aimed
	Dest    core.Vec // Bomb destination
	Spin    float64  // Display rotation in degrees
}

// NewBullet creates a straight shot aimed at target.
func NewBullet(pos core.Vec, radius, speed float64, target core.Vec) Projectile {
	heading := core.HeadingTo(pos, target)
	return Projectile{
		Kind:    KindBullet,
		Pos:     pos,
		Radius:  radius,
		Speed:   speed,
		Heading: heading,
		Spin:    core.DisplayAngle(heading),
	}
}

// NewBomb creates a bomb flying toward dest, captured at spawn.
func NewBomb(pos core.Vec, radius, speed float64, dest core.Vec) Projectile {
	return Projectile{
		Kind:    KindBomb,
		Pos:     pos,
		Radius:  radius,
		Speed:   speed,
		Heading: core.HeadingTo(pos, dest),
		Dest:    dest,
	}
}

// Advance moves the projectile one tick. Bullets turn their sprite toward
// target without changing course. It reports true when a bomb has reached
// its destination and must be replaced by Burst.
func (p *Projectile) Advance(target core.Vec) bool {
	switch p.Kind {
	case KindBullet:
		p.Spin = core.DisplayAngle(core.HeadingTo(p.Pos, target))
		p.Pos = core.Advance(p.Pos, p.Heading, p.Speed)
	case KindBomb:
		p.Spin++
		p.Pos = core.Advance(p.Pos, p.Heading, p.Speed)
		return core.InBox(p.Pos, p.Dest, p.Radius)
	case KindFragment:
		p.Pos = core.Advance(p.Pos, p.Heading, p.Speed)
		p.Spin++
	}
	return false
}

// Burst splits a bomb into k fragments, k uniform in [minN, maxN], fanned
// evenly over a full turn starting at heading 0.
func (p Projectile) Burst(rng *rand.Rand, minN, maxN int) []Projectile {
	k := minN
	if maxN > minN {
		k += rng.Intn(maxN - minN + 1)
	}

	step := 2 * math.Pi / float64(k)
	frags := make([]Projectile, k)
	for i := range frags {
		frags[i] = Projectile{
			Kind:    KindFragment,
			Pos:     p.Pos,
			Radius:  math.Floor(p.Radius / 2),
			Speed:   p.Speed,
			Heading: step * float64(i),
			Spin:    float64(rng.Intn(361)),
		}
	}
	return frags
}

// Circle returns the collision extent.
func (p Projectile) Circle() core.Circle {
	return core.Circle{Center: p.Pos, R: p.Radius}
}
