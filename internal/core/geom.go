// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea or ebiten) to keep
// game logic pure and testable.
package core

import "math"

// Vec is a 2D point or displacement in world units.
// World coordinates grow right (X) and down (Y), like screen space.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len2 returns the squared length of v.
func (v Vec) Len2() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Manhattan returns |X| + |Y|.
func (v Vec) Manhattan() float64 {
	return math.Abs(v.X) + math.Abs(v.Y)
}

// Circle is the collision extent of an entity.
type Circle struct {
	Center Vec
	R      float64
}

// Collides reports whether two circles touch or overlap.
// Touching circles (distance == rA + rB) count as a collision.
func Collides(a, b Circle) bool {
	r := a.R + b.R
	return a.Center.Sub(b.Center).Len2() <= r*r
}

// HeadingTo returns the movement heading in radians from one point to another,
// measured in screen space (Y down).
func HeadingTo(from, to Vec) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Advance moves pos by speed units along heading.
func Advance(pos Vec, heading, speed float64) Vec {
	return Vec{
		X: pos.X + speed*math.Cos(heading),
		Y: pos.Y + speed*math.Sin(heading),
	}
}

// DisplayAngle converts a screen-space heading into a counter-clockwise
// rotation in degrees. Renderers have Y pointing down, so the sign flips.
func DisplayAngle(heading float64) float64 {
	return -heading * 180 / math.Pi
}

// InBox reports whether p lies strictly inside the axis-aligned square
// centered on c with half-size half. This is the bomb capture test and is
// intentionally coarser than Collides.
func InBox(p, c Vec, half float64) bool {
	return c.X-half < p.X && p.X < c.X+half &&
		c.Y-half < p.Y && p.Y < c.Y+half
}

// DirectionGlyph picks one of eight arrows for a counter-clockwise rotation
// given in degrees, where 0 points right.
func DirectionGlyph(degrees float64) rune {
	arrows := []rune("→↗↑↖←↙↓↘")
	idx := int(math.Round(degrees/45)) % len(arrows)
	if idx < 0 {
		idx += len(arrows)
	}
	return arrows[idx]
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
