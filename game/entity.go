package game

import (
	"math"
	"sync/atomic"
)

// EntityID is a unique identifier for any entity in the game.
// Bullets are removed by ID so removal never depends on slice positions.
type EntityID uint64

// InvalidEntityID represents an unset entity reference.
const InvalidEntityID EntityID = 0

var nextEntityID uint64

// generateEntityID creates a new unique entity ID.
func generateEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Playfield is the toroidal world. Positions always lie in [0,Width) x [0,Height).
type Playfield struct {
	Width, Height float64
}

// Wrap maps a position onto the playfield.
func (p Playfield) Wrap(x, y float64) (float64, float64) {
	return wrap(x, p.Width), wrap(y, p.Height)
}

// wrap is a floored modulo: the result takes the sign of the divisor, so any
// displacement lands inside [0,size) regardless of magnitude.
func wrap(v, size float64) float64 {
	r := math.Mod(v, size)
	if r < 0 {
		r += size
	}
	// r+size can round up to size for tiny negative r
	if r >= size {
		r = 0
	}
	return r
}

// Body is the shared kinematic state of every moving entity
type Body struct {
	// Position in playfield coordinates
	X, Y float64

	// Velocity in pixels per tick
	VX, VY float64
}

// Warp places the body at the given position
func (b *Body) Warp(x, y float64) {
	b.X, b.Y = x, y
}

// Integrate advances the body one tick: position += velocity, wrap, then damp.
func (b *Body) Integrate(field Playfield, damping float64) {
	b.X, b.Y = field.Wrap(b.X+b.VX, b.Y+b.VY)
	b.VX *= damping
	b.VY *= damping
}

// Speed returns the velocity magnitude
func (b *Body) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// DistanceTo calculates the distance to another body
func (b *Body) DistanceTo(x, y float64) float64 {
	return math.Hypot(b.X-x, b.Y-y)
}

// spriteFacingOffset reconciles the sprites, which face right at heading 0,
// with offset's convention where 0 degrees points up.
const spriteFacingOffset = 90.0

// offset returns the x/y components of a vector of the given length pointing at
// angle degrees, measured clockwise from up (screen y grows downwards).
func offset(angle, length float64) (float64, float64) {
	rad := angle * math.Pi / 180
	return math.Sin(rad) * length, -math.Cos(rad) * length
}

// thrustVector converts a heading into a thrust vector. This is the only place
// where the sprite facing correction is applied.
func thrustVector(heading, magnitude float64) (float64, float64) {
	return offset(heading+spriteFacingOffset, magnitude)
}
