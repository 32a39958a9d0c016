package game

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Particle is a short-lived cosmetic point. It wraps like every other body
// but never takes part in collisions.
type Particle struct {
	Body

	age      int // ticks lived
	lifetime int // ticks until removal
	color    color.NRGBA
	size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// ParticleSystem emits and ages particles with one emission shape
type ParticleSystem struct {
	particles    []Particle
	maxParticles int
	rng          *rand.Rand
	field        Playfield

	speedMin    float64 // pixels per tick
	speedMax    float64
	spread      float64 // half-angle in degrees around the emission heading
	lifetimeMin int     // ticks
	lifetimeMax int
	sizeMin     float64
	sizeMax     float64
	damping     float64

	// colorVariation is the +/- range applied to each channel of the base
	colorVariation uint8
}

// Emit adds count particles at (x, y) heading along heading degrees (ship
// convention), inheriting the emitter's velocity. Emission stops at the cap.
func (ps *ParticleSystem) Emit(x, y, heading, vx, vy float64, count int, base color.NRGBA) {
	for i := 0; i < count && len(ps.particles) < ps.maxParticles; i++ {
		angle := heading + (ps.rng.Float64()*2-1)*ps.spread
		speed := ps.speedMin + ps.rng.Float64()*(ps.speedMax-ps.speedMin)
		dx, dy := thrustVector(angle, speed)

		p := Particle{
			lifetime: ps.lifetimeMin + ps.rng.Intn(ps.lifetimeMax-ps.lifetimeMin+1),
			color:    ps.vary(base),
			size:     ps.sizeMin + ps.rng.Float64()*(ps.sizeMax-ps.sizeMin),
		}
		p.Warp(x, y)
		p.VX, p.VY = vx+dx, vy+dy
		ps.particles = append(ps.particles, p)
	}
}

func (ps *ParticleSystem) vary(base color.NRGBA) color.NRGBA {
	if ps.colorVariation == 0 {
		return base
	}
	jitter := func(c uint8) uint8 {
		v := int(c) + ps.rng.Intn(2*int(ps.colorVariation)+1) - int(ps.colorVariation)
		return uint8(max(0, min(255, v)))
	}
	return color.NRGBA{R: jitter(base.R), G: jitter(base.G), B: jitter(base.B), A: base.A}
}

// Update ages and moves every particle by one tick and drops the dead ones
func (ps *ParticleSystem) Update() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.age++
		if !p.IsAlive() {
			continue
		}
		p.Integrate(ps.field, ps.damping)
		alive = append(alive, p)
	}
	ps.particles = alive
}

// Len returns the number of live particles
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Draw renders the particles as filled circles that fade out with age
func (ps *ParticleSystem) Draw(screen *ebiten.Image) {
	for _, p := range ps.particles {
		fade := 1 - float64(p.age)/float64(p.lifetime)
		clr := p.color
		clr.A = uint8(float64(clr.A) * 0.5 * fade)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.size), clr, true)
	}
}

// NewExhaustParticleSystem creates the flame left behind a thrusting ship
func NewExhaustParticleSystem(config EffectsConfig, field Playfield, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		maxParticles:   config.MaxParticles,
		rng:            rng,
		field:          field,
		speedMin:       1.5,
		speedMax:       2.5,
		spread:         15,
		lifetimeMin:    12,
		lifetimeMax:    30,
		sizeMin:        1.5,
		sizeMax:        3.0,
		damping:        0.9,
		colorVariation: 40,
	}
}

// NewSparkParticleSystem creates the burst shown when a star is collected
func NewSparkParticleSystem(config EffectsConfig, field Playfield, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		maxParticles:   config.MaxParticles,
		rng:            rng,
		field:          field,
		speedMin:       0.5,
		speedMax:       2.0,
		spread:         180,
		lifetimeMin:    20,
		lifetimeMax:    40,
		sizeMin:        1.0,
		sizeMax:        2.5,
		damping:        0.95,
		colorVariation: 20,
	}
}

var (
	colorExhaust        = color.NRGBA{R: 255, G: 200, B: 0, A: 255}
	colorReverseExhaust = color.NRGBA{R: 100, G: 150, B: 255, A: 255}
)

// emitThrust puts exhaust behind the ship, or in front of it when braking
func (g *Game) emitThrust(controls Controls) {
	if g.exhaust == nil {
		return
	}
	p := g.player
	n := g.config.Effects.ExhaustPerTick
	if controls.Forward {
		g.exhaust.Emit(p.X, p.Y, p.Angle+180, p.VX, p.VY, n, colorExhaust)
	}
	if controls.Backward {
		g.exhaust.Emit(p.X, p.Y, p.Angle, p.VX, p.VY, n, colorReverseExhaust)
	}
}

// updateEffects advances both particle systems
func (g *Game) updateEffects() {
	if g.exhaust != nil {
		g.exhaust.Update()
	}
	if g.sparks != nil {
		g.sparks.Update()
	}
}
