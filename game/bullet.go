package game

// Bullet is a projectile fired by the player. It keeps its launch angle for
// its whole life and accelerates along it every tick.
type Bullet struct {
	Body

	id     EntityID
	angle  float64
	config BulletConfig
	field  Playfield
}

// NewBullet creates a bullet with a unique ID heading along angle degrees
func NewBullet(angle float64, config BulletConfig, field Playfield) *Bullet {
	return &Bullet{
		id:     generateEntityID(),
		angle:  angle,
		config: config,
		field:  field,
	}
}

// ID returns the bullet's handle
func (b *Bullet) ID() EntityID {
	return b.id
}

// Angle returns the launch angle in degrees
func (b *Bullet) Angle() float64 {
	return b.angle
}

// Accelerate adds the fixed impulse along the launch angle
func (b *Bullet) Accelerate() {
	dx, dy := thrustVector(b.angle, b.config.Impulse)
	b.VX += dx
	b.VY += dy
}

// Move integrates position, wraps and damps
func (b *Bullet) Move() {
	b.Integrate(b.field, b.config.Damping)
}

// Update advances the bullet one simulation tick
func (b *Bullet) Update() {
	b.Accelerate()
	b.Move()
}
