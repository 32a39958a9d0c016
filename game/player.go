package game

// Player is the controlled ship
type Player struct {
	Body

	// Heading in degrees. Not normalized; trigonometry handles any value.
	Angle float64

	score  int
	config PlayerConfig
	bullet BulletConfig
	stars  StarConfig
	field  Playfield

	fireSound    Sound
	collectSound Sound
}

// NewPlayer creates the ship at the configured start position
func NewPlayer(config Config, fireSound, collectSound Sound) *Player {
	if fireSound == nil {
		fireSound = silence{}
	}
	if collectSound == nil {
		collectSound = silence{}
	}
	p := &Player{
		config:       config.Player,
		bullet:       config.Bullet,
		stars:        config.Stars,
		field:        config.Playfield(),
		fireSound:    fireSound,
		collectSound: collectSound,
	}
	p.Warp(config.Player.StartX, config.Player.StartY)
	return p
}

// Score returns the points collected so far
func (p *Player) Score() int {
	return p.score
}

// TurnLeft rotates the heading counter-clockwise by one step
func (p *Player) TurnLeft() {
	p.Angle -= p.config.TurnStep
}

// TurnRight rotates the heading clockwise by one step
func (p *Player) TurnRight() {
	p.Angle += p.config.TurnStep
}

// AccelerateForwards adds thrust along the heading
func (p *Player) AccelerateForwards(acceleration float64) {
	dx, dy := thrustVector(p.Angle, acceleration)
	p.VX += dx
	p.VY += dy
}

// AccelerateBackwards subtracts thrust along the heading
func (p *Player) AccelerateBackwards(acceleration float64) {
	dx, dy := thrustVector(p.Angle, acceleration)
	p.VX -= dx
	p.VY -= dy
}

// Move integrates position, wraps and damps
func (p *Player) Move() {
	p.Integrate(p.field, p.config.Damping)
}

// Shoot creates a bullet at the ship's position and current heading. The
// caller registers it with the arena.
func (p *Player) Shoot() *Bullet {
	bullet := NewBullet(p.Angle, p.bullet, p.field)
	bullet.Warp(p.X, p.Y)
	p.fireSound.Play()
	return bullet
}

// Collide ends the game if any star is closer than the crash radius.
// Calling it after the game ended has no further effect.
func (p *Player) Collide(arena Arena) {
	for _, star := range arena.Stars() {
		if p.DistanceTo(star.X, star.Y) < p.config.CrashRadius {
			arena.EndGame()
			return
		}
	}
}

// CollectStars removes every star that has a bullet within the collect
// radius and returns the survivors. Each collecting bullet is consumed and can
// collect only one star; consumed bullets are removed from the arena in one pass.
func (p *Player) CollectStars(stars []*Star, arena Arena) []*Star {
	bullets := arena.Bullets()
	consumed := make(map[EntityID]bool)

	kept := stars[:0]
	for _, star := range stars {
		collected := false
		for _, bullet := range bullets {
			if consumed[bullet.ID()] {
				continue
			}
			if bullet.DistanceTo(star.X, star.Y) < p.stars.CollectRadius {
				consumed[bullet.ID()] = true
				collected = true
				break
			}
		}

		if collected {
			p.score += p.stars.Points
			p.collectSound.Play()
			arena.Collected(star)
			continue
		}
		kept = append(kept, star)
	}

	// Clear the tail so dropped stars can be collected by the GC
	for i := len(kept); i < len(stars); i++ {
		stars[i] = nil
	}

	if len(consumed) > 0 {
		arena.RemoveBullets(consumed)
	}
	return kept
}
