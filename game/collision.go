package game

import (
	"image/color"
	"log"
)

// Arena is the shared world the player checks collisions and collections
// against. Game implements it.
type Arena interface {
	// Stars returns the live stars
	Stars() []*Star

	// Bullets returns the live bullets
	Bullets() []*Bullet

	// RemoveBullets drops every bullet whose ID is in ids
	RemoveBullets(ids map[EntityID]bool)

	// Collected is told about every star a bullet took
	Collected(star *Star)

	// EndGame signals that the player crashed. It is idempotent.
	EndGame()
}

// Stars returns the live stars
func (g *Game) Stars() []*Star {
	return g.stars
}

// Bullets returns the live bullets
func (g *Game) Bullets() []*Bullet {
	return g.bullets
}

// RemoveBullets filters the bullet list once, keeping bullets not in ids
func (g *Game) RemoveBullets(ids map[EntityID]bool) {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if !ids[b.ID()] {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(g.bullets); i++ {
		g.bullets[i] = nil
	}
	g.bullets = kept
}

// Collected bursts sparks in the star's colour
func (g *Game) Collected(star *Star) {
	if g.sparks == nil {
		return
	}
	tint := color.NRGBA{R: star.Tint.R, G: star.Tint.G, B: star.Tint.B, A: 0xff}
	g.sparks.Emit(star.X, star.Y, 0, 0, 0, g.config.Effects.BurstCount, tint)
}

// EndGame moves the game into the ended phase the first time it is called
func (g *Game) EndGame() {
	if g.phase == PhaseEnded {
		return
	}
	g.phase = PhaseEnded
	g.endedTick = g.ticks
	log.Printf("[Game] Player crashed at tick %d with score %d", g.ticks, g.player.Score())
}
