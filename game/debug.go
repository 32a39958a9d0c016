package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// DebugState holds debug flags toggled at runtime
type DebugState struct {
	ShowHitboxes bool // Show crash and collect radii plus entity counts
}

// Toggle flips the hitbox overlay
func (d *DebugState) Toggle() {
	d.ShowHitboxes = !d.ShowHitboxes
}

// drawDebugOverlay draws collision radii and counters on top of the frame
func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	if !g.debug.ShowHitboxes {
		return
	}

	p := g.player
	vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(g.config.Player.CrashRadius), 1, colornames.Red, true)

	for _, star := range g.stars {
		vector.StrokeCircle(screen, float32(star.X), float32(star.Y), float32(g.config.Stars.CollectRadius), 1, colornames.Lime, true)
	}
	for _, bullet := range g.bullets {
		vector.StrokeLine(screen, float32(bullet.X), float32(bullet.Y),
			float32(bullet.X+bullet.VX*4), float32(bullet.Y+bullet.VY*4), 1, colornames.Cyan, true)
	}

	info := fmt.Sprintf("tick %d  stars %d/%d  bullets %d  heading %.1f  speed %.2f",
		g.ticks, len(g.stars), g.config.Stars.Max, len(g.bullets), p.Angle, p.Speed())
	ebitenutil.DebugPrintAt(screen, info, 10, g.config.Window.Height-20)
}
