package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
)

var colorBackground = color.RGBA{3, 5, 16, 255}

// Frame is the read-only snapshot the renderer draws
type Frame struct {
	Player        *Player
	Stars         []*Star
	Bullets       []*Bullet
	Score         int
	Ended         bool
	ElapsedMillis int64
	Effects       []*ParticleSystem
}

// Renderer handles rendering of game entities
type Renderer struct {
	assets *Assets
	ui     UIConfig
	stars  StarConfig
	width  float64
	height float64
}

// NewRenderer creates a new renderer
func NewRenderer(config Config, assets *Assets) *Renderer {
	return &Renderer{
		assets: assets,
		ui:     config.UI,
		stars:  config.Stars,
		width:  float64(config.Window.Width),
		height: float64(config.Window.Height),
	}
}

// Render draws one frame back to front: background, player, stars, bullets,
// particles, score, then the end-game banner.
func (r *Renderer) Render(screen *ebiten.Image, frame Frame) {
	r.drawBackground(screen)
	r.drawPlayer(screen, frame.Player)
	for _, star := range frame.Stars {
		r.drawStar(screen, star, frame.ElapsedMillis)
	}
	for _, bullet := range frame.Bullets {
		drawRotated(screen, r.assets.Bullet, bullet.X, bullet.Y, 0)
	}
	for _, effect := range frame.Effects {
		effect.Draw(screen)
	}
	r.drawScore(screen, frame.Score)
	if frame.Ended {
		r.drawBanner(screen)
	}
}

// drawBackground stretches the background image over the whole window
func (r *Renderer) drawBackground(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	bg := r.assets.Background
	bounds := bg.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.width/float64(bounds.Dx()), r.height/float64(bounds.Dy()))
	screen.DrawImage(bg, op)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p *Player) {
	drawRotated(screen, r.assets.Ship, p.X, p.Y, p.Angle)
}

// drawStar draws the current animation frame centred on the star, tinted and
// blended additively.
func (r *Renderer) drawStar(screen *ebiten.Image, star *Star, elapsedMillis int64) {
	frames := r.assets.StarFrames
	if len(frames) == 0 {
		return
	}
	img := frames[star.Frame(elapsedMillis, r.stars.FrameMillis, len(frames))]
	bounds := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(star.X-float64(bounds.Dx())/2, star.Y-float64(bounds.Dy())/2)
	op.ColorScale.ScaleWithColor(star.Tint)
	op.Blend = ebiten.BlendLighter
	screen.DrawImage(img, op)
}

func (r *Renderer) drawScore(screen *ebiten.Image, score int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.ui.ScoreX, r.ui.ScoreY)
	op.ColorScale.ScaleWithColor(colornames.Yellow)
	text.Draw(screen, fmt.Sprintf("Score: %d", score), r.assets.ScoreFace, op)
}

func (r *Renderer) drawBanner(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(r.ui.BannerScale, r.ui.BannerScale)
	op.GeoM.Translate(r.ui.BannerX, r.ui.BannerY)
	op.ColorScale.ScaleWithColor(colornames.Yellow)
	text.Draw(screen, r.ui.BannerText, r.assets.BannerFace, op)
}

// drawRotated draws img centred at (x, y), rotated clockwise by angle degrees
func drawRotated(screen, img *ebiten.Image, x, y, angle float64) {
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Rotate(angle * math.Pi / 180)
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}
