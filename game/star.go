package game

import (
	"image/color"
	"math/rand"
)

// Star is a passive collectible. It never moves; only its animation frame
// changes, derived from elapsed time.
type Star struct {
	X, Y float64
	Tint color.RGBA
}

// NewStar places a star uniformly over the playfield with a random tint whose
// channels are uniform in [minTint,255].
func NewStar(rng *rand.Rand, field Playfield, minTint int) *Star {
	x := rng.Float64() * field.Width
	y := rng.Float64() * field.Height
	span := 256 - minTint
	return &Star{
		X: x,
		Y: y,
		Tint: color.RGBA{
			R: uint8(minTint + rng.Intn(span)),
			G: uint8(minTint + rng.Intn(span)),
			B: uint8(minTint + rng.Intn(span)),
			A: 0xff,
		},
	}
}

// Frame selects the animation frame for the given elapsed time
func (s *Star) Frame(elapsedMillis int64, frameMillis, frameCount int) int {
	if frameCount <= 0 || frameMillis <= 0 {
		return 0
	}
	return int((elapsedMillis / int64(frameMillis)) % int64(frameCount))
}
