// Command placeholders writes a complete placeholder asset set so the game
// runs without external art or sound.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"starcatcher/game"
	"starcatcher/internal/synth"
)

func main() {
	configPath := flag.String("config", "", "YAML config naming the asset files (defaults if empty)")
	outDir := flag.String("out", "", "output directory (defaults to the configured asset dir)")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	dir := config.Assets.Dir
	if *outDir != "" {
		dir = *outDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Failed to create %s: %v", dir, err)
	}

	names := config.Assets
	tile := config.Stars.TileSize
	images := map[string]image.Image{
		names.Background: backgroundImage(config.Window.Width, config.Window.Height),
		names.Ship:       shipImage(32, 32, color.RGBA{100, 150, 255, 255}),
		names.Bullet:     dotImage(6, color.RGBA{255, 230, 120, 255}),
		names.StarTiles:  starSheet(tile, 10),
	}
	for name, img := range images {
		if err := writePNG(filepath.Join(dir, name), img); err != nil {
			log.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	rate := config.Audio.SampleRate
	sounds := map[string][]int16{
		names.FireSound:    synth.Sweep(synth.Tone{Freq: 900, Duration: 0.12, Volume: 0.2, Decay: 12}, 300, rate),
		names.CollectSound: synth.Sweep(synth.Tone{Freq: 660, Duration: 0.25, Volume: 0.25, Decay: 6}, 1320, rate),
	}
	for name, samples := range sounds {
		if err := os.WriteFile(filepath.Join(dir, name), synth.WAV(samples, rate), 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	log.Printf("Wrote %d images and %d sounds to %s", len(images), len(sounds), dir)
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// backgroundImage is a dark field with a fixed scatter of dim points
func backgroundImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{3, 5, 16, 255})
		}
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < width*height/400; i++ {
		b := uint8(60 + rng.Intn(140))
		img.Set(rng.Intn(width), rng.Intn(height), color.RGBA{b, b, b + b/8, 255})
	}
	return img
}

// shipImage draws a triangle pointing right, the facing of heading 0
func shipImage(width, height int, clr color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	outline := color.RGBA{0, 0, 0, 255}

	centerY := float64(height) / 2
	for y := 0; y < height; y++ {
		relY := math.Abs(float64(y) + 0.5 - centerY)
		// Width of the triangle shrinks towards the nose on the right
		edgeX := float64(width) * (1 - relY/centerY)
		for x := 0; x < width; x++ {
			fx := float64(x) + 0.5
			switch {
			case fx < edgeX-1:
				img.Set(x, y, clr)
			case fx < edgeX:
				img.Set(x, y, outline)
			}
		}
	}
	return img
}

func dotImage(size int, clr color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r) <= r {
				img.Set(x, y, clr)
			}
		}
	}
	return img
}

// starSheet lays out frames of a pulsing white glow in one row. White is
// tinted per star at draw time.
func starSheet(tile, frames int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, tile*frames, tile))
	center := float64(tile) / 2
	for f := 0; f < frames; f++ {
		pulse := 0.6 + 0.4*math.Sin(2*math.Pi*float64(f)/float64(frames))
		radius := center * pulse
		for y := 0; y < tile; y++ {
			for x := 0; x < tile; x++ {
				d := math.Hypot(float64(x)+0.5-center, float64(y)+0.5-center)
				if d > radius {
					continue
				}
				v := uint8(255 * (1 - d/radius))
				img.Set(f*tile+x, y, color.RGBA{v, v, v, 255})
			}
		}
	}
	return img
}
