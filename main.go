package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"starcatcher/game"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults if empty)")
	assetDir := flag.String("assets", "", "asset directory (overrides the config)")
	seed := flag.Int64("seed", 0, "random seed for star spawning (0 = time based)")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *assetDir != "" {
		config.Assets.Dir = *assetDir
	}

	var audioCtx *audio.Context
	if config.Audio.Enabled {
		audioCtx = audio.NewContext(config.Audio.SampleRate)
	}

	assets, err := game.LoadAssets(os.DirFS(config.Assets.Dir), config, audioCtx)
	if err != nil {
		log.Fatalf("Failed to load assets from %s: %v (run: go run ./cmd/placeholders)", config.Assets.Dir, err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Starting with seed %d", *seed)

	g := game.NewGame(config, assets, game.NewKeyboardInput(), rand.New(rand.NewSource(*seed)))

	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetTPS(config.Window.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
