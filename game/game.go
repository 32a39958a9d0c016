package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Phase is the state of the game loop
type Phase int

const (
	// PhasePlaying accepts input and runs the simulation
	PhasePlaying Phase = iota

	// PhaseEnded is terminal: the banner is shown while the end pause counts down
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Game represents the main game state. It owns the player, the stars and the
// bullets; all mutation happens in Update, Draw only reads.
type Game struct {
	config   Config
	field    Playfield
	input    InputProvider
	rng      *rand.Rand
	renderer *Renderer
	debug    *DebugState

	player  *Player
	stars   []*Star
	bullets []*Bullet

	phase     Phase
	ticks     int
	endedTick int

	// firePressed debounces the fire key until it is released
	firePressed bool

	// Cosmetic particles, nil when effects are disabled
	exhaust *ParticleSystem
	sparks  *ParticleSystem

	// FPS drop detection, only set up when profiling is enabled
	monitor  *FrameMonitor
	profiler *Profiler
}

// NewGame creates a new game instance. assets may be nil, in which case
// sounds are silent and Draw only clears the screen.
func NewGame(config Config, assets *Assets, input InputProvider, rng *rand.Rand) *Game {
	var fireSound, collectSound Sound
	var renderer *Renderer
	if assets != nil {
		fireSound, collectSound = assets.FireSound, assets.CollectSound
		renderer = NewRenderer(config, assets)
	}

	game := &Game{
		config:   config,
		field:    config.Playfield(),
		input:    input,
		rng:      rng,
		renderer: renderer,
		debug:    &DebugState{},
		player:   NewPlayer(config, fireSound, collectSound),
		stars:    make([]*Star, 0, config.Stars.Max),
		bullets:  make([]*Bullet, 0, 16),
		phase:    PhasePlaying,
	}

	if config.Effects.Enabled {
		// Effects draw from their own source so the spawn sequence depends
		// only on the game seed.
		fx := rand.New(rand.NewSource(1))
		game.exhaust = NewExhaustParticleSystem(config.Effects, game.field, fx)
		game.sparks = NewSparkParticleSystem(config.Effects, game.field, fx)
	}

	if config.Profiling.Enabled {
		game.monitor = NewFrameMonitor(config.Profiling.FPSThreshold, time.Now())
		game.profiler = NewProfiler(config.Profiling)
	}

	return game
}

// Player returns the controlled ship
func (g *Game) Player() *Player {
	return g.player
}

// Phase returns the current loop state
func (g *Game) Phase() Phase {
	return g.phase
}

// Ticks returns the number of simulation ticks run so far
func (g *Game) Ticks() int {
	return g.ticks
}

// ElapsedMillis derives wall time from the tick counter
func (g *Game) ElapsedMillis() int64 {
	return int64(g.ticks) * 1000 / int64(g.config.Window.TPS)
}

// Update runs one simulation tick. It returns ebiten.Termination when the
// player quits or when the end-game pause has elapsed.
func (g *Game) Update() error {
	g.ticks++
	g.observeFrameRate()

	controls := g.input.Poll()
	if controls.Quit {
		log.Printf("[Game] Quit requested at tick %d", g.ticks)
		return ebiten.Termination
	}
	if controls.ToggleDebug {
		g.debug.Toggle()
	}

	if g.phase == PhaseEnded {
		if g.ticks-g.endedTick >= g.config.EndPauseTicks() {
			log.Printf("[Game] Closing after game over, final score %d", g.player.Score())
			return ebiten.Termination
		}
		return nil
	}

	g.step(controls)
	return nil
}

// step advances the playing phase by one tick
func (g *Game) step(controls Controls) {
	g.updateEffects()

	if controls.TurnLeft {
		g.player.TurnLeft()
	}
	if controls.TurnRight {
		g.player.TurnRight()
	}
	if controls.Forward {
		g.player.AccelerateForwards(g.config.Player.Thrust)
	}
	if controls.Backward {
		g.player.AccelerateBackwards(g.config.Player.Thrust)
	}
	g.emitThrust(controls)

	// Bullets fired on earlier ticks move before a new one is spawned, so a
	// fresh bullet sits on the ship for its first tick.
	for _, bullet := range g.bullets {
		bullet.Update()
	}

	if controls.Fire && !g.firePressed {
		g.firePressed = true
		g.bullets = append(g.bullets, g.player.Shoot())
	} else if !controls.Fire {
		g.firePressed = false
	}

	g.player.Move()
	g.stars = g.player.CollectStars(g.stars, g)
	g.player.Collide(g)
	if g.phase == PhaseEnded {
		return
	}

	g.maybeSpawnStar()
}

// maybeSpawnStar rolls the spawn chance every tick and adds a star when the
// roll succeeds and the cap has room.
func (g *Game) maybeSpawnStar() {
	if g.rng.Intn(100) < g.config.Stars.SpawnChance && len(g.stars) < g.config.Stars.Max {
		g.stars = append(g.stars, NewStar(g.rng, g.field, g.config.Stars.MinTint))
	}
}

// observeFrameRate feeds the frame monitor and triggers a profile capture on
// a sustained drop.
func (g *Game) observeFrameRate() {
	if g.monitor == nil {
		return
	}

	fps, dropped := g.monitor.Tick(time.Now())
	if !dropped {
		return
	}

	log.Printf("[Game] FPS drop detected (%.0f FPS, %d stars, %d bullets)", fps, len(g.stars), len(g.bullets))
	if err := g.profiler.CaptureProfile(fpsDropReason(fps, len(g.stars), len(g.bullets))); err != nil {
		log.Printf("[Game] Profile not captured: %v", err)
	}
}

// Draw renders the game. It never mutates simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer == nil {
		screen.Fill(colorBackground)
		return
	}
	g.renderer.Render(screen, g.view())
	g.drawDebugOverlay(screen)
}

// view collects what the renderer needs for one frame
func (g *Game) view() Frame {
	return Frame{
		Player:        g.player,
		Stars:         g.stars,
		Bullets:       g.bullets,
		Score:         g.player.Score(),
		Ended:         g.phase == PhaseEnded,
		ElapsedMillis: g.ElapsedMillis(),
		Effects:       g.effects(),
	}
}

// effects lists the enabled particle systems in draw order
func (g *Game) effects() []*ParticleSystem {
	if g.exhaust == nil {
		return nil
	}
	return []*ParticleSystem{g.exhaust, g.sparks}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Window.Width, g.config.Window.Height
}
