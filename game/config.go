package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration constants
type Config struct {
	// Window describes the playfield and the host loop rate
	Window WindowConfig `yaml:"window"`

	// Player tunes the controlled ship
	Player PlayerConfig `yaml:"player"`

	// Bullet tunes projectiles fired by the player
	Bullet BulletConfig `yaml:"bullet"`

	// Stars tunes spawning, collection and animation of stars
	Stars StarConfig `yaml:"stars"`

	// EndGame controls the pause between losing and closing the window
	EndGame EndGameConfig `yaml:"endGame"`

	// UI holds text sizes and positions
	UI UIConfig `yaml:"ui"`

	// Assets names the files loaded at startup
	Assets AssetConfig `yaml:"assets"`

	// Audio configures the audio context
	Audio AudioConfig `yaml:"audio"`

	// Profiling enables the FPS drop profiler
	Profiling ProfilingConfig `yaml:"profiling"`

	// Effects tunes the cosmetic particles
	Effects EffectsConfig `yaml:"effects"`
}

// WindowConfig is the fixed canvas. Its size is also the wraparound playfield.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// PlayerConfig tunes the controlled ship
type PlayerConfig struct {
	// TurnStep is the heading change per tick in degrees
	TurnStep float64 `yaml:"turnStep"`

	// Thrust is the acceleration applied per tick while a thrust key is held
	Thrust float64 `yaml:"thrust"`

	// Damping multiplies velocity after every move
	Damping float64 `yaml:"damping"`

	StartX float64 `yaml:"startX"`
	StartY float64 `yaml:"startY"`

	// CrashRadius is the distance to a star below which the game ends
	CrashRadius float64 `yaml:"crashRadius"`
}

// BulletConfig tunes projectiles
type BulletConfig struct {
	// Impulse is added along the launch angle every tick
	Impulse float64 `yaml:"impulse"`
	Damping float64 `yaml:"damping"`
}

// StarConfig tunes the collectible stars
type StarConfig struct {
	Max int `yaml:"max"`

	// SpawnChance is out of 100 per tick
	SpawnChance int `yaml:"spawnChance"`

	// CollectRadius is the bullet distance below which a star is collected
	CollectRadius float64 `yaml:"collectRadius"`
	Points        int     `yaml:"points"`

	FrameMillis int `yaml:"frameMillis"`
	TileSize    int `yaml:"tileSize"`

	// MinTint is the lowest value of each random colour channel
	MinTint int `yaml:"minTint"`
}

// EndGameConfig controls the non-blocking pause before quitting
type EndGameConfig struct {
	PauseSeconds float64 `yaml:"pauseSeconds"`
}

// UIConfig holds text sizes and positions
type UIConfig struct {
	ScoreFontSize  float64 `yaml:"scoreFontSize"`
	ScoreX         float64 `yaml:"scoreX"`
	ScoreY         float64 `yaml:"scoreY"`
	BannerText     string  `yaml:"bannerText"`
	BannerFontSize float64 `yaml:"bannerFontSize"`
	BannerScale    float64 `yaml:"bannerScale"`
	BannerX        float64 `yaml:"bannerX"`
	BannerY        float64 `yaml:"bannerY"`
}

// AssetConfig names the files loaded at startup, relative to Dir
type AssetConfig struct {
	Dir          string `yaml:"dir"`
	Background   string `yaml:"background"`
	Ship         string `yaml:"ship"`
	Bullet       string `yaml:"bullet"`
	StarTiles    string `yaml:"starTiles"`
	FireSound    string `yaml:"fireSound"`
	CollectSound string `yaml:"collectSound"`
}

// AudioConfig configures the audio context
type AudioConfig struct {
	Enabled    bool `yaml:"enabled"`
	SampleRate int  `yaml:"sampleRate"`
}

// ProfilingConfig enables automatic profiling when the frame rate drops
type ProfilingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`

	// FPSThreshold is the rate below which a drop is reported
	FPSThreshold float64 `yaml:"fpsThreshold"`

	// CaptureSeconds is the length of each CPU profile and trace
	CaptureSeconds float64 `yaml:"captureSeconds"`

	// CooldownSeconds is the minimum gap between two captures
	CooldownSeconds float64 `yaml:"cooldownSeconds"`
}

// EffectsConfig tunes exhaust and collection sparks. Particles are cosmetic
// and never affect the simulation.
type EffectsConfig struct {
	Enabled bool `yaml:"enabled"`

	// MaxParticles caps each particle system
	MaxParticles int `yaml:"maxParticles"`

	// BurstCount is the number of sparks per collected star
	BurstCount int `yaml:"burstCount"`

	// ExhaustPerTick is emitted while a thrust key is held
	ExhaustPerTick int `yaml:"exhaustPerTick"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "Star Catcher",
			TPS:    60,
		},
		Player: PlayerConfig{
			TurnStep:    4.5,
			Thrust:      0.25,
			Damping:     0.95,
			StartX:      320,
			StartY:      240,
			CrashRadius: 25,
		},
		Bullet: BulletConfig{
			Impulse: 0.45,
			Damping: 0.95,
		},
		Stars: StarConfig{
			Max:           15,
			SpawnChance:   1,
			CollectRadius: 10,
			Points:        10,
			FrameMillis:   100,
			TileSize:      25,
			MinTint:       40,
		},
		EndGame: EndGameConfig{
			PauseSeconds: 2,
		},
		UI: UIConfig{
			ScoreFontSize:  20,
			ScoreX:         10,
			ScoreY:         10,
			BannerText:     "YOU LOSE!",
			BannerFontSize: 10,
			BannerScale:    5,
			BannerX:        210,
			BannerY:        180,
		},
		Assets: AssetConfig{
			Dir:          "assets",
			Background:   "background.png",
			Ship:         "ship.png",
			Bullet:       "bullet.png",
			StarTiles:    "star.png",
			FireSound:    "fire.wav",
			CollectSound: "collect.wav",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 48000,
		},
		Profiling: ProfilingConfig{
			Enabled:         false,
			Dir:             "profiles",
			FPSThreshold:    45,
			CaptureSeconds:  5,
			CooldownSeconds: 10,
		},
		Effects: EffectsConfig{
			Enabled:        true,
			MaxParticles:   200,
			BurstCount:     12,
			ExhaustPerTick: 2,
		},
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that every value is usable by the simulation
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.Window.TPS)
	case c.Player.Damping <= 0 || c.Player.Damping > 1:
		return fmt.Errorf("%w: player damping must be in (0,1], got %v", ErrInvalidConfig, c.Player.Damping)
	case c.Bullet.Damping <= 0 || c.Bullet.Damping > 1:
		return fmt.Errorf("%w: bullet damping must be in (0,1], got %v", ErrInvalidConfig, c.Bullet.Damping)
	case c.Player.CrashRadius <= 0 || c.Stars.CollectRadius <= 0:
		return fmt.Errorf("%w: radii must be positive", ErrInvalidConfig)
	case c.Stars.Max <= 0:
		return fmt.Errorf("%w: star cap must be positive, got %d", ErrInvalidConfig, c.Stars.Max)
	case c.Stars.SpawnChance < 0 || c.Stars.SpawnChance > 100:
		return fmt.Errorf("%w: spawn chance must be in [0,100], got %d", ErrInvalidConfig, c.Stars.SpawnChance)
	case c.Stars.MinTint < 0 || c.Stars.MinTint > 255:
		return fmt.Errorf("%w: tint floor must be in [0,255], got %d", ErrInvalidConfig, c.Stars.MinTint)
	case c.Stars.TileSize <= 0 || c.Stars.FrameMillis <= 0:
		return fmt.Errorf("%w: star tiles and frame time must be positive", ErrInvalidConfig)
	case c.Stars.Points < 0:
		return fmt.Errorf("%w: star points must not be negative, got %d", ErrInvalidConfig, c.Stars.Points)
	case c.EndGame.PauseSeconds < 0:
		return fmt.Errorf("%w: end pause must not be negative, got %v", ErrInvalidConfig, c.EndGame.PauseSeconds)
	case c.Effects.Enabled && (c.Effects.MaxParticles <= 0 || c.Effects.BurstCount < 0 || c.Effects.ExhaustPerTick < 0):
		return fmt.Errorf("%w: effects need a positive particle cap and non-negative emission counts", ErrInvalidConfig)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, c.Audio.SampleRate)
	}
	return nil
}

// Playfield returns the wraparound bounds
func (c Config) Playfield() Playfield {
	return Playfield{Width: float64(c.Window.Width), Height: float64(c.Window.Height)}
}

// EndPauseTicks converts the end-game pause to simulation ticks
func (c Config) EndPauseTicks() int {
	return int(c.EndGame.PauseSeconds * float64(c.Window.TPS))
}
