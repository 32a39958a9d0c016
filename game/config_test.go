package game

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigEmptyPathReturnsDefaults(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") failed: %v", err)
	}
	if !reflect.DeepEqual(config, DefaultConfig()) {
		t.Error("empty path did not return the defaults")
	}
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join("..", "config.yaml"))
	if err != nil {
		t.Fatalf("failed to load shipped config: %v", err)
	}
	if !reflect.DeepEqual(config, DefaultConfig()) {
		t.Errorf("config.yaml drifted from DefaultConfig:\n got %+v\nwant %+v", config, DefaultConfig())
	}
}

func TestLoadConfigOverridesOnlyGivenFields(t *testing.T) {
	path := writeConfig(t, `
stars:
  max: 5
  spawnChance: 3
endGame:
  pauseSeconds: 0.5
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Stars.Max != 5 || config.Stars.SpawnChance != 3 {
		t.Errorf("stars = %+v, want max 5 and chance 3", config.Stars)
	}
	if config.Stars.CollectRadius != 10 || config.Stars.Points != 10 {
		t.Errorf("unset star fields lost their defaults: %+v", config.Stars)
	}
	if config.Window != DefaultConfig().Window {
		t.Errorf("window = %+v, want defaults", config.Window)
	}
	if got := config.EndPauseTicks(); got != 30 {
		t.Errorf("EndPauseTicks = %d, want 30", got)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", "window:\n  width: 0\n"},
		{"zero tps", "window:\n  tps: 0\n"},
		{"damping above one", "player:\n  damping: 1.5\n"},
		{"zero bullet damping", "bullet:\n  damping: 0\n"},
		{"negative crash radius", "player:\n  crashRadius: -1\n"},
		{"zero star cap", "stars:\n  max: 0\n"},
		{"spawn chance over 100", "stars:\n  spawnChance: 101\n"},
		{"tint floor too high", "stars:\n  minTint: 256\n"},
		{"zero tile size", "stars:\n  tileSize: 0\n"},
		{"negative pause", "endGame:\n  pauseSeconds: -1\n"},
		{"zero sample rate", "audio:\n  sampleRate: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			_, err := LoadConfig(path)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("LoadConfig error = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("error %q does not name the file", err)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := writeConfig(t, "stars: [not, a, map\n")
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Fatalf("error = %v, want a parse error", err)
	}
}

func TestSampleRateIgnoredWhenAudioDisabled(t *testing.T) {
	config := DefaultConfig()
	config.Audio.Enabled = false
	config.Audio.SampleRate = 0
	if err := config.Validate(); err != nil {
		t.Errorf("disabled audio should not need a sample rate: %v", err)
	}
}
