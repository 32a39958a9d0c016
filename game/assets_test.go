package game

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"starcatcher/internal/synth"
)

// Ebitengine allows a single audio context per process
var testAudioContext *audio.Context

func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)
	os.Exit(m.Run())
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{255, 255, 255, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

func encodeWAV() []byte {
	samples := synth.Beep(synth.Tone{Freq: 440, Duration: 0.05, Volume: 0.2}, 48000)
	return synth.WAV(samples, 48000)
}

// assetFS builds a complete asset set matching DefaultConfig
func assetFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"background.png": {Data: encodePNG(t, 64, 48)},
		"ship.png":       {Data: encodePNG(t, 32, 32)},
		"bullet.png":     {Data: encodePNG(t, 6, 6)},
		"star.png":       {Data: encodePNG(t, 260, 25)},
		"fire.wav":       {Data: encodeWAV()},
		"collect.wav":    {Data: encodeWAV()},
	}
}

func TestLoadAssets(t *testing.T) {
	assets, err := LoadAssets(assetFS(t), DefaultConfig(), testAudioContext)
	if err != nil {
		t.Fatalf("LoadAssets failed: %v", err)
	}

	if len(assets.StarFrames) != 10 {
		t.Errorf("star frames = %d, want 10", len(assets.StarFrames))
	}
	for i, frame := range assets.StarFrames {
		if size := frame.Bounds().Size(); size != image.Pt(25, 25) {
			t.Errorf("frame %d size = %v, want 25x25", i, size)
		}
	}
	if w, h := assets.Ship.Bounds().Dx(), assets.Ship.Bounds().Dy(); w != 32 || h != 32 {
		t.Errorf("ship size = %dx%d, want 32x32", w, h)
	}

	fire, ok := assets.FireSound.(*SoundEffect)
	if !ok {
		t.Fatalf("fire sound is %T, want *SoundEffect", assets.FireSound)
	}
	if fire.Name() != "fire.wav" {
		t.Errorf("fire sound name = %q", fire.Name())
	}
	if assets.ScoreFace == nil || assets.BannerFace == nil {
		t.Error("fonts not loaded")
	}
}

func TestLoadAssetsWithoutAudioSkipsSounds(t *testing.T) {
	fsys := assetFS(t)
	delete(fsys, "fire.wav")
	delete(fsys, "collect.wav")

	assets, err := LoadAssets(fsys, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("LoadAssets failed: %v", err)
	}
	if _, ok := assets.FireSound.(silence); !ok {
		t.Errorf("fire sound is %T, want silence", assets.FireSound)
	}
	if _, ok := assets.CollectSound.(silence); !ok {
		t.Errorf("collect sound is %T, want silence", assets.CollectSound)
	}
}

func TestLoadAssetsReportsMissingFile(t *testing.T) {
	for _, name := range []string{"background.png", "ship.png", "bullet.png", "star.png", "fire.wav", "collect.wav"} {
		t.Run(name, func(t *testing.T) {
			fsys := assetFS(t)
			delete(fsys, name)

			_, err := LoadAssets(fsys, DefaultConfig(), testAudioContext)
			if !errors.Is(err, ErrMissingAsset) {
				t.Fatalf("error = %v, want ErrMissingAsset", err)
			}
			if !strings.Contains(err.Error(), name) {
				t.Errorf("error %q does not name %s", err, name)
			}
		})
	}
}

func TestLoadAssetsRejectsCorruptImage(t *testing.T) {
	fsys := assetFS(t)
	fsys["ship.png"] = &fstest.MapFile{Data: []byte("not an image")}

	_, err := LoadAssets(fsys, DefaultConfig(), nil)
	if err == nil || !strings.Contains(err.Error(), "failed to decode image ship.png") {
		t.Fatalf("error = %v, want a decode error for ship.png", err)
	}
	if errors.Is(err, ErrMissingAsset) {
		t.Error("a corrupt file is not a missing one")
	}
}

func TestLoadAssetsRejectsTinyStarSheet(t *testing.T) {
	fsys := assetFS(t)
	fsys["star.png"] = &fstest.MapFile{Data: encodePNG(t, 24, 25)}

	_, err := LoadAssets(fsys, DefaultConfig(), nil)
	if err == nil || !strings.Contains(err.Error(), "star tiles") {
		t.Fatalf("error = %v, want a star tile error", err)
	}
}

func TestDecodeSoundRejectsUnknownFormat(t *testing.T) {
	_, err := decodeSound(testAudioContext, "fire.flac", encodeWAV())
	if err == nil || !strings.Contains(err.Error(), "unsupported audio format") {
		t.Fatalf("error = %v, want unsupported format", err)
	}
}

func TestDecodeSoundRejectsCorruptWAV(t *testing.T) {
	_, err := decodeSound(testAudioContext, "fire.wav", []byte("RIFF garbage"))
	if err == nil {
		t.Fatal("expected an error for a corrupt WAV")
	}
}

func TestTileRects(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		w, h   int
		want   int
	}{
		{"single row", image.Rect(0, 0, 250, 25), 25, 25, 10},
		{"partial column dropped", image.Rect(0, 0, 260, 25), 25, 25, 10},
		{"grid", image.Rect(0, 0, 50, 50), 25, 25, 4},
		{"partial row dropped", image.Rect(0, 0, 50, 49), 25, 25, 2},
		{"too small", image.Rect(0, 0, 24, 25), 25, 25, 0},
		{"zero tile", image.Rect(0, 0, 50, 50), 0, 25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rects := tileRects(tt.bounds, tt.w, tt.h)
			if len(rects) != tt.want {
				t.Fatalf("got %d tiles, want %d", len(rects), tt.want)
			}
			for _, r := range rects {
				if !r.In(tt.bounds) || r.Dx() != tt.w || r.Dy() != tt.h {
					t.Errorf("bad tile %v", r)
				}
			}
		})
	}

	// Row-major order: the second tile of a grid sits to the right of the first
	rects := tileRects(image.Rect(0, 0, 50, 50), 25, 25)
	if rects[1] != image.Rect(25, 0, 50, 25) {
		t.Errorf("second tile = %v, want (25,0)-(50,25)", rects[1])
	}
}

func TestNewGameWithAssetsWiresSounds(t *testing.T) {
	assets, err := LoadAssets(assetFS(t), DefaultConfig(), testAudioContext)
	if err != nil {
		t.Fatalf("LoadAssets failed: %v", err)
	}

	g := NewGame(quietConfig(), assets, &heldInput{}, rand.New(rand.NewSource(1)))
	if g.renderer == nil {
		t.Fatal("renderer not created from assets")
	}
	if g.Player().fireSound != assets.FireSound {
		t.Error("player does not use the loaded fire sound")
	}
}
