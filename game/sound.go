package game

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Sound is a one-shot audio cue
type Sound interface {
	Play()
}

// silence is used when audio is disabled or no assets are loaded
type silence struct{}

func (silence) Play() {}

// SoundEffect plays a decoded sample from the start on every Play
type SoundEffect struct {
	name   string
	player *audio.Player
}

// Play rewinds and plays the sample
func (s *SoundEffect) Play() {
	if err := s.player.Rewind(); err != nil {
		log.Printf("[Sound] Warning: failed to rewind %s: %v", s.name, err)
	}
	s.player.Play()
}

// Name returns the asset name the sample was loaded from
func (s *SoundEffect) Name() string {
	return s.name
}

// decodeSound builds a SoundEffect from encoded data, choosing the decoder by
// file extension.
func decodeSound(ctx *audio.Context, name string, data []byte) (*SoundEffect, error) {
	reader := bytes.NewReader(data)

	var stream io.ReadSeeker
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".wav":
		decoded, err := wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound %s: %w", name, err)
		}
		stream = decoded
	case ".mp3":
		decoded, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound %s: %w", name, err)
		}
		stream = decoded
	case ".ogg":
		decoded, err := vorbis.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound %s: %w", name, err)
		}
		stream = decoded
	default:
		return nil, fmt.Errorf("unsupported audio format %q for %s (supported: .wav, .mp3, .ogg)", ext, name)
	}

	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", name, err)
	}

	return &SoundEffect{name: name, player: player}, nil
}
