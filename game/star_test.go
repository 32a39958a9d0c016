package game

import (
	"math/rand"
	"testing"
)

func TestNewStarStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	field := Playfield{Width: 640, Height: 480}

	for i := 0; i < 2000; i++ {
		s := NewStar(rng, field, 40)
		if s.X < 0 || s.X >= 640 || s.Y < 0 || s.Y >= 480 {
			t.Fatalf("star %d outside playfield: (%v,%v)", i, s.X, s.Y)
		}
		for _, c := range []uint8{s.Tint.R, s.Tint.G, s.Tint.B} {
			if c < 40 {
				t.Fatalf("star %d channel %d below tint floor", i, c)
			}
		}
		if s.Tint.A != 0xff {
			t.Fatalf("star %d is not opaque", i)
		}
	}
}

func TestNewStarIsDeterministicForSeed(t *testing.T) {
	field := Playfield{Width: 640, Height: 480}
	a := NewStar(rand.New(rand.NewSource(99)), field, 40)
	b := NewStar(rand.New(rand.NewSource(99)), field, 40)

	if *a != *b {
		t.Errorf("same seed produced different stars: %+v vs %+v", a, b)
	}
}

func TestStarFrame(t *testing.T) {
	s := &Star{}
	tests := []struct {
		elapsed int64
		millis  int
		count   int
		want    int
	}{
		{0, 100, 10, 0},
		{99, 100, 10, 0},
		{100, 100, 10, 1},
		{950, 100, 10, 9},
		{1000, 100, 10, 0},
		{12345, 100, 10, 3},
		{500, 100, 1, 0},
		{500, 100, 0, 0},
		{500, 0, 10, 0},
	}

	for _, tt := range tests {
		if got := s.Frame(tt.elapsed, tt.millis, tt.count); got != tt.want {
			t.Errorf("Frame(%d, %d, %d) = %d, want %d", tt.elapsed, tt.millis, tt.count, got, tt.want)
		}
	}
}
