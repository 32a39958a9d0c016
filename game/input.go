package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Controls is a snapshot of the player's commands for one tick
type Controls struct {
	TurnLeft  bool // A/Left arrow
	TurnRight bool // D/Right arrow
	Forward   bool // W/Up arrow
	Backward  bool // S/Down arrow

	// Fire is the held state of the fire key; the game debounces it
	Fire bool

	// Quit is edge-triggered (Escape)
	Quit bool

	// ToggleDebug is edge-triggered (F1)
	ToggleDebug bool
}

// InputProvider defines where the game reads its controls from
type InputProvider interface {
	// Poll returns the controls for the current tick
	Poll() Controls
}

// KeyboardInput provides input from the keyboard
type KeyboardInput struct{}

// NewKeyboardInput creates a new keyboard input provider
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Poll reads arrow keys/WASD, space, Escape and F1
func (k *KeyboardInput) Poll() Controls {
	return Controls{
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Forward:     ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Backward:    ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Fire:        ebiten.IsKeyPressed(ebiten.KeySpace),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyF1),
	}
}
