package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem polls pointer and keyboard input for the menus
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the input state for one frame
type InputState struct {
	MouseX     int
	MouseY     int
	MouseClick bool // Left button went down this frame
	Escape     bool // Escape went down this frame
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	in := InputState{
		MouseX:     mx,
		MouseY:     my,
		MouseClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Escape:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	var taps []image.Point
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		taps = append(taps, image.Pt(x, y))
	}
	return mergeTaps(in, taps)
}

// mergeTaps folds this frame's new touches into the pointer state. The first
// tap moves the pointer and counts as a click, so the menus work on touch
// screens.
func mergeTaps(in InputState, taps []image.Point) InputState {
	if len(taps) == 0 {
		return in
	}
	in.MouseX, in.MouseY = taps[0].X, taps[0].Y
	in.MouseClick = true
	return in
}

// At returns a state with the cursor at (x, y) and nothing pressed
func At(x, y int) InputState {
	return InputState{MouseX: x, MouseY: y}
}

// ClickAt returns a state with a left click at (x, y)
func ClickAt(x, y int) InputState {
	return InputState{MouseX: x, MouseY: y, MouseClick: true}
}
