// Package scene defines the Scene interface for game screens.
//
// Each game state (boot, menu, load menu, play, settings, etc.) implements
// the Scene interface to handle its own update logic and rendering.
// Scenes are looked up by state name through a Registry.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/slotmenu/internal/application/state"
)

// Transition requests a switch to another state.
type Transition struct {
	To state.Name

	// SaveKey carries the selected save slot into the next scene, if any.
	SaveKey string
}

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a Transition from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns a transition if the scene wants to leave, nil to stay.
	// Returns an error to terminate the game.
	Update(dt float64) (next *Transition, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene with the transition that led here.
	OnEnter(from Transition)

	// OnExit is called when leaving this scene.
	// Widgets created on enter are killed here.
	OnExit()
}

// To builds a transition to the named state.
func To(name state.Name) *Transition {
	return &Transition{To: name}
}
