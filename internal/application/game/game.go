// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/slotmenu/internal/application/scene"
	"github.com/younwookim/slotmenu/internal/application/state"
)

// Game implements ebiten.Game and switches scenes by state name.
type Game struct {
	registry *scene.Registry
	current  scene.Scene
	name     state.Name
	screenW  int
	screenH  int
	dt       float64
	overlay  func(screen *ebiten.Image)
}

// New creates a new Game starting at the named state.
// The initial scene's OnEnter is called immediately.
func New(registry *scene.Registry, start state.Name, screenW, screenH int) (*Game, error) {
	initial, err := registry.Lookup(start)
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}

	g := &Game{
		registry: registry,
		current:  initial,
		name:     start,
		screenW:  screenW,
		screenH:  screenH,
		dt:       1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter(scene.Transition{To: start})
	return g, nil
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		return g.switchTo(*next)
	}

	return nil
}

func (g *Game) switchTo(t scene.Transition) error {
	target, err := g.registry.Lookup(t.To)
	if err != nil {
		return fmt.Errorf("switch from %s: %w", g.name, err)
	}

	log.Printf("State %s -> %s", g.name, t.To)
	g.current.OnExit()
	g.current = target
	g.name = t.To
	g.current.OnEnter(t)
	return nil
}

// Draw renders the current scene, then the overlay if one is set.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
	if g.overlay != nil {
		g.overlay(screen)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// State returns the name of the active state.
func (g *Game) State() state.Name {
	return g.name
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetOverlay sets a function drawn on top of every scene.
func (g *Game) SetOverlay(fn func(screen *ebiten.Image)) {
	g.overlay = fn
}
