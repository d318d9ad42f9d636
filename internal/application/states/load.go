package states

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/slotmenu/internal/application/scene"
	"github.com/younwookim/slotmenu/internal/application/state"
)

// Load reads settings and the save list, applies the settings and opens the menu.
// Store failures are logged; the game continues with defaults.
type Load struct {
	*env
}

func (l *Load) OnEnter(scene.Transition) {}

func (l *Load) Update(float64) (*scene.Transition, error) {
	settings, err := l.store.Settings()
	if err != nil {
		log.Printf("Failed to read settings, using defaults: %v", err)
	}
	l.sess.Settings = settings
	l.window.SetFullscreen(settings.Fullscreen)

	l.refreshSaves()
	log.Printf("Loaded %d saves", len(l.sess.Saves))

	return scene.To(state.Menu), nil
}

func (l *Load) Draw(screen *ebiten.Image) {
	l.clear(screen)
	l.sess.Theme.DrawText(screen, "Loading...", l.centerX(), l.screenH()/2, 2)
}

func (l *Load) OnExit() {}
