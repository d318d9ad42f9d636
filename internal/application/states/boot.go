package states

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/slotmenu/internal/application/scene"
	"github.com/younwookim/slotmenu/internal/application/state"
	"github.com/younwookim/slotmenu/internal/application/ui"
)

// Boot builds the shared theme, then moves on to Load
type Boot struct {
	*env
}

func (b *Boot) OnEnter(scene.Transition) {}

func (b *Boot) Update(float64) (*scene.Transition, error) {
	if b.sess.Theme == nil {
		theme, err := ui.NewTheme(b.cfg.Menu)
		if err != nil {
			return nil, fmt.Errorf("boot: %w", err)
		}
		b.sess.Theme = theme
	}
	return scene.To(state.Load), nil
}

func (b *Boot) Draw(screen *ebiten.Image) {
	b.clear(screen)
}

func (b *Boot) OnExit() {}
