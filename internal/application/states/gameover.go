package states

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/slotmenu/internal/application/scene"
	"github.com/younwookim/slotmenu/internal/application/state"
	"github.com/younwookim/slotmenu/internal/application/ui"
	"github.com/younwookim/slotmenu/internal/domain/save"
)

// GameOver shows how long the last session ran
type GameOver struct {
	*env
	pending
	menu *ui.MenuButton
}

func (g *GameOver) OnEnter(scene.Transition) {
	g.next = nil
	g.menu = ui.NewMenuButton(g.sess.Theme, g.centerX(), g.screenH()/2+120, "Menu", "", g.goTo(state.Menu))
}

func (g *GameOver) Update(float64) (*scene.Transition, error) {
	in := g.input.GetInput()
	if in.Escape {
		return scene.To(state.Menu), nil
	}
	g.menu.Update(in)
	return g.take(), nil
}

func (g *GameOver) Draw(screen *ebiten.Image) {
	g.clear(screen)
	theme := g.sess.Theme
	theme.DrawText(screen, "Game Over", g.centerX(), g.screenH()/2-100, 4)
	theme.DrawText(screen, "Time played "+save.FormatPlayTime(g.sess.LastPlayTime), g.centerX(), g.screenH()/2, 2)
	g.menu.Draw(screen)
}

func (g *GameOver) OnExit() {
	g.menu.Kill()
}

// MenuButton returns the button that returns to the menu
func (g *GameOver) MenuButton() *ui.MenuButton {
	return g.menu
}
