package states

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/slotmenu/internal/application/scene"
	"github.com/younwookim/slotmenu/internal/application/state"
	"github.com/younwookim/slotmenu/internal/application/ui"
)

// Menu is the title screen
type Menu struct {
	*env
	pending
	buttons []*ui.MenuButton
}

func (m *Menu) OnEnter(scene.Transition) {
	m.next = nil
	cx, h := m.centerX(), m.screenH()
	m.buttons = []*ui.MenuButton{
		ui.NewMenuButton(m.sess.Theme, cx, h/2-100, "New Game", "", m.goTo(state.Play)),
		ui.NewMenuButton(m.sess.Theme, cx, h/2, "Load Game", "", m.goTo(state.LoadMenu)),
		ui.NewMenuButton(m.sess.Theme, cx, h/2+100, "Settings", "", m.goTo(state.Settings)),
	}
}

func (m *Menu) Update(float64) (*scene.Transition, error) {
	in := m.input.GetInput()
	for _, b := range m.buttons {
		b.Update(in)
	}
	return m.take(), nil
}

func (m *Menu) Draw(screen *ebiten.Image) {
	m.clear(screen)
	m.sess.Theme.DrawText(screen, m.cfg.Display.Title, m.centerX(), 120, 4)
	for _, b := range m.buttons {
		b.Draw(screen)
	}
}

func (m *Menu) OnExit() {
	killAll(m.buttons...)
}

// Buttons returns New Game, Load Game and Settings in that order
func (m *Menu) Buttons() []*ui.MenuButton {
	return m.buttons
}
