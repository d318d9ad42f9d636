package states

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/slotmenu/internal/application/scene"
	"github.com/younwookim/slotmenu/internal/application/state"
	"github.com/younwookim/slotmenu/internal/application/ui"
	"github.com/younwookim/slotmenu/internal/domain/save"
)

// Settings toggles display options. Each toggle applies at once and is persisted.
type Settings struct {
	*env
	pending
	fullscreen *ui.MenuButton
	showFPS    *ui.MenuButton
	back       *ui.MenuButton
}

func (s *Settings) OnEnter(scene.Transition) {
	s.next = nil
	theme := s.sess.Theme
	cx, h := s.centerX(), s.screenH()
	s.fullscreen = ui.NewMenuButton(theme, cx, h/2-100, onOff("Fullscreen", s.sess.Settings.Fullscreen),
		save.SettingFullscreen, s.toggle)
	s.showFPS = ui.NewMenuButton(theme, cx, h/2, onOff("Show FPS", s.sess.Settings.ShowFPS),
		save.SettingShowFPS, s.toggle)
	s.back = ui.NewMenuButton(theme, cx, h/2+100, "Back", "", s.goTo(state.Menu))
}

// toggle flips the setting named by the clicked button's key
func (s *Settings) toggle(name string) {
	cur := &s.sess.Settings
	var on bool
	switch name {
	case save.SettingFullscreen:
		cur.Fullscreen = !cur.Fullscreen
		on = cur.Fullscreen
		s.window.SetFullscreen(on)
		s.fullscreen.SetLabel(onOff("Fullscreen", on))
	case save.SettingShowFPS:
		cur.ShowFPS = !cur.ShowFPS
		on = cur.ShowFPS
		s.showFPS.SetLabel(onOff("Show FPS", on))
	default:
		return
	}

	if err := s.store.SetSetting(name, on); err != nil {
		log.Printf("Failed to persist %s: %v", name, err)
	}
}

func (s *Settings) Update(float64) (*scene.Transition, error) {
	in := s.input.GetInput()
	if in.Escape {
		return scene.To(state.Menu), nil
	}
	for _, b := range s.Buttons() {
		b.Update(in)
	}
	return s.take(), nil
}

func (s *Settings) Draw(screen *ebiten.Image) {
	s.clear(screen)
	s.sess.Theme.DrawText(screen, "Settings", s.centerX(), 120, 4)
	for _, b := range s.Buttons() {
		b.Draw(screen)
	}
}

func (s *Settings) OnExit() {
	killAll(s.Buttons()...)
}

// Buttons returns the fullscreen toggle, the FPS toggle and Back in that order
func (s *Settings) Buttons() []*ui.MenuButton {
	return []*ui.MenuButton{s.fullscreen, s.showFPS, s.back}
}
