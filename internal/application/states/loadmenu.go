package states

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/slotmenu/internal/application/scene"
	"github.com/younwookim/slotmenu/internal/application/state"
	"github.com/younwookim/slotmenu/internal/application/ui"
)

// LoadMenu lists the save slots; picking one starts Play from that slot.
// With delete mode armed, picking a slot removes it instead.
type LoadMenu struct {
	*env
	pending
	list     *ui.ButtonList
	back     *ui.MenuButton
	remove   *ui.MenuButton
	deleting bool
	stale    bool // Slot list changed, rebuild after this frame's updates
}

func (l *LoadMenu) OnEnter(scene.Transition) {
	l.next = nil
	l.deleting = false
	l.stale = false
	theme := l.sess.Theme
	l.buildList()
	navY := l.screenH() - l.cfg.List.NavMarginY
	l.back = ui.NewMenuButton(theme, 100, navY, "Back", "", l.goTo(state.Menu)).
		WithFontSize(2)
	l.remove = ui.NewMenuButton(theme, float64(l.cfg.Display.ScreenWidth)-100, navY, "Delete", "", l.toggleDelete).
		WithFontSize(2)
}

func (l *LoadMenu) buildList() {
	l.list = ui.NewButtonList(l.sess.Theme, l.cfg.List, l.sess.Saves,
		l.cfg.Display.ScreenWidth, l.cfg.Display.ScreenHeight, l.pick)
}

func (l *LoadMenu) toggleDelete(string) {
	l.deleting = !l.deleting
	if l.deleting {
		l.remove.SetLabel("Cancel")
	} else {
		l.remove.SetLabel("Delete")
	}
}

func (l *LoadMenu) pick(key string) {
	if !l.deleting {
		l.next = &scene.Transition{To: state.Play, SaveKey: key}
		return
	}

	if err := l.store.Delete(key); err != nil {
		log.Printf("Failed to delete save %s: %v", key, err)
	}
	l.refreshSaves()
	l.toggleDelete("")
	l.stale = true
}

func (l *LoadMenu) Update(float64) (*scene.Transition, error) {
	in := l.input.GetInput()
	if in.Escape {
		return scene.To(state.Menu), nil
	}
	l.list.Update(in)
	l.back.Update(in)
	l.remove.Update(in)
	if l.stale {
		l.list.Kill()
		l.buildList()
		l.stale = false
	}
	return l.take(), nil
}

func (l *LoadMenu) Draw(screen *ebiten.Image) {
	l.clear(screen)
	theme := l.sess.Theme
	theme.DrawText(screen, "Load Game", l.centerX(), 80, 3)
	if len(l.sess.Saves) == 0 {
		theme.DrawText(screen, "No saves yet", l.centerX(), l.screenH()/2, 2)
	} else if l.deleting {
		theme.DrawText(screen, "Pick a save to delete", l.centerX(), 125, 2)
	}
	l.list.Draw(screen)
	l.back.Draw(screen)
	l.remove.Draw(screen)
}

func (l *LoadMenu) OnExit() {
	l.list.Kill()
	killAll(l.back, l.remove)
}

// List returns the slot list widget
func (l *LoadMenu) List() *ui.ButtonList {
	return l.list
}

// BackButton returns the button that returns to the menu
func (l *LoadMenu) BackButton() *ui.MenuButton {
	return l.back
}

// DeleteButton returns the button that arms and cancels delete mode
func (l *LoadMenu) DeleteButton() *ui.MenuButton {
	return l.remove
}

// Deleting reports whether the next pick deletes a slot
func (l *LoadMenu) Deleting() bool {
	return l.deleting
}
