package states

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/slotmenu/internal/application/scene"
	"github.com/younwookim/slotmenu/internal/application/state"
	"github.com/younwookim/slotmenu/internal/application/ui"
	"github.com/younwookim/slotmenu/internal/domain/save"
)

var colorPauseOverlay = color.RGBA{0, 0, 0, 96}

// Play runs a session clock. Escape toggles a pause menu whose buttons are
// hidden while playing and revealed while paused.
type Play struct {
	*env
	pending

	saveKey  string // Slot the session was loaded from or last saved to
	playTime float64
	paused   bool
	status   string

	resume  *ui.MenuButton
	saveBtn *ui.MenuButton
	quit    *ui.MenuButton
}

func (p *Play) OnEnter(from scene.Transition) {
	p.next = nil
	p.playTime = 0
	p.paused = false
	p.status = ""
	p.saveKey = from.SaveKey

	if from.SaveKey != "" {
		snap, err := p.store.Load(from.SaveKey)
		if err != nil {
			log.Printf("Failed to load save %s: %v", from.SaveKey, err)
			p.saveKey = ""
			p.status = "Could not load save"
		} else {
			p.playTime = snap.PlayTime
			p.status = "Loaded " + snap.Title
		}
	}

	theme := p.sess.Theme
	cx, h := p.centerX(), p.screenH()
	p.resume = ui.NewMenuButton(theme, cx, h/2-100, "Resume", "", func(string) { p.setPaused(false) }).Hide()
	p.saveBtn = ui.NewMenuButton(theme, cx, h/2, "Save", "", p.save).Hide()
	p.quit = ui.NewMenuButton(theme, cx, h/2+100, "Quit", "", p.quitSession).Hide()
}

func (p *Play) Update(dt float64) (*scene.Transition, error) {
	in := p.input.GetInput()
	if in.Escape {
		p.setPaused(!p.paused)
		return p.take(), nil
	}

	if p.paused {
		for _, b := range p.PauseButtons() {
			b.Update(in)
		}
	} else {
		p.playTime += dt
	}
	return p.take(), nil
}

func (p *Play) setPaused(paused bool) {
	p.paused = paused
	for _, b := range p.PauseButtons() {
		if paused {
			b.Reveal()
		} else {
			b.Hide()
		}
	}
}

func (p *Play) save(string) {
	snap, err := p.store.Save(save.Snapshot{Key: p.saveKey, PlayTime: p.playTime})
	if err != nil {
		log.Printf("Failed to save: %v", err)
		p.status = "Save failed"
		return
	}
	p.saveKey = snap.Key
	p.status = "Saved " + snap.Title
	log.Printf("Saved %s (%s played)", snap.Key, save.FormatPlayTime(snap.PlayTime))
	p.refreshSaves()
}

func (p *Play) quitSession(string) {
	p.sess.LastPlayTime = p.playTime
	p.next = scene.To(state.GameOver)
}

func (p *Play) Draw(screen *ebiten.Image) {
	p.clear(screen)
	theme := p.sess.Theme
	theme.DrawText(screen, save.FormatPlayTime(p.playTime), p.centerX(), 80, 4)
	theme.DrawText(screen, "Esc: pause", p.centerX(), p.screenH()-40, 1.5)
	if p.status != "" {
		theme.DrawText(screen, p.status, p.centerX(), 150, 1.5)
	}

	if p.paused {
		w, h := float32(p.cfg.Display.ScreenWidth), float32(p.cfg.Display.ScreenHeight)
		vector.DrawFilledRect(screen, 0, 0, w, h, colorPauseOverlay, false)
		for _, b := range p.PauseButtons() {
			b.Draw(screen)
		}
	}
}

func (p *Play) OnExit() {
	killAll(p.PauseButtons()...)
}

// PauseButtons returns Resume, Save and Quit in that order
func (p *Play) PauseButtons() []*ui.MenuButton {
	return []*ui.MenuButton{p.resume, p.saveBtn, p.quit}
}

// PlayTime returns the session length in seconds
func (p *Play) PlayTime() float64 { return p.playTime }

// Paused reports whether the pause menu is open
func (p *Play) Paused() bool { return p.paused }

// SaveKey returns the slot the session writes to, empty before the first save
func (p *Play) SaveKey() string { return p.saveKey }

// Status returns the last load or save message
func (p *Play) Status() string { return p.status }
