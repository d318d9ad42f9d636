// Package states implements the game's named states and registers them.
//
// Every state is a thin scene over the ui widgets. Buttons receive their
// click handlers at construction, and a handler that leaves the state only
// records the requested transition; the scene returns it from Update.
package states

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/slotmenu/internal/application/scene"
	"github.com/younwookim/slotmenu/internal/application/state"
	"github.com/younwookim/slotmenu/internal/application/system"
	"github.com/younwookim/slotmenu/internal/application/ui"
	"github.com/younwookim/slotmenu/internal/domain/save"
	"github.com/younwookim/slotmenu/internal/infrastructure/config"
)

// Store is the save-slot collaborator the states read from and write to
type Store interface {
	List() ([]save.Entry, error)
	Load(key string) (*save.Snapshot, error)
	Save(snap save.Snapshot) (*save.Snapshot, error)
	Settings() (save.Settings, error)
	SetSetting(name string, value bool) error
	Delete(key string) error
}

// Input supplies one frame of input
type Input interface {
	GetInput() system.InputState
}

// Window applies display settings
type Window interface {
	SetFullscreen(on bool)
}

// EbitenWindow applies display settings to the Ebitengine window
type EbitenWindow struct{}

// SetFullscreen implements Window
func (EbitenWindow) SetFullscreen(on bool) {
	ebiten.SetFullscreen(on)
}

// Session is the state shared between scenes
type Session struct {
	Theme        *ui.Theme
	Saves        []save.Entry
	Settings     save.Settings
	LastPlayTime float64 // Length of the session that just ended
}

// Deps are the collaborators every state needs
type Deps struct {
	Config *config.UIConfig
	Store  Store
	Input  Input
	Window Window
}

// NewRegistry creates all seven states around one shared session
func NewRegistry(d Deps) (*scene.Registry, *Session, error) {
	var errs []error
	if d.Config == nil {
		errs = append(errs, errors.New("missing config"))
	}
	if d.Store == nil {
		errs = append(errs, errors.New("missing store"))
	}
	if d.Input == nil {
		errs = append(errs, errors.New("missing input"))
	}
	if d.Window == nil {
		errs = append(errs, errors.New("missing window"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, nil, fmt.Errorf("build states: %w", err)
	}

	e := &env{
		cfg:    d.Config,
		store:  d.Store,
		input:  d.Input,
		window: d.Window,
		sess:   &Session{Settings: save.DefaultSettings()},
	}

	r := scene.NewRegistry()
	for _, s := range []struct {
		name  state.Name
		scene scene.Scene
	}{
		{state.Boot, &Boot{env: e}},
		{state.Load, &Load{env: e}},
		{state.Play, &Play{env: e}},
		{state.Menu, &Menu{env: e}},
		{state.GameOver, &GameOver{env: e}},
		{state.LoadMenu, &LoadMenu{env: e}},
		{state.Settings, &Settings{env: e}},
	} {
		if err := r.Register(s.name, s.scene); err != nil {
			return nil, nil, err
		}
	}
	return r, e.sess, nil
}

// FPSOverlay draws the frame rate while the showFPS setting is on
func FPSOverlay(sess *Session) func(screen *ebiten.Image) {
	return func(screen *ebiten.Image) {
		if sess.Settings.ShowFPS {
			ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f  FPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS()))
		}
	}
}

type env struct {
	cfg    *config.UIConfig
	store  Store
	input  Input
	window Window
	sess   *Session
}

func (e *env) centerX() float64 {
	return float64(e.cfg.Display.ScreenWidth) / 2
}

func (e *env) screenH() float64 {
	return float64(e.cfg.Display.ScreenHeight)
}

func (e *env) clear(screen *ebiten.Image) {
	screen.Fill(e.cfg.Menu.Background.RGBA())
}

func (e *env) refreshSaves() {
	saves, err := e.store.List()
	if err != nil {
		log.Printf("Failed to list saves: %v", err)
		return
	}
	e.sess.Saves = saves
}

// pending holds the transition a click handler asked for
type pending struct {
	next *scene.Transition
}

func (p *pending) goTo(name state.Name) func(string) {
	return func(string) { p.next = scene.To(name) }
}

func (p *pending) take() *scene.Transition {
	t := p.next
	p.next = nil
	return t
}

func killAll(buttons ...*ui.MenuButton) {
	for _, b := range buttons {
		if b != nil {
			b.Kill()
		}
	}
}

func onOff(label string, on bool) string {
	if on {
		return label + ": On"
	}
	return label + ": Off"
}
