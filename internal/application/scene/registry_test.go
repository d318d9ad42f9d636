package scene

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/slotmenu/internal/application/state"
)

type stubScene struct{ id string }

func (s *stubScene) Update(float64) (*Transition, error) { return nil, nil }
func (s *stubScene) Draw(*ebiten.Image)                  {}
func (s *stubScene) OnEnter(Transition)                  {}
func (s *stubScene) OnExit()                             {}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	menu := &stubScene{id: "menu"}

	require.NoError(t, r.Register(state.Menu, menu))

	got, err := r.Lookup(state.Menu)
	require.NoError(t, err)
	assert.Same(t, menu, got)
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Lookup(state.Play)
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(state.Boot, &stubScene{}))

	err := r.Register(state.Boot, &stubScene{})
	assert.ErrorIs(t, err, ErrDuplicateState)
}

func TestRegistry_RegisterNil(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(state.Boot, nil))
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(state.Settings, &stubScene{}))
	require.NoError(t, r.Register(state.Boot, &stubScene{}))
	require.NoError(t, r.Register(state.Menu, &stubScene{}))

	assert.Equal(t, []state.Name{state.Boot, state.Menu, state.Settings}, r.Names())
}

func TestTo(t *testing.T) {
	tr := To(state.GameOver)
	require.NotNil(t, tr)
	assert.Equal(t, state.GameOver, tr.To)
	assert.Empty(t, tr.SaveKey)
}
