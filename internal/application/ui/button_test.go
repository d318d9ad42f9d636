package ui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/slotmenu/internal/application/system"
	"github.com/younwookim/slotmenu/internal/infrastructure/config"
)

func newTestTheme(t *testing.T) *Theme {
	t.Helper()
	theme, err := NewTheme(config.Default().Menu)
	require.NoError(t, err)
	return theme
}

func TestNewMenuButton(t *testing.T) {
	theme := newTestTheme(t)
	b := NewMenuButton(theme, 200, 100, "Load Game", "load", nil)

	assert.Equal(t, "Load Game", b.Label())
	assert.Equal(t, "load", b.Key())
	assert.Equal(t, 3.0, b.FontSize(), "default size is 3em")
	assert.True(t, b.Visible())
	assert.True(t, b.InputEnabled())
	assert.False(t, b.Hovered())
	assert.False(t, b.Killed())

	x, y := b.Location()
	assert.Equal(t, 200.0, x)
	assert.Equal(t, 100.0, y)
}

func TestMenuButton_Contains(t *testing.T) {
	theme := newTestTheme(t)
	b := NewMenuButton(theme, 200, 100, "Load Game", "load", nil)
	w, h := theme.Measure("Load Game", 3)
	require.Greater(t, w, 0.0)
	require.Greater(t, h, 0.0)

	assert.True(t, b.Contains(200, 100), "centre")
	assert.True(t, b.Contains(200-w/2+1, 100))
	assert.False(t, b.Contains(200-w/2-1, 100))
	assert.False(t, b.Contains(200+w/2+1, 100))
	assert.False(t, b.Contains(200, 100+h/2+1))

	b.Align(text.AlignStart)
	assert.True(t, b.Contains(200+w-1, 100), "anchor is the left edge")
	assert.False(t, b.Contains(199, 100))

	b.Align(text.AlignEnd)
	assert.True(t, b.Contains(200-w+1, 100), "anchor is the right edge")
	assert.False(t, b.Contains(201, 100))
}

func TestMenuButton_HoverGrowsAndShrinks(t *testing.T) {
	theme := newTestTheme(t)
	b := NewMenuButton(theme, 200, 100, "Play", "", nil)

	b.Update(system.At(200, 100))
	assert.True(t, b.Hovered())
	assert.Equal(t, 3.5, b.FontSize())

	// Staying over does not keep growing
	b.Update(system.At(201, 100))
	assert.Equal(t, 3.5, b.FontSize())

	b.Update(system.At(0, 0))
	assert.False(t, b.Hovered())
	assert.Equal(t, 3.0, b.FontSize())
}

func TestMenuButton_WithFontSize(t *testing.T) {
	theme := newTestTheme(t)
	b := NewMenuButton(theme, 200, 100, "Back", "", nil).WithFontSize(1.5)
	assert.Equal(t, 1.5, b.FontSize())

	b.Update(system.At(200, 100))
	assert.Equal(t, 2.0, b.FontSize())
}

func TestMenuButton_ClickCallsHandlerWithKey(t *testing.T) {
	theme := newTestTheme(t)
	var got []string
	b := NewMenuButton(theme, 200, 100, "Slot", "save_1", func(key string) { got = append(got, key) })

	b.Update(system.ClickAt(0, 0))
	assert.Empty(t, got, "click outside ignored")

	b.Update(system.At(200, 100))
	assert.Empty(t, got, "hover alone does not click")

	b.Update(system.ClickAt(200, 100))
	assert.Equal(t, []string{"save_1"}, got)
}

func TestMenuButton_NilHandler(t *testing.T) {
	theme := newTestTheme(t)
	b := NewMenuButton(theme, 200, 100, "Slot", "", nil)

	assert.NotPanics(t, func() { b.Update(system.ClickAt(200, 100)) })
}

func TestMenuButton_HideAndReveal(t *testing.T) {
	theme := newTestTheme(t)
	clicks := 0
	b := NewMenuButton(theme, 200, 100, "Resume", "", func(string) { clicks++ })

	b.Update(system.At(200, 100))
	require.Equal(t, 3.5, b.FontSize())

	assert.Same(t, b, b.Hide())
	assert.False(t, b.Visible())
	assert.False(t, b.InputEnabled())
	assert.Equal(t, 3.0, b.FontSize(), "hide resets the size")
	assert.False(t, b.Hovered())

	b.Update(system.ClickAt(200, 100))
	assert.Equal(t, 0, clicks, "hidden buttons ignore clicks")

	assert.Same(t, b, b.Reveal())
	assert.True(t, b.Visible())
	assert.True(t, b.InputEnabled())

	b.Update(system.ClickAt(200, 100))
	assert.Equal(t, 1, clicks)
}

func TestMenuButton_Kill(t *testing.T) {
	theme := newTestTheme(t)
	clicks := 0
	b := NewMenuButton(theme, 200, 100, "Slot", "", func(string) { clicks++ })

	b.Kill()
	assert.True(t, b.Killed())
	assert.False(t, b.Visible())

	b.Reveal()
	b.Update(system.ClickAt(200, 100))
	assert.Equal(t, 0, clicks, "killed buttons never click")
}

func TestMenuButton_SetLocation(t *testing.T) {
	theme := newTestTheme(t)
	b := NewMenuButton(theme, 200, 100, "Slot", "", nil)

	b.SetLocation(400, 300)
	assert.False(t, b.Contains(200, 100))
	assert.True(t, b.Contains(400, 300))
}

func TestMenuButton_SetLabel(t *testing.T) {
	theme := newTestTheme(t)
	b := NewMenuButton(theme, 200, 100, "On", "", nil)
	shortW, _ := theme.Measure("On", 3)

	b.SetLabel("Fullscreen: Off")
	assert.Equal(t, "Fullscreen: Off", b.Label())
	assert.True(t, b.Contains(200+shortW, 100), "hit box grows with the label")
}
