package savestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/younwookim/slotmenu/internal/domain/save"
)

func TestStore_SettingsDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	settings, err := s.Settings()
	require.NoError(t, err)
	assert.Equal(t, save.DefaultSettings(), settings)
}

func TestStore_SetSettingRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.SetSetting(save.SettingFullscreen, true))
	settings, err := s.Settings()
	require.NoError(t, err)
	assert.True(t, settings.Fullscreen)
	assert.False(t, settings.ShowFPS)

	require.NoError(t, s.SetSetting(save.SettingShowFPS, true))
	require.NoError(t, s.SetSetting(save.SettingFullscreen, false))
	settings, err = s.Settings()
	require.NoError(t, err)
	assert.False(t, settings.Fullscreen)
	assert.True(t, settings.ShowFPS)
}

func TestStore_SetSettingKeepsOtherFields(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, os.MkdirAll(s.Dir(), 0o755))
	path := filepath.Join(s.Dir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"volume": 0.7, "showFPS": true}`), 0o644))

	require.NoError(t, s.SetSetting(save.SettingFullscreen, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.7, gjson.GetBytes(data, "volume").Float())
	assert.True(t, gjson.GetBytes(data, "showFPS").Bool())
	assert.True(t, gjson.GetBytes(data, "fullscreen").Bool())
}

func TestStore_SetSettingReplacesMalformedFile(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, os.MkdirAll(s.Dir(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "settings.json"), []byte("{oops"), 0o644))

	_, err := s.Settings()
	assert.Error(t, err)

	require.NoError(t, s.SetSetting(save.SettingShowFPS, true))
	settings, err := s.Settings()
	require.NoError(t, err)
	assert.True(t, settings.ShowFPS)
}

func TestStore_SetSettingUnknown(t *testing.T) {
	s, _ := newTestStore(t)
	assert.ErrorIs(t, s.SetSetting("volume", true), ErrUnknownSetting)
}
