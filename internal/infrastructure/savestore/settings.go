package savestore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/younwookim/slotmenu/internal/domain/save"
)

// ErrUnknownSetting is returned when setting a name the game does not know.
var ErrUnknownSetting = errors.New("unknown setting")

// Settings reads settings.json, falling back to defaults for a missing
// file or missing fields.
func (s *Store) Settings() (save.Settings, error) {
	settings := save.DefaultSettings()

	data, err := fs.ReadFile(s.fsys, settingsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return settings, fmt.Errorf("failed to parse settings: malformed JSON")
	}

	if v := gjson.GetBytes(data, save.SettingFullscreen); v.Exists() {
		settings.Fullscreen = v.Bool()
	}
	if v := gjson.GetBytes(data, save.SettingShowFPS); v.Exists() {
		settings.ShowFPS = v.Bool()
	}
	return settings, nil
}

// SetSetting updates one field of settings.json in place,
// keeping any other fields already in the file.
func (s *Store) SetSetting(name string, value bool) error {
	switch name {
	case save.SettingFullscreen, save.SettingShowFPS:
	default:
		return fmt.Errorf("%q: %w", name, ErrUnknownSetting)
	}

	data, err := fs.ReadFile(s.fsys, settingsFile)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !gjson.ValidBytes(data)) {
		data = []byte("{}")
	} else if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	out, err := sjson.SetBytes(data, name, value)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, out, "", "  "); err == nil {
		out = buf.Bytes()
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create save dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, settingsFile), out, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
