// Package save defines the save-slot types shared by the menus and the store.
package save

import (
	"fmt"
	"time"
)

// Version is written into every snapshot
const Version = "1.0"

// TitleLayout formats a slot's saved time into its menu title
const TitleLayout = "2006-01-02 15:04:05"

// Entry identifies one save slot in a menu list
type Entry struct {
	Title string `json:"title"`
	Key   string `json:"key"`
}

// Snapshot is the persisted body of a save slot
type Snapshot struct {
	Version  string    `json:"version"`
	Key      string    `json:"key"`
	Title    string    `json:"title"`
	SavedAt  time.Time `json:"savedAt"`
	PlayTime float64   `json:"playTime"` // Seconds played in the session
}

// Entry returns the menu entry for the snapshot
func (s Snapshot) Entry() Entry {
	return Entry{Title: s.Title, Key: s.Key}
}

// Settings holds the player-adjustable options
type Settings struct {
	Fullscreen bool `json:"fullscreen"`
	ShowFPS    bool `json:"showFPS"`
}

// Setting names accepted by stores
const (
	SettingFullscreen = "fullscreen"
	SettingShowFPS    = "showFPS"
)

// DefaultSettings returns the settings used before anything is persisted
func DefaultSettings() Settings {
	return Settings{}
}

// FormatPlayTime renders seconds as mm:ss
func FormatPlayTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
