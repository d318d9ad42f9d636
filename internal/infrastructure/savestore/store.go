// Package savestore keeps save slots as JSON files in a directory.
package savestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/younwookim/slotmenu/internal/domain/save"
)

var (
	// ErrNotFound is returned when a slot does not exist.
	ErrNotFound = errors.New("save slot not found")
	// ErrInvalidKey is returned for keys that are not plain file names.
	ErrInvalidKey = errors.New("invalid save key")
)

const (
	fileExt      = ".json"
	settingsFile = "settings.json"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

// Now returns the current time using the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Store reads and writes save slots under one directory
type Store struct {
	dir   string
	fsys  fs.FS
	clock Clock
}

// New creates a store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return NewWithClock(dir, RealClock{})
}

// NewWithClock creates a store that stamps saves with clk
func NewWithClock(dir string, clk Clock) *Store {
	return &Store{
		dir:   dir,
		fsys:  os.DirFS(dir),
		clock: clk,
	}
}

// Dir returns the store's directory
func (s *Store) Dir() string {
	return s.dir
}

func checkKey(key string) error {
	if !validKey.MatchString(key) || key+fileExt == settingsFile {
		return fmt.Errorf("%q: %w", key, ErrInvalidKey)
	}
	return nil
}

type listed struct {
	entry   save.Entry
	savedAt time.Time
}

// List returns every readable slot, newest first.
// A missing directory is an empty list; unreadable files are logged and skipped.
func (s *Store) List() ([]save.Entry, error) {
	dirEntries, err := fs.ReadDir(s.fsys, ".")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list saves in %s: %w", s.dir, err)
	}

	var found []listed
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, fileExt) || name == settingsFile {
			continue
		}

		data, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			log.Printf("Skipping save %s: %v", name, err)
			continue
		}
		if !gjson.ValidBytes(data) {
			log.Printf("Skipping save %s: malformed JSON", name)
			continue
		}

		key := strings.TrimSuffix(name, fileExt)
		savedAt := gjson.GetBytes(data, "savedAt").Time()
		title := gjson.GetBytes(data, "title").String()
		if title == "" {
			title = savedAt.Format(save.TitleLayout)
		}
		found = append(found, listed{
			entry:   save.Entry{Title: title, Key: key},
			savedAt: savedAt,
		})
	}

	sort.Slice(found, func(i, j int) bool {
		if !found[i].savedAt.Equal(found[j].savedAt) {
			return found[i].savedAt.After(found[j].savedAt)
		}
		return found[i].entry.Key > found[j].entry.Key
	})

	entries := make([]save.Entry, len(found))
	for i, f := range found {
		entries[i] = f.entry
	}
	return entries, nil
}

// Save writes snap and returns it as stored.
// An empty key allocates a new slot; an existing key overwrites that slot.
func (s *Store) Save(snap save.Snapshot) (*save.Snapshot, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save dir: %w", err)
	}

	now := s.clock.Now()
	snap.Version = save.Version
	snap.SavedAt = now
	snap.Title = now.Format(save.TitleLayout)

	if snap.Key == "" {
		snap.Key = s.newKey(now)
	} else if err := checkKey(snap.Key); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode save: %w", err)
	}
	if err := os.WriteFile(s.path(snap.Key), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write save %s: %w", snap.Key, err)
	}

	return &snap, nil
}

// newKey names a slot after its save time, adding _2, _3... on collision
func (s *Store) newKey(now time.Time) string {
	base := "save_" + now.Format("20060102_150405")
	key := base
	for n := 2; s.exists(key); n++ {
		key = fmt.Sprintf("%s_%d", base, n)
	}
	return key
}

func (s *Store) exists(key string) bool {
	_, err := fs.Stat(s.fsys, key+fileExt)
	return err == nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+fileExt)
}

// Load reads the slot stored under key
func (s *Store) Load(key string) (*save.Snapshot, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.fsys, key+fileExt)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save %s: %w", key, err)
	}

	var snap save.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode save %s: %w", key, err)
	}
	snap.Key = key
	return &snap, nil
}

// Delete removes the slot stored under key
func (s *Store) Delete(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to delete save %s: %w", key, err)
	}
	return nil
}
