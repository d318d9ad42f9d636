package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadUI loads ui.json over the defaults and validates the result.
// Fields missing from the file keep their default values.
func (l *Loader) LoadUI() (*UIConfig, error) {
	data, err := fs.ReadFile(l.fsys, "ui.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/ui.json: %w", l.basePath, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ui.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ui.json: %w", err)
	}

	return cfg, nil
}
