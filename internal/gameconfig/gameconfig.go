package gameconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPath is the preferences file, relative to the working directory.
const DefaultPath = "config/game.json"

// DefaultSpinSpeed is the per-frame rotation of every shape, in radians.
const DefaultSpinSpeed = 0.01

// Prefs holds display preferences persisted across runs. Game progress is never saved.
type Prefs struct {
	ShowFPS      bool    `json:"show_fps"`
	ShowMemAlloc bool    `json:"show_memalloc"`
	GridVisible  bool    `json:"grid_visible"`
	SpinSpeed    float32 `json:"spin_speed"`
}

// Default returns default preferences: overlays and grid off, standard spin.
func Default() Prefs {
	return Prefs{SpinSpeed: DefaultSpinSpeed}
}

// Load reads preferences from path. A missing file returns Default() and does
// not create one; an unreadable or invalid file returns Default() with an error
// the caller may log. Fields absent from the file keep their defaults.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read prefs: %w", err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path, creating its directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
