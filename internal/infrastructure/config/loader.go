package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	ArenaFile = "arena.json"
	WavesFile = "waves.yaml"
)

// Loader loads game configuration using fs.FS interface
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

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadArena loads arena.json on top of the defaults, so a file may set only
// the values it changes
func (l *Loader) LoadArena() (*Config, error) {
	data, err := fs.ReadFile(l.fsys, ArenaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ArenaFile, err)
	}

	cfg := Default()
	cfg.Waves = nil
	// Arrays replace the defaults wholesale
	defaultWeapons := cfg.Weapons
	cfg.Weapons = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ArenaFile, err)
	}
	if len(cfg.Weapons) == 0 {
		cfg.Weapons = defaultWeapons
	}

	return cfg, nil
}

// LoadWaves loads waves.yaml
func (l *Loader) LoadWaves() (*WavesConfig, error) {
	data, err := fs.ReadFile(l.fsys, WavesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", WavesFile, err)
	}

	var cfg WavesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", WavesFile, err)
	}

	return &cfg, nil
}

// LoadAll loads and validates every config file
func (l *Loader) LoadAll() (*Config, error) {
	cfg, err := l.LoadArena()
	if err != nil {
		return nil, err
	}

	waves, err := l.LoadWaves()
	if err != nil {
		return nil, err
	}
	cfg.Waves = waves

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
