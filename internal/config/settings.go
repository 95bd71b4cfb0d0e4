// internal/config/settings.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// DefaultImportFolder is the vault folder used when none is configured.
const DefaultImportFolder = "PDFs"

// Settings are the per-vault options persisted alongside the vault.
type Settings struct {
	ImportFolder string `toml:"import_folder"`
}

// DefaultSettings returns the settings of a vault that has never saved any.
func DefaultSettings() Settings {
	return Settings{ImportFolder: DefaultImportFolder}
}

// Store loads and saves Settings as a TOML file on an afero filesystem.
type Store struct {
	fs   afero.Fs
	path string

	mu       sync.RWMutex
	settings Settings
}

// NewStore returns a store for the file at path holding the defaults.
// Call Load to read what is persisted.
func NewStore(fsys afero.Fs, path string) *Store {
	return &Store{fs: fsys, path: path, settings: DefaultSettings()}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Load merges the persisted settings over the defaults.
// A missing file leaves the defaults in place.
func (s *Store) Load() (Settings, error) {
	loaded := DefaultSettings()

	data, err := afero.ReadFile(s.fs, s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	default:
		if _, err := toml.Decode(string(data), &loaded); err != nil {
			return Settings{}, fmt.Errorf("parsing settings %s: %w", s.path, err)
		}
	}

	s.mu.Lock()
	s.settings = loaded
	s.mu.Unlock()
	return loaded, nil
}

// Settings returns the current in-memory settings.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// ImportFolder returns the current import folder.
func (s *Store) ImportFolder() string {
	return s.Settings().ImportFolder
}

// Save persists the current settings.
func (s *Store) Save() error {
	s.mu.RLock()
	current := s.settings
	s.mu.RUnlock()
	return s.write(current)
}

// Set applies fn to a copy of the settings and persists the result.
// The in-memory settings only change if the write succeeds.
func (s *Store) Set(fn func(*Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings
	fn(&next)
	if err := s.write(next); err != nil {
		return err
	}
	s.settings = next
	return nil
}

func (s *Store) write(st Settings) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(st); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := s.fs.MkdirAll(path.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
