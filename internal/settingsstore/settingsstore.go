package settingsstore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/mrlokans/lifebook/internal/entities"
)

// FileName is the settings document inside the config directory.
const FileName = "settings.json"

// SettingsStore persists the Settings aggregate as a single JSON document.
// A missing document is not an error: Load returns defaults whose database
// directory is the one given to New.
type SettingsStore struct {
	fs                 afero.Fs
	configDir          string
	defaultDatabaseDir string
}

func New(fsys afero.Fs, configDir, defaultDatabaseDir string) *SettingsStore {
	return &SettingsStore{
		fs:                 fsys,
		configDir:          configDir,
		defaultDatabaseDir: defaultDatabaseDir,
	}
}

// Path returns the location of the settings document.
func (s *SettingsStore) Path() string {
	return filepath.Join(s.configDir, FileName)
}

func (s *SettingsStore) ConfigDir() string {
	return s.configDir
}

func (s *SettingsStore) Defaults() entities.Settings {
	return entities.DefaultSettings(s.defaultDatabaseDir)
}

// Load reads the document. Fields missing from the document keep their defaults.
func (s *SettingsStore) Load(_ context.Context) (entities.Settings, error) {
	settings := s.Defaults()

	data, err := afero.ReadFile(s.fs, s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return entities.Settings{}, entities.IOError("Failed to read settings file", err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return entities.Settings{}, entities.SerializationError("Failed to parse settings file", err)
	}
	return settings, nil
}

// Save writes the whole document, creating the config directory if needed.
// The document is written to a temporary file and renamed into place so a
// reader never sees a partial write.
func (s *SettingsStore) Save(_ context.Context, settings entities.Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return entities.SerializationError("Failed to serialize settings", err)
	}

	if err := s.fs.MkdirAll(s.configDir, 0o755); err != nil {
		return entities.IOError("Failed to create config directory", err)
	}

	tmp := s.Path() + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return entities.IOError("Failed to write settings file", err)
	}
	if err := s.fs.Rename(tmp, s.Path()); err != nil {
		_ = s.fs.Remove(tmp)
		return entities.IOError("Failed to write settings file", err)
	}
	return nil
}

// Delete removes the document. Deleting a missing document succeeds.
func (s *SettingsStore) Delete(_ context.Context) error {
	err := s.fs.Remove(s.Path())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return entities.IOError("Failed to delete settings file", err)
	}
	return nil
}
