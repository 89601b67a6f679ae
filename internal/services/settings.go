package services

import (
	"context"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/mrlokans/lifebook/internal/entities"
)

// SettingsService serves the settings aggregate through a single cached copy.
//
// The cache starts empty, is filled by the first read, replaced by every
// successful write and cleared by ResetAll. Concurrent updates are not merged:
// the last writer wins.
type SettingsService struct {
	repo SettingsRepository
	fs   afero.Fs
	log  *zap.Logger

	mu    sync.RWMutex
	cache *entities.Settings
	// generation is bumped by every save and reset. A load only fills the
	// cache when no write happened while it was reading.
	generation uint64
}

// NewSettingsService creates a SettingsService. fsys is used to check
// database directories before they are accepted.
func NewSettingsService(repo SettingsRepository, fsys afero.Fs, log *zap.Logger) *SettingsService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsService{
		repo: repo,
		fs:   fsys,
		log:  log.With(zap.String("component", "settings")),
	}
}

func (s *SettingsService) GetGeneral(ctx context.Context) (GeneralSettingsDTO, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return GeneralSettingsDTO{}, err
	}
	return toGeneralDTO(settings.General), nil
}

func (s *SettingsService) GetAppearance(ctx context.Context) (AppearanceSettingsDTO, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return AppearanceSettingsDTO{}, err
	}
	return toAppearanceDTO(settings.Appearance), nil
}

func (s *SettingsService) GetDatabase(ctx context.Context) (DatabaseSettingsDTO, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return DatabaseSettingsDTO{}, err
	}
	return toDatabaseDTO(settings.Database), nil
}

// UpdateGeneral sets the language when one is given and persists the document.
func (s *SettingsService) UpdateGeneral(ctx context.Context, language *string) (GeneralSettingsDTO, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return GeneralSettingsDTO{}, err
	}

	if language != nil {
		parsed, err := entities.ParseLanguage(*language)
		if err != nil {
			return GeneralSettingsDTO{}, withKind(KindInvalidLanguage, err)
		}
		settings.General.Language = parsed
	}

	if err := s.save(ctx, settings); err != nil {
		return GeneralSettingsDTO{}, err
	}
	return toGeneralDTO(settings.General), nil
}

// UpdateAppearance sets the theme when one is given and persists the document.
func (s *SettingsService) UpdateAppearance(ctx context.Context, theme *string) (AppearanceSettingsDTO, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return AppearanceSettingsDTO{}, err
	}

	if theme != nil {
		parsed, err := entities.ParseTheme(*theme)
		if err != nil {
			return AppearanceSettingsDTO{}, withKind(KindInvalidTheme, err)
		}
		settings.Appearance.Theme = parsed
	}

	if err := s.save(ctx, settings); err != nil {
		return AppearanceSettingsDTO{}, err
	}
	return toAppearanceDTO(settings.Appearance), nil
}

// UpdateDatabase validates and sets the database directory when one is given
// and persists the document. The new directory is used from the next start.
func (s *SettingsService) UpdateDatabase(ctx context.Context, directory *string) (DatabaseSettingsDTO, error) {
	settings, err := s.load(ctx)
	if err != nil {
		return DatabaseSettingsDTO{}, err
	}

	if directory != nil {
		validated, err := entities.ValidateDatabaseDirectory(s.fs, *directory)
		if err != nil {
			return DatabaseSettingsDTO{}, withKind(KindInvalidDatabaseDirectory, err)
		}
		settings.Database.DatabaseDirectory = validated
	}

	if err := s.save(ctx, settings); err != nil {
		return DatabaseSettingsDTO{}, err
	}
	return toDatabaseDTO(settings.Database), nil
}

// ResetAll deletes the persisted document and clears the cache, so later
// reads return defaults.
func (s *SettingsService) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx); err != nil {
		return fromDomain(err)
	}
	s.cache = nil
	s.generation++

	s.log.Info("settings reset to defaults")
	return nil
}

func (s *SettingsService) load(ctx context.Context) (entities.Settings, error) {
	s.mu.RLock()
	if s.cache != nil {
		settings := *s.cache
		s.mu.RUnlock()
		return settings, nil
	}
	generation := s.generation
	s.mu.RUnlock()

	settings, err := s.repo.Load(ctx)
	if err != nil {
		return entities.Settings{}, fromDomain(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache != nil {
		return *s.cache, nil
	}
	// A save or reset ran while reading; what was read may be stale.
	if s.generation != generation {
		return settings, nil
	}
	s.cache = &settings
	return settings, nil
}

func (s *SettingsService) save(ctx context.Context, settings entities.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, settings); err != nil {
		return fromDomain(err)
	}
	s.cache = &settings
	s.generation++

	s.log.Debug("settings saved",
		zap.String("language", settings.General.Language.String()),
		zap.String("theme", settings.Appearance.Theme.String()),
		zap.String("database_directory", settings.Database.DatabaseDirectory),
	)
	return nil
}
