package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/mrlokans/lifebook/internal/config"
	"github.com/mrlokans/lifebook/internal/database"
	"github.com/mrlokans/lifebook/internal/database/books"
	"github.com/mrlokans/lifebook/internal/gql"
	http_controllers "github.com/mrlokans/lifebook/internal/http"
	"github.com/mrlokans/lifebook/internal/logger"
	"github.com/mrlokans/lifebook/internal/services"
	"github.com/mrlokans/lifebook/internal/settingsstore"
)

// Version is the application version reported by /health.
type Version string

// DatabaseHandle wraps the book database with shutdown capability.
type DatabaseHandle struct {
	*database.Database
}

// Shutdown implements do.ShutdownerWithError.
func (h *DatabaseHandle) Shutdown() error {
	return h.Close()
}

// ServerHandle wraps the HTTP server. *http.Server already satisfies
// do.ShutdownerWithContextAndError through the embedded Shutdown.
type ServerHandle struct {
	*http.Server
	ShutdownTimeout time.Duration
}

// ProvideLogger builds the zap logger from LOG_LEVEL and LOG_FORMAT.
func ProvideLogger(i do.Injector) (*zap.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return logger.New(cfg.Log.Level, cfg.Log.Format)
}

// ProvideFilesystem returns the OS filesystem, or an in-memory one in demo mode.
func ProvideFilesystem(i do.Injector) (afero.Fs, error) {
	cfg := do.MustInvoke[*config.Config](i)
	if cfg.Demo.Enabled {
		return afero.NewMemMapFs(), nil
	}
	return afero.NewOsFs(), nil
}

func ProvideSettingsStore(i do.Injector) (*settingsstore.SettingsStore, error) {
	cfg := do.MustInvoke[*config.Config](i)
	fsys := do.MustInvoke[afero.Fs](i)
	return settingsstore.New(fsys, cfg.Paths.ConfigDir, cfg.Paths.DefaultDatabaseDir), nil
}

func ProvideSettingsService(i do.Injector) (*services.SettingsService, error) {
	store := do.MustInvoke[*settingsstore.SettingsStore](i)
	fsys := do.MustInvoke[afero.Fs](i)
	log := do.MustInvoke[*zap.Logger](i)
	return services.NewSettingsService(store, fsys, log), nil
}

// ProvideDatabase opens the book database. Its location is DATABASE_PATH when
// set, otherwise lifebook.db inside the configured database directory.
func ProvideDatabase(i do.Injector) (*DatabaseHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*zap.Logger](i)

	path := cfg.Database.Path
	if path == "" {
		settings := do.MustInvoke[*services.SettingsService](i)
		dbSettings, err := settings.GetDatabase(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to read database settings: %w", err)
		}
		path = database.PathForDirectory(dbSettings.DatabaseDirectory)
	}

	db, err := database.NewDatabase(path, database.Options{LogSQL: cfg.Database.LogSQL, Logger: log})
	if err != nil {
		return nil, err
	}
	log.Info("Database initialized", zap.String("path", db.Path()))
	return &DatabaseHandle{Database: db}, nil
}

// ProvideBookRepository returns the SQLite gateway, or the in-memory one in
// demo mode.
func ProvideBookRepository(i do.Injector) (services.BookRepository, error) {
	cfg := do.MustInvoke[*config.Config](i)
	if cfg.Demo.Enabled {
		return books.NewMemoryRepository(), nil
	}
	db, err := do.Invoke[*DatabaseHandle](i)
	if err != nil {
		return nil, err
	}
	return books.NewRepository(db.DB), nil
}

func ProvideBookService(i do.Injector) (*services.BookService, error) {
	repo := do.MustInvoke[services.BookRepository](i)
	log := do.MustInvoke[*zap.Logger](i)
	return services.NewBookService(repo, log), nil
}

func ProvideExecutor(i do.Injector) (*gql.Executor, error) {
	bookService := do.MustInvoke[*services.BookService](i)
	settingsService := do.MustInvoke[*services.SettingsService](i)
	log := do.MustInvoke[*zap.Logger](i)

	schema, err := gql.NewSchema(bookService, settingsService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}
	return gql.NewExecutor(schema, log), nil
}

func ProvideRouter(i do.Injector) (*gin.Engine, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*zap.Logger](i)
	store := do.MustInvoke[*settingsstore.SettingsStore](i)

	routerCfg := http_controllers.RouterConfig{
		Executor:       do.MustInvoke[*gql.Executor](i),
		SettingsPath:   store.Path(),
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Version:        string(do.MustInvoke[Version](i)),
		Logger:         log,
	}
	// Unset in demo mode; /health then reports in-memory storage.
	if !cfg.Demo.Enabled {
		db := do.MustInvoke[*DatabaseHandle](i)
		routerCfg.Database = db
		routerCfg.DatabasePath = db.Path()
	}

	gin.SetMode(gin.ReleaseMode)
	return http_controllers.NewRouter(routerCfg), nil
}

func ProvideServer(i do.Injector) (*ServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	router := do.MustInvoke[*gin.Engine](i)

	return &ServerHandle{
		Server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		ShutdownTimeout: time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second,
	}, nil
}
