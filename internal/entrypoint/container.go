package entrypoint

import (
	"github.com/samber/do/v2"

	"github.com/mrlokans/lifebook/internal/config"
)

// NewContainer registers every provider. Services are built lazily on first
// invocation, so commands that only touch settings never open the database.
func NewContainer(cfg *config.Config, version string) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, Version(version))
	do.Provide(injector, ProvideLogger)
	do.Provide(injector, ProvideFilesystem)

	// Storage layer
	do.Provide(injector, ProvideSettingsStore)
	do.Provide(injector, ProvideDatabase)
	do.Provide(injector, ProvideBookRepository)

	// Business services
	do.Provide(injector, ProvideSettingsService)
	do.Provide(injector, ProvideBookService)

	// API
	do.Provide(injector, ProvideExecutor)
	do.Provide(injector, ProvideRouter)
	do.Provide(injector, ProvideServer)

	return injector
}
