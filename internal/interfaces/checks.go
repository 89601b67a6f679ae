package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/lifebook/internal/database"
	"github.com/mrlokans/lifebook/internal/database/books"
	"github.com/mrlokans/lifebook/internal/entrypoint"
	"github.com/mrlokans/lifebook/internal/gql"
	"github.com/mrlokans/lifebook/internal/http"
	"github.com/mrlokans/lifebook/internal/services"
	"github.com/mrlokans/lifebook/internal/settingsstore"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// BookRepository implementations
var _ services.BookRepository = (*books.Repository)(nil)
var _ services.BookRepository = (*books.MemoryRepository)(nil)

// SettingsRepository implementations
var _ services.SettingsRepository = (*settingsstore.SettingsStore)(nil)

// =============================================================================
// API Layer
// =============================================================================

// Resolver dependencies
var _ gql.BookService = (*services.BookService)(nil)
var _ gql.SettingsService = (*services.SettingsService)(nil)

// Health check dependencies
var _ http.Pinger = (*database.Database)(nil)
var _ http.Pinger = (*entrypoint.DatabaseHandle)(nil)
