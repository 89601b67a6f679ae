// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookRepository: Book persistence gateway (internal/services/interfaces.go)
//   - SettingsRepository: Settings document gateway (internal/services/interfaces.go)
//
// ## API Interfaces
//
//   - BookService: Library operations exposed over GraphQL (internal/gql/schema.go)
//   - SettingsService: Settings operations exposed over GraphQL (internal/gql/schema.go)
//   - Pinger: Database connectivity for /health (internal/http/health.go)
//
// # Adding a New Book Store
//
// To keep books somewhere other than SQLite:
//
//  1. Implement BookRepository in internal/database/books/
//
//     type RemoteRepository struct {
//         client *http.Client
//     }
//
//     func (r *RemoteRepository) FindByID(ctx context.Context, id uint) (*entities.Book, error)
//     func (r *RemoteRepository) FindAll(ctx context.Context) ([]entities.Book, error)
//     func (r *RemoteRepository) Save(ctx context.Context, book entities.Book) (entities.Book, error)
//     func (r *RemoteRepository) Delete(ctx context.Context, id uint) error
//
//  2. Run it through runGatewayContract in repository_test.go
//
//  3. Select it in ProvideBookRepository (internal/entrypoint/providers.go)
//
// # Adding a New Settings Section
//
//  1. Add a struct to entities.Settings and extend DefaultSettings
//
//  2. Add a DTO and Get/Update methods to services.SettingsService
//
//  3. Add the GraphQL type and fields in internal/gql/settings.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
