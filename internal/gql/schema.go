package gql

import (
	"context"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"github.com/mrlokans/lifebook/internal/metrics"
	"github.com/mrlokans/lifebook/internal/services"
)

// BookService is the book use-case surface the schema resolves against.
type BookService interface {
	CreateBook(ctx context.Context, input services.CreateBookInput) (services.BookDTO, error)
	GetAllBooks(ctx context.Context) ([]services.BookDTO, error)
	GetBook(ctx context.Context, id int) (*services.BookDTO, error)
	UpdateBook(ctx context.Context, id int, input services.UpdateBookInput) (services.BookDTO, error)
	DeleteBook(ctx context.Context, id int) error
}

// SettingsService is the settings use-case surface the schema resolves against.
type SettingsService interface {
	GetGeneral(ctx context.Context) (services.GeneralSettingsDTO, error)
	GetAppearance(ctx context.Context) (services.AppearanceSettingsDTO, error)
	GetDatabase(ctx context.Context) (services.DatabaseSettingsDTO, error)
	UpdateGeneral(ctx context.Context, language *string) (services.GeneralSettingsDTO, error)
	UpdateAppearance(ctx context.Context, theme *string) (services.AppearanceSettingsDTO, error)
	UpdateDatabase(ctx context.Context, directory *string) (services.DatabaseSettingsDTO, error)
	ResetAll(ctx context.Context) error
}

type resolvers struct {
	books    BookService
	settings SettingsService
	log      *zap.Logger
}

// namespace is the value behind the "library" and "settings" grouping fields.
type namespace struct{}

// NewSchema builds the GraphQL schema. Every root operation is reachable both
// directly on Query/Mutation and under the "library" or "settings" field.
func NewSchema(books BookService, settings SettingsService, log *zap.Logger) (graphql.Schema, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &resolvers{
		books:    books,
		settings: settings,
		log:      log.With(zap.String("component", "graphql")),
	}

	bookType := newBookType()
	generalType, appearanceType, databaseType := newSettingsTypes()

	libraryQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "LibraryQuery",
		Fields: r.libraryQueryFields(bookType),
	})
	settingsQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "SettingsQuery",
		Fields: r.settingsQueryFields(generalType, appearanceType, databaseType),
	})
	libraryMutation := graphql.NewObject(graphql.ObjectConfig{
		Name:   "LibraryMutation",
		Fields: r.libraryMutationFields(bookType),
	})
	settingsMutation := graphql.NewObject(graphql.ObjectConfig{
		Name:   "SettingsMutation",
		Fields: r.settingsMutationFields(generalType, appearanceType, databaseType),
	})

	queryFields := merge(
		r.libraryQueryFields(bookType),
		r.settingsQueryFields(generalType, appearanceType, databaseType),
	)
	queryFields["library"] = namespaceField(libraryQuery)
	queryFields["settings"] = namespaceField(settingsQuery)

	mutationFields := merge(
		r.libraryMutationFields(bookType),
		r.settingsMutationFields(generalType, appearanceType, databaseType),
	)
	mutationFields["library"] = namespaceField(libraryMutation)
	mutationFields["settings"] = namespaceField(settingsMutation)

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: queryFields}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: mutationFields}),
	})
}

func namespaceField(t *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(t),
		Resolve: func(graphql.ResolveParams) (interface{}, error) {
			return namespace{}, nil
		},
	}
}

func merge(sets ...graphql.Fields) graphql.Fields {
	out := graphql.Fields{}
	for _, set := range sets {
		for name, field := range set {
			out[name] = field
		}
	}
	return out
}

// wrap converts service errors into coded API errors and logs internal ones
// with their cause.
func (r *resolvers) wrap(fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		result, err := fn(p)
		if err == nil {
			return result, nil
		}

		apiErr := ToAPIError(err)
		metrics.GraphQLErrorsTotal.WithLabelValues(apiErr.Code).Inc()
		if isInternal(apiErr.Code) {
			r.log.Error("resolver failed",
				zap.String("field", p.Info.FieldName),
				zap.String("code", apiErr.Code),
				zap.Error(err),
			)
		} else {
			r.log.Debug("resolver rejected request",
				zap.String("field", p.Info.FieldName),
				zap.String("code", apiErr.Code),
				zap.String("message", apiErr.Message),
			)
		}
		return nil, apiErr
	}
}

func stringArg(p graphql.ResolveParams, name string) *string {
	if v, ok := p.Args[name].(string); ok {
		return &v
	}
	return nil
}

func intArg(p graphql.ResolveParams, name string) *int {
	if v, ok := p.Args[name].(int); ok {
		return &v
	}
	return nil
}
