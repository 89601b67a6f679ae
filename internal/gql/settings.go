package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/mrlokans/lifebook/internal/services"
)

func newSettingsTypes() (general, appearance, database *graphql.Object) {
	general = graphql.NewObject(graphql.ObjectConfig{
		Name: "GeneralSettingsDto",
		Fields: graphql.Fields{
			"language": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: `Language code, "ja" or "en"`,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					dto, _ := p.Source.(services.GeneralSettingsDTO)
					return dto.Language, nil
				},
			},
			"displayName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					dto, _ := p.Source.(services.GeneralSettingsDTO)
					return dto.DisplayName, nil
				},
			},
		},
	})

	appearance = graphql.NewObject(graphql.ObjectConfig{
		Name: "AppearanceSettingsDto",
		Fields: graphql.Fields{
			"theme": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: `"light", "dark" or "system"`,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					dto, _ := p.Source.(services.AppearanceSettingsDTO)
					return dto.Theme, nil
				},
			},
		},
	})

	database = graphql.NewObject(graphql.ObjectConfig{
		Name: "DatabaseSettingsDto",
		Fields: graphql.Fields{
			"databaseDirectory": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					dto, _ := p.Source.(services.DatabaseSettingsDTO)
					return dto.DatabaseDirectory, nil
				},
			},
		},
	})

	return general, appearance, database
}

func (r *resolvers) settingsQueryFields(general, appearance, database *graphql.Object) graphql.Fields {
	return graphql.Fields{
		"generalSettings": &graphql.Field{
			Type: graphql.NewNonNull(general),
			Resolve: r.wrap(func(p graphql.ResolveParams) (interface{}, error) {
				return r.settings.GetGeneral(p.Context)
			}),
		},
		"appearanceSettings": &graphql.Field{
			Type: graphql.NewNonNull(appearance),
			Resolve: r.wrap(func(p graphql.ResolveParams) (interface{}, error) {
				return r.settings.GetAppearance(p.Context)
			}),
		},
		"databaseSettings": &graphql.Field{
			Type: graphql.NewNonNull(database),
			Resolve: r.wrap(func(p graphql.ResolveParams) (interface{}, error) {
				return r.settings.GetDatabase(p.Context)
			}),
		},
	}
}

func (r *resolvers) settingsMutationFields(general, appearance, database *graphql.Object) graphql.Fields {
	return graphql.Fields{
		"updateGeneralSettings": &graphql.Field{
			Type: graphql.NewNonNull(general),
			Args: graphql.FieldConfigArgument{
				"language": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: r.wrap(func(p graphql.ResolveParams) (interface{}, error) {
				return r.settings.UpdateGeneral(p.Context, stringArg(p, "language"))
			}),
		},
		"updateAppearanceSettings": &graphql.Field{
			Type: graphql.NewNonNull(appearance),
			Args: graphql.FieldConfigArgument{
				"theme": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: r.wrap(func(p graphql.ResolveParams) (interface{}, error) {
				return r.settings.UpdateAppearance(p.Context, stringArg(p, "theme"))
			}),
		},
		"updateDatabaseSettings": &graphql.Field{
			Type:        graphql.NewNonNull(database),
			Description: "Takes effect the next time the application starts",
			Args: graphql.FieldConfigArgument{
				"databaseDirectory": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: r.wrap(func(p graphql.ResolveParams) (interface{}, error) {
				return r.settings.UpdateDatabase(p.Context, stringArg(p, "databaseDirectory"))
			}),
		},
		"resetSettings": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.Boolean),
			Description: "Deletes the settings document; later reads return defaults",
			Resolve: r.wrap(func(p graphql.ResolveParams) (interface{}, error) {
				if err := r.settings.ResetAll(p.Context); err != nil {
					return nil, err
				}
				return true, nil
			}),
		},
	}
}
