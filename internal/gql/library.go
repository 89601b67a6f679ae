package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/mrlokans/lifebook/internal/services"
)

func newBookType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "BookDto",
		Description: "A book in the library",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return bookSource(p).ID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return bookSource(p).Title, nil
				},
			},
			"author": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return optionalString(bookSource(p).Author), nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return optionalString(bookSource(p).Description), nil
				},
			},
			"publishedYear": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if year := bookSource(p).PublishedYear; year != nil {
						return *year, nil
					}
					return nil, nil
				},
			},
		},
	})
}

func bookSource(p graphql.ResolveParams) services.BookDTO {
	switch book := p.Source.(type) {
	case services.BookDTO:
		return book
	case *services.BookDTO:
		return *book
	}
	return services.BookDTO{}
}

func optionalString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func (r *resolvers) libraryQueryFields(bookType *graphql.Object) graphql.Fields {
	return graphql.Fields{
		"books": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(bookType))),
			Description: "All books in storage order",
			Resolve: r.wrap(func(p graphql.ResolveParams) (interface{}, error) {
				return r.books.GetAllBooks(p.Context)
			}),
		},
		"book": &graphql.Field{
			Type:        bookType,
			Description: "A single book, or null when the id is unknown",
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: r.wrap(func(p graphql.ResolveParams) (interface{}, error) {
				id, _ := p.Args["id"].(int)
				book, err := r.books.GetBook(p.Context, id)
				if err != nil || book == nil {
					return nil, err
				}
				return *book, nil
			}),
		},
	}
}

func (r *resolvers) libraryMutationFields(bookType *graphql.Object) graphql.Fields {
	return graphql.Fields{
		"createBook": &graphql.Field{
			Type: graphql.NewNonNull(bookType),
			Args: graphql.FieldConfigArgument{
				"title":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"author":        &graphql.ArgumentConfig{Type: graphql.String},
				"description":   &graphql.ArgumentConfig{Type: graphql.String},
				"publishedYear": &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: r.wrap(func(p graphql.ResolveParams) (interface{}, error) {
				title, _ := p.Args["title"].(string)
				return r.books.CreateBook(p.Context, services.CreateBookInput{
					Title:         title,
					Author:        stringArg(p, "author"),
					Description:   stringArg(p, "description"),
					PublishedYear: intArg(p, "publishedYear"),
				})
			}),
		},
		"updateBook": &graphql.Field{
			Type:        graphql.NewNonNull(bookType),
			Description: "Partial update: omitted or null arguments keep their value, an empty author or description clears it",
			Args: graphql.FieldConfigArgument{
				"id":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"title":         &graphql.ArgumentConfig{Type: graphql.String},
				"author":        &graphql.ArgumentConfig{Type: graphql.String},
				"description":   &graphql.ArgumentConfig{Type: graphql.String},
				"publishedYear": &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: r.wrap(func(p graphql.ResolveParams) (interface{}, error) {
				id, _ := p.Args["id"].(int)
				return r.books.UpdateBook(p.Context, id, services.UpdateBookInput{
					Title:         stringArg(p, "title"),
					Author:        stringArg(p, "author"),
					Description:   stringArg(p, "description"),
					PublishedYear: intArg(p, "publishedYear"),
				})
			}),
		},
		"deleteBook": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: r.wrap(func(p graphql.ResolveParams) (interface{}, error) {
				id, _ := p.Args["id"].(int)
				if err := r.books.DeleteBook(p.Context, id); err != nil {
					return nil, err
				}
				return true, nil
			}),
		},
	}
}
