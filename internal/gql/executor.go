package gql

import (
	"context"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"go.uber.org/zap"

	"github.com/mrlokans/lifebook/internal/metrics"
)

// Request is a GraphQL request as sent over HTTP.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Executor runs requests against a schema and records operation metrics.
type Executor struct {
	schema graphql.Schema
	log    *zap.Logger
}

func NewExecutor(schema graphql.Schema, log *zap.Logger) *Executor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{
		schema: schema,
		log:    log.With(zap.String("component", "graphql")),
	}
}

func (e *Executor) Schema() graphql.Schema {
	return e.schema
}

// Execute runs req. Errors that carry no code (syntax, unknown fields, bad
// variables) are tagged PARSE_ERROR when the document never executed.
func (e *Executor) Execute(ctx context.Context, req Request) *graphql.Result {
	start := time.Now()
	operation := e.operationLabel(req)

	result := graphql.Do(graphql.Params{
		Schema:         e.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	tagUncodedErrors(result)

	status := "ok"
	if result.HasErrors() {
		status = "error"
	}
	metrics.GraphQLOperationsTotal.WithLabelValues(operation, status).Inc()
	metrics.GraphQLOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	e.log.Debug("graphql operation",
		zap.String("operation", operation),
		zap.String("status", status),
		zap.Duration("duration", time.Since(start)),
	)
	return result
}

// Metric labels for requests that do not resolve to a schema root field.
const (
	labelInvalid = "invalid"
	labelOther   = "other"
)

// operationLabel names the request by the first root field of the selected
// operation, e.g. "mutation.createBook". Only fields defined on the schema are
// used, so the label set is bounded no matter what clients send.
func (e *Executor) operationLabel(req Request) string {
	doc, err := parser.Parse(parser.ParseParams{Source: req.Query})
	if err != nil {
		return labelInvalid
	}

	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if req.OperationName != "" && (op.Name == nil || op.Name.Value != req.OperationName) {
			continue
		}

		var root *graphql.Object
		switch op.Operation {
		case ast.OperationTypeQuery:
			root = e.schema.QueryType()
		case ast.OperationTypeMutation:
			root = e.schema.MutationType()
		}
		if root == nil || op.SelectionSet == nil {
			return labelOther
		}

		for _, selection := range op.SelectionSet.Selections {
			field, ok := selection.(*ast.Field)
			if !ok || field.Name == nil {
				continue
			}
			if _, known := root.Fields()[field.Name.Value]; known {
				return op.Operation + "." + field.Name.Value
			}
			return labelOther
		}
		return labelOther
	}
	return labelOther
}

func tagUncodedErrors(result *graphql.Result) {
	code := CodeDomain
	if result.Data == nil {
		code = CodeParse
	}
	for i, formatted := range result.Errors {
		if _, ok := formatted.Extensions["code"]; ok {
			continue
		}
		if formatted.Extensions == nil {
			formatted.Extensions = map[string]interface{}{}
		}
		formatted.Extensions["code"] = code
		result.Errors[i] = formatted
		metrics.GraphQLErrorsTotal.WithLabelValues(code).Inc()
	}
}

// ParseError builds a response for a request that could not be decoded.
func ParseError(message string) *graphql.Result {
	return &graphql.Result{
		Errors: []gqlerrors.FormattedError{{
			Message:    message,
			Extensions: map[string]interface{}{"code": CodeParse},
		}},
	}
}

// Introspect returns the full introspection result of the schema.
func Introspect(ctx context.Context, schema graphql.Schema) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: IntrospectionQuery,
		Context:       ctx,
	})
}

// IntrospectionQuery is the standard full introspection document.
const IntrospectionQuery = `
  query IntrospectionQuery {
    __schema {
      queryType { name }
      mutationType { name }
      subscriptionType { name }
      types {
        ...FullType
      }
      directives {
        name
        description
        locations
        args {
          ...InputValue
        }
      }
    }
  }

  fragment FullType on __Type {
    kind
    name
    description
    fields(includeDeprecated: true) {
      name
      description
      args {
        ...InputValue
      }
      type {
        ...TypeRef
      }
      isDeprecated
      deprecationReason
    }
    inputFields {
      ...InputValue
    }
    interfaces {
      ...TypeRef
    }
    enumValues(includeDeprecated: true) {
      name
      description
      isDeprecated
      deprecationReason
    }
    possibleTypes {
      ...TypeRef
    }
  }

  fragment InputValue on __InputValue {
    name
    description
    type { ...TypeRef }
    defaultValue
  }

  fragment TypeRef on __Type {
    kind
    name
    ofType {
      kind
      name
      ofType {
        kind
        name
        ofType {
          kind
          name
          ofType {
            kind
            name
            ofType {
              kind
              name
              ofType {
                kind
                name
                ofType {
                  kind
                  name
                }
              }
            }
          }
        }
      }
    }
  }
`
