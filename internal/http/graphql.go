package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/lifebook/internal/gql"
)

// maxBodyBytes bounds a GraphQL request body.
const maxBodyBytes = 1 << 20

type GraphQLController struct {
	executor *gql.Executor
	log      *zap.Logger
}

func NewGraphQLController(executor *gql.Executor, log *zap.Logger) *GraphQLController {
	return &GraphQLController{executor: executor, log: log}
}

// Post executes a JSON encoded request body.
func (g *GraphQLController) Post(c *gin.Context) {
	var req gql.Request
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		g.log.Debug("rejected graphql body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gql.ParseError("Invalid GraphQL request body"))
		return
	}
	g.execute(c, req)
}

// Get executes a request passed as query, operationName and variables
// URL parameters.
func (g *GraphQLController) Get(c *gin.Context) {
	req := gql.Request{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}
	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			c.JSON(http.StatusBadRequest, gql.ParseError("Invalid variables parameter"))
			return
		}
	}
	g.execute(c, req)
}

func (g *GraphQLController) execute(c *gin.Context, req gql.Request) {
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gql.ParseError("Must provide query string"))
		return
	}
	c.JSON(http.StatusOK, g.executor.Execute(c.Request.Context(), req))
}
