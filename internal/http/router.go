package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("component", "http"))

	router := gin.New()
	router.Use(RequestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		respondInternalError(c, log, fmt.Errorf("panic: %v", recovered), c.Request.URL.Path)
		c.Abort()
	}))
	router.Use(Metrics())
	router.Use(SecurityHeaders())
	if len(cfg.AllowedOrigins) > 0 {
		router.Use(CORS(cfg.AllowedOrigins))
	}

	health := NewHealthController(cfg.Database, cfg.DatabasePath, cfg.SettingsPath, cfg.Version)
	graphql := NewGraphQLController(cfg.Executor, log)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// GraphQL API
	router.POST("/graphql", graphql.Post)
	router.GET("/graphql", graphql.Get)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(func(c *gin.Context) {
		respondNotFound(c, "route "+c.Request.URL.Path)
	})

	return router
}
