package http

import (
	"go.uber.org/zap"

	"github.com/mrlokans/lifebook/internal/gql"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Executor *gql.Executor
	Database Pinger

	// DatabasePath and SettingsPath are reported by /health.
	DatabasePath string
	SettingsPath string

	// Origins allowed to call /graphql from a browser context.
	AllowedOrigins []string

	// Application info
	Version string

	Logger *zap.Logger
}
