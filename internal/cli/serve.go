package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/lifebook/internal/config"
	"github.com/mrlokans/lifebook/internal/entrypoint"
)

func newServeCommand(info BuildInfo, loadConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default if no command given)",
		Long: `Starts the GraphQL API on HOST:PORT.

Endpoints:
  POST/GET /graphql   GraphQL queries and mutations
  GET /health         database and settings status
  GET /metrics        Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(loadConfig(), info)
		},
	}
}

func runServe(cfg *config.Config, info BuildInfo) error {
	return entrypoint.Run(cfg, info.Version)
}
