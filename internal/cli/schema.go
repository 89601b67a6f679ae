package cli

import (
	"encoding/json"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/mrlokans/lifebook/internal/config"
	"github.com/mrlokans/lifebook/internal/entrypoint"
	"github.com/mrlokans/lifebook/internal/gql"
)

func newSchemaCommand(info BuildInfo, loadConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the GraphQL introspection result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// In-memory stores: the real database is never opened.
			cfg := *loadConfig()
			cfg.Demo.Enabled = true

			injector := entrypoint.NewContainer(&cfg, info.Version)
			defer injector.Shutdown()

			executor, err := do.Invoke[*gql.Executor](injector)
			if err != nil {
				return err
			}

			result := gql.Introspect(cmd.Context(), executor.Schema())
			if result.HasErrors() {
				return fmt.Errorf("introspection failed: %v", result.Errors)
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
