// Package cli implements the lifebook command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/lifebook/internal/config"
)

// BuildInfo is set from main via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
}

// NewRootCommand returns the lifebook command tree. Running it without a
// subcommand starts the server. loadConfig is called lazily by each command.
func NewRootCommand(info BuildInfo, loadConfig func() *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "lifebook",
		Short:         "lifebook serves a personal book library and app settings over GraphQL",
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(loadConfig(), info)
		},
	}

	root.AddCommand(newServeCommand(info, loadConfig))
	root.AddCommand(newSchemaCommand(info, loadConfig))
	root.AddCommand(newSettingsCommand(info, loadConfig))
	root.AddCommand(newVersionCommand(info))

	return root
}
