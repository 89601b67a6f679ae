package cli

import (
	"encoding/json"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/mrlokans/lifebook/internal/config"
	"github.com/mrlokans/lifebook/internal/entrypoint"
	"github.com/mrlokans/lifebook/internal/services"
)

type settingsView struct {
	General    services.GeneralSettingsDTO    `json:"general"`
	Appearance services.AppearanceSettingsDTO `json:"appearance"`
	Database   services.DatabaseSettingsDTO   `json:"database"`
}

func newSettingsCommand(info BuildInfo, loadConfig func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect or reset the stored settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print general, appearance and database settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSettings(loadConfig(), info, func(settings *services.SettingsService) error {
				ctx := cmd.Context()
				var view settingsView
				var err error
				if view.General, err = settings.GetGeneral(ctx); err != nil {
					return err
				}
				if view.Appearance, err = settings.GetAppearance(ctx); err != nil {
					return err
				}
				if view.Database, err = settings.GetDatabase(ctx); err != nil {
					return err
				}

				out, err := json.MarshalIndent(view, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Delete the settings file so defaults apply again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSettings(loadConfig(), info, func(settings *services.SettingsService) error {
				if err := settings.ResetAll(cmd.Context()); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Settings reset to defaults")
				return err
			})
		},
	})

	return cmd
}

// withSettings runs fn with a settings service. The book database is never
// opened.
func withSettings(cfg *config.Config, info BuildInfo, fn func(*services.SettingsService) error) error {
	injector := entrypoint.NewContainer(cfg, info.Version)
	defer injector.Shutdown()

	settings, err := do.Invoke[*services.SettingsService](injector)
	if err != nil {
		return err
	}
	return fn(settings)
}
