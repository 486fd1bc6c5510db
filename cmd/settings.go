package cmd

import (
	"fmt"

	"walkroute/core/config"
	"walkroute/feature/settings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// settingsCmd prints the resolved configuration.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the resolved settings and launch options",
	Long:  `Loads the configuration exactly like the server does and prints it as JSON, with secrets masked.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		out, err := json.MarshalIndent(settings.NewSnapshot(cfg), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	},
}

func init() {
	RootCmd.AddCommand(settingsCmd)
}
