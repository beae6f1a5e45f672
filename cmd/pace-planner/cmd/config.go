package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/pace-planner/internal/config"
)

// newConfigCommand builds the `config` command group.
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file.",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a configuration file.",
		Long: `Writes the effective settings to a YAML file, by default pace-planner.yaml.
Flags such as --unit km or --detailed are applied before saving.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd.Flags(), flags)
			if err != nil {
				return err
			}

			path := config.DefaultConfigFilename
			if len(args) > 0 {
				path = args[0]
			}

			if err := config.Save(path, settings); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", path)

			return nil
		},
	})

	return configCmd
}
