package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/pace-planner/internal/config"
	"github.com/oshokin/pace-planner/internal/service/calc"
	"github.com/oshokin/pace-planner/internal/service/interactive"
	"github.com/oshokin/pace-planner/internal/version"
)

var (
	// flags holds the values of the persistent flags.
	flags = new(cliFlags)
	// historyFile is where interactive input history is kept.
	historyFile string

	// rootCmd computes paces for a goal time or starts the interactive prompt.
	rootCmd = &cobra.Command{
		Use:   "pace-planner [goal-time]",
		Short: "Turn a goal marathon time into training paces.",
		Long: `Computes marathon pace and the lactate threshold, general aerobic and
long run pace ranges for a goal marathon finish time.

With a goal time argument (HH:MM:SS or MM:SS) the paces are printed once.
Without arguments an interactive prompt starts: type goal times and commands
such as "unit km" or "detailed on", and the paces are reprinted on every change.

Defaults come from the configuration file; flags override them.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			settings, err := resolveSettings(cmd.Flags(), flags)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				_, err = calc.Run(ctx, cmd.OutOrStdout(), &calc.Options{
					Goal:   args[0],
					Unit:   settings.Unit,
					Render: renderOptions(settings),
				})

				return err
			}

			return interactive.Run(ctx, &interactive.Options{
				Unit:        settings.Unit,
				Render:      renderOptions(settings),
				HistoryFile: historyFile,
			})
		},
	}
)

// Execute runs the pace-planner CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)
	rootCmd.AddCommand(newConfigCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&flags.configPath, flagConfig, "c", config.DefaultConfigFilename, "path to configuration file")
	persistent.StringVarP(&flags.unit, flagUnit, "u", "", "distance unit: mi or km")
	persistent.BoolVarP(&flags.detailed, flagDetailed, "d", false, "show lactate threshold, general aerobic and long run ranges")
	persistent.StringVarP(&flags.format, flagFormat, "f", "", "output format: text, yaml or json")
	persistent.StringVar(&flags.logLevel, flagLogLevel, "", "log level: debug, info, warn or error")

	rootCmd.Flags().StringVar(&historyFile, "history", "", "file to keep interactive input history in")
}
