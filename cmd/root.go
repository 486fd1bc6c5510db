package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"walkroute/core/app"
	"walkroute/core/config"
	"walkroute/core/launcher"
	"walkroute/core/logger"
	"walkroute/core/runner"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where the .env file is looked up.
const configDir = "."

// RootCmd starts the server when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "walkroute",
	Short: "Walking route server",
	Long: `Starts the walking route server on 0.0.0.0 at the configured port.
All settings come from the environment or a .env file. In the development
environment the server reloads when watched files change.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		r := runner.New(app.Registry(configDir, logg), logg,
			runner.WithWatchPaths(cfg.Server.WatchPaths()...),
			runner.WithReloadDelay(cfg.Server.ReloadDelay()),
			runner.WithShutdownTimeout(cfg.Server.ShutdownTimeout()),
		)

		return launcher.Launch(ctx, r, cfg.Server, logg)
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the debug profile gives ISO8601 timestamps for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
