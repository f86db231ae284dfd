// Package main provides the CLI entrypoint for summit.
// It wires subcommands (login, forget, serve, migrate), loads configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"os"
	"summit/internal/config"
	"summit/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	// filled by PersistentPreRunE before any subcommand runs
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:           "summit",
		Short:         "Signs in against the profile endpoint and shows the card summary",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}
			*cfg = *loaded

			logger.Setup(cfg.Environment)
			logger.Debug(cmd.Context(), "config loaded", zap.String("path", configPath))

			return nil
		},
	}
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		loginCommand(cfg),
		forgetCommand(cfg),
		serveCommand(cfg),
		migrateCommand(cfg),
	)

	err := rootCmd.ExecuteContext(ctx)
	logger.Sync(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1) //nolint: gocritic
	}
}
