package main

import (
	"summit"
	"summit/internal/config"
	"summit/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the credential store to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			if err := strg.Migrate(ctx, summit.Migrations); err != nil {
				logger.Fatal(ctx, "could not migrate credential store", zap.Error(err))
			}
			logger.Info(ctx, "credential store is up to date", zap.String("dialect", strg.Dialect()))
		},
	}

	return cmd
}
