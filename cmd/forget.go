package main

import (
	"fmt"
	"summit/internal/config"
	"summit/internal/login"

	"github.com/spf13/cobra"
)

// forgetCommand constructs the 'forget' subcommand that clears remembered
// credentials.
func forgetCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forget",
		Short: "Forgets remembered credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			if err := login.New(nil, strg, login.NewOptions(cfg)).Forget(ctx); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Remembered credentials cleared.")

			return nil
		},
	}

	return cmd
}
