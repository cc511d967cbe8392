package main

import (
	"os"

	"github.com/spf13/cobra"

	logx "storefront/pkg/logger"
)

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "storefront",
		Short: "POSH storefront web server",
		Long: `Serves the POSH storefront: landing page, collections, shop, about and terms.

Products are read from the configured source (Supabase, Postgres or SQLite)
on every page view. When the source fails or has no rows, the built-in
catalog is shown instead.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server (default)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd, envFile)
			},
		},
		newCatalogCmd(&envFile),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logx.Error().Err(err).Msg("storefront exited")
		os.Exit(1)
	}
}
