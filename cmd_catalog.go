package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"storefront/acquire"
)

// newCatalogCmd prints what a page would show right now, which makes it easy
// to check a source configuration without starting the server.
func newCatalogCmd(envFile *string) *cobra.Command {
	var featured bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Fetch the product set once and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*envFile)
			if err != nil {
				return err
			}
			defer a.Close()

			q := acquire.Catalog()
			if featured {
				q = acquire.Featured(a.cfg.FeaturedLimit)
			}
			res := a.pipeline.Acquire(cmd.Context(), q)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"query":    res.Query,
				"source":   res.Source(),
				"products": res.Products,
			})
		},
	}
	cmd.Flags().BoolVar(&featured, "featured", false, "fetch the landing page set instead of the full catalog")
	return cmd
}
