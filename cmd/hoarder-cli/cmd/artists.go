package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hoarder/internal/application"
	"hoarder/internal/application/commands"
	"hoarder/internal/domain"
	"hoarder/internal/logger"
)

var artistsCmd = &cobra.Command{
	Use:   "artists",
	Short: "List the artists of the library",
	Long: `Fetch the library catalog and list the artists it yields after splitting
compound credits. No similarity lookups are made.

Example:
  hoarder-cli artists`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := cfg.ValidateCatalog(); err != nil {
			return err
		}

		env, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		catalog, err := env.CatalogSource()
		if err != nil {
			return err
		}
		raw, err := catalog.GetArtists(ctx)
		if err != nil {
			return application.CatalogFetchError(err)
		}

		registry := commands.NewIngestCatalogCommand(domain.NewRegistry(), logger.Logger).Execute(raw)
		for _, a := range registry.Artists() {
			fmt.Printf("%4d %-40s %3d %s\n", a.ID, a.Name, a.AlbumCount, a.ExternalID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(artistsCmd)
}
