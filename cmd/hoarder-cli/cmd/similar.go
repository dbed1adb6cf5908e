package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hoarder/internal/application/commands"
)

var similarCmd = &cobra.Command{
	Use:   "similar <artist>",
	Short: "Show artists similar to one artist",
	Long: `Look up the artists similar to the given one, using the cache when possible.
Only matches at or above the configured threshold are shown.

Examples:
  hoarder-cli similar "Boards of Canada"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		artist := strings.Join(args, " ")

		env, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		source, err := env.SimilaritySource()
		if err != nil {
			return err
		}

		lookup, err := commands.NewLookupSimilarCommand(source, env.Cache, env.Settings, env.Logger).Execute(ctx, artist)
		if err != nil {
			return err
		}

		if len(lookup.Similar) == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, s := range lookup.Similar {
			fmt.Printf("%.3f %s\n", s.Match, s.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(similarCmd)
}
