package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hoarder/internal/domain"
)

var splitCmd = &cobra.Command{
	Use:   "split <name>",
	Short: "Split a compound artist credit",
	Long: `Show how an artist credit from the library is split into artists.

Examples:
  hoarder-cli split "Artist A & Artist B"
  hoarder-cli split "A feat. B, C"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range domain.SplitArtistName(strings.Join(args, " ")) {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
}
