package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache [list|forget|clear]",
	Short: "Inspect or reset the similarity cache",
	Long: `Inspect or reset the similarity cache.

Examples:
  hoarder-cli cache list
  hoarder-cli cache forget "Boards of Canada"
  hoarder-cli cache clear`,
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached artists in insertion order",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		env, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		entries := env.Cache.Entries()
		if len(entries) == 0 {
			fmt.Println("Cache is empty")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%3d %s\n", len(e.Similar), e.Artist)
		}
		return nil
	},
}

var cacheForgetCmd = &cobra.Command{
	Use:   "forget <artist>",
	Short: "Drop one artist so it is fetched again",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		env, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		artist := strings.Join(args, " ")
		if err := env.Cache.Forget(ctx, artist); err != nil {
			return err
		}
		fmt.Printf("Forgot %s\n", artist)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached artist",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		env, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		n := env.Cache.Len()
		if err := env.Cache.Clear(ctx); err != nil {
			return err
		}
		fmt.Printf("Cleared %d entries\n", n)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheForgetCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
