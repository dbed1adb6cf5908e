package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hoarder/internal/bootstrap"
	"hoarder/internal/config"
	"hoarder/internal/logger"
)

var (
	configPath string
	logLevel   string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "hoarder-cli",
	Short: "Build a similarity graph of your music library",
	Long: `hoarder-cli reads the artists of a Navidrome (Subsonic) library, expands
them with similar artists from last.fm and prints the resulting graph.

Similarity lookups are cached between runs, so only the first run pays
for the full crawl.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help and config file commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Parent() == configCmd {
			return nil
		}
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.Log.Level = logLevel
		}
		if err := logger.Initialize(loaded.Log.Level, loaded.Log.Format); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.toml (default $XDG_CONFIG_HOME/hoarder/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// openEnv wires the configured store and cache
func openEnv(ctx context.Context) (*bootstrap.Env, error) {
	return bootstrap.Open(ctx, cfg, logger.Logger)
}
