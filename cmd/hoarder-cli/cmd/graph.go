package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"hoarder/internal/application"
)

var (
	graphFormat      string
	graphCopy        bool
	graphNeo4j       bool
	graphShowOrphans bool
	graphThreshold   float64
	graphHops        int
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build and print the similarity graph",
	Long: `Fetch the library catalog, expand it with similar artists and print the
graph.

Examples:
  hoarder-cli graph
  hoarder-cli graph --format json --copy
  hoarder-cli graph --threshold 0.8 --show-orphans
  hoarder-cli graph --neo4j`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		env, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		flags := cmd.Flags()
		if flags.Changed("threshold") {
			env.Settings.MatchThreshold = graphThreshold
		}
		if flags.Changed("show-orphans") {
			env.Settings.ShowOrphans = graphShowOrphans
		}
		if flags.Changed("hops") {
			env.Settings.Hops = graphHops
		}
		if err := env.Settings.Validate(); err != nil {
			return err
		}

		run, err := env.RunCommand()
		if err != nil {
			return err
		}
		result, err := run.Execute(ctx)
		if err != nil {
			if errors.Is(err, application.ErrCatalogFetch) {
				return errors.Wrap(err, "could not read the library")
			}
			return err
		}

		out, err := renderGraph(result.Graph, graphFormat)
		if err != nil {
			return err
		}
		fmt.Print(out)

		fmt.Fprintf(os.Stderr, "%d nodes, %d edges (%d fetched, %d cached) in %s\n",
			len(result.Graph.Nodes), len(result.Graph.Edges),
			result.Expand.Fetched, result.Expand.CacheHits,
			result.Duration.Round(time.Millisecond))

		if graphCopy {
			if err := clipboard.WriteAll(out); err != nil {
				return errors.Wrap(err, "copying to clipboard")
			}
			fmt.Fprintln(os.Stderr, "Copied to clipboard")
		}

		if graphNeo4j {
			exporter, closeFn, err := env.Exporter(ctx)
			if err != nil {
				return err
			}
			defer closeFn()
			if err := exporter.Export(ctx, result.Graph); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Exported to Neo4j")
		}
		return nil
	},
}

func init() {
	graphCmd.Flags().StringVarP(&graphFormat, "format", "f", formatText, "output format (text or json)")
	graphCmd.Flags().BoolVar(&graphCopy, "copy", false, "copy the output to the clipboard")
	graphCmd.Flags().BoolVar(&graphNeo4j, "neo4j", false, "export the graph to the configured Neo4j database")
	graphCmd.Flags().BoolVar(&graphShowOrphans, "show-orphans", false, "keep library artists without similarity data")
	graphCmd.Flags().Float64Var(&graphThreshold, "threshold", 0, "minimum match score in [0,1]")
	graphCmd.Flags().IntVar(&graphHops, "hops", 1, "expansion depth")
	rootCmd.AddCommand(graphCmd)
}
