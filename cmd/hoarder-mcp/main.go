package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	mcpadapter "hoarder/internal/adapters/mcp"
	"hoarder/internal/bootstrap"
	"hoarder/internal/config"
	"hoarder/internal/logger"
)

func main() {
	configFlag := flag.String("config", "", "path to config.toml")
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "hoarder-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	// stdout carries the protocol; logs go to stderr
	if err := logger.Initialize(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()
	env, err := bootstrap.Open(ctx, cfg, logger.ComponentLogger("mcp"))
	if err != nil {
		return err
	}
	defer env.Close()

	catalog, err := env.CatalogSource()
	if err != nil {
		return err
	}
	similar, err := env.SimilaritySource()
	if err != nil {
		return err
	}

	mcpServer := server.NewMCPServer(
		"hoarder-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)
	mcpadapter.RegisterTools(mcpServer, mcpadapter.Deps{
		Catalog:  catalog,
		Similar:  similar,
		Cache:    env.Cache,
		Pacer:    env.Pacer(),
		Settings: env.Settings,
		Logger:   env.Logger,
	})

	return server.ServeStdio(mcpServer)
}
