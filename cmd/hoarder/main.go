package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"hoarder/internal/adapters/tui"
	"hoarder/internal/application/commands"
	"hoarder/internal/bootstrap"
	"hoarder/internal/config"
	"hoarder/internal/logger"
)

func main() {
	configFlag := flag.String("config", "", "path to config.toml")
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Keep log lines off the alternate screen
	logPath := filepath.Join(filepath.Dir(config.DefaultPath()), "hoarder.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return err
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	if err := logger.InitializeTo(logFile, cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	defer logger.Sync()

	env, err := bootstrap.Open(context.Background(), cfg, logger.ComponentLogger("tui"))
	if err != nil {
		return err
	}
	defer env.Close()

	runCmd, err := env.RunCommand()
	if err != nil {
		return err
	}

	app := tui.NewApp(func(ctx context.Context, progress func(commands.ExpandProgress)) (*commands.RunResult, error) {
		runCmd.OnProgress = progress
		return runCmd.Execute(ctx)
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	app.SetSender(p.Send)

	_, err = p.Run()
	// The run may still be saving to the store closed by env.Close
	app.Stop()
	return err
}
