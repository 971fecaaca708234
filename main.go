// armatupc TUI - A terminal client for the armatupc build recommendation service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/armatupc/armatupc-tui/internal/api"
	"github.com/armatupc/armatupc-tui/internal/config"
	"github.com/armatupc/armatupc-tui/internal/ui/app"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	serverURL := flag.String("server", "", "recommendation service URL (overrides config)")
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if *showVersion {
		fmt.Printf("armatupc %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "armatupc requires an interactive terminal")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.Server.URL = *serverURL
	}
	config.SetGlobal(cfg)

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting armatupc",
		zap.String("version", Version),
		zap.String("server_url", cfg.Server.URL))

	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: cfg.Server.URL,
		Timeout: time.Duration(cfg.Server.TimeoutSecs) * time.Second,
	})

	model := app.New(cfg, client, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	watcher := startConfigWatcher(*configPath, program, logger)
	if watcher != nil {
		defer watcher.Close()
	}

	if _, err := program.Run(); err != nil {
		logger.Error("program exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads from the explicit path when given, otherwise the
// default location.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// newLogger builds the diagnostic file logger. The TUI owns the terminal,
// so nothing may log to stdout or stderr while it runs.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logPath, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	if err := config.EnsureConfigDir(); err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	_ = level.Set(cfg.Logging.Level)

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{logPath}
	zapCfg.ErrorOutputPaths = []string{logPath}

	return zapCfg.Build()
}

// startConfigWatcher watches the config file and pushes reloads into the
// running program. A watcher failure is not fatal; live reload is a
// convenience.
func startConfigWatcher(explicitPath string, program *tea.Program, logger *zap.Logger) *config.Watcher {
	path := explicitPath
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return nil
		}
		path = p
	}

	watcher, err := config.NewWatcher(path, 500*time.Millisecond, func(cfg *config.Config) {
		program.Send(app.ConfigReloadedMsg{Cfg: cfg})
	}, logger)
	if err != nil {
		logger.Warn("config watcher unavailable", zap.Error(err))
		return nil
	}
	if err := watcher.Watch(); err != nil {
		logger.Warn("config watcher failed to start", zap.Error(err))
		watcher.Close()
		return nil
	}
	return watcher
}
