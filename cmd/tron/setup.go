package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tron/internal/config"
	"github.com/vovakirdan/tui-tron/internal/core"
	"github.com/vovakirdan/tui-tron/internal/games/tron"
)

// configureGame checks the config and difficulty flags and applies them to
// every game created afterwards.
func configureGame() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		// A custom config must load; only the default search may fall back
		if _, err := config.LoadTron(flagConfig); err != nil {
			return err
		}
	}

	tron.SetConfigPath(flagConfig)
	tron.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openLogger returns the game logger for interactive commands. The alt
// screen owns the terminal, so logs go to --log-file or nowhere.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tron",
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}

// runtimeConfig builds the runtime config from the terminal size and --fps.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}
