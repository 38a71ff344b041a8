package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tron/internal/games/tron"
	"github.com/vovakirdan/tui-tron/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a round.
Leave a finished round with Esc to return to the menu; the menu
shows your best time per variant for this session.

Examples:
  tron menu
  tron menu --fps 30`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tron.SetLogger(logger)

	username := "local"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	runErr := tui.RunSession(runtimeConfig(), username, logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
