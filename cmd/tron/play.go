package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tron/internal/games/tron"
	"github.com/vovakirdan/tui-tron/internal/platform/tui"
	"github.com/vovakirdan/tui-tron/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a round of the given variant (default: tron).

Controls:
  1-5 (1-0)    - Steer to a zone, clockwise from north
  Left/A/H     - Turn to the next zone counter-clockwise
  Right/D/L    - Turn to the next zone clockwise
  P            - Pause
  R            - Restart (after the round is over)
  Esc/B        - Leave (when paused or over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower cycles, speed ramps up over the round
  normal - Speed ramps up from 30%
  hard   - Faster cycles, speed ramps up from 70%
  fixed  - Constant speed

Examples:
  tron play
  tron play tron_fine
  tron play --difficulty hard
  tron play --config ./my-arena.yaml --log-file tron.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := tron.IDCoarse
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tron list' to see available variants.")
		os.Exit(1)
	}

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

	game, err := registry.Create(gameID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, runtimeConfig())
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
