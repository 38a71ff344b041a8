// tron is a light cycle game for the terminal.
//
// Usage:
//
//	tron list              - List available variants
//	tron play [variant]    - Play a variant (default: tron)
//	tron menu              - Pick variants interactively
//	tron serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--config <path>        - Custom game config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-file <path>      - Write match logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tron/internal/games/tron"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tron",
	Short: "Light cycles in your terminal",
	Long: `Ride a light cycle around a circular arena. Every turn leaves a wall
behind you; crossing any trail or leaving the arena ends the round.
Survive as long as you can.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play

Examples:
  tron play
  tron play tron_fine --difficulty hard
  tron menu
  tron serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write match logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}
