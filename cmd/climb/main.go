// climb is a terminal reaction game: climb a wall by pressing the side of
// the next hold before the countdown expires.
//
// Usage:
//
//	climb list               - List available modes
//	climb play [mode]        - Play a mode (default: climb)
//	climb menu               - Start menu to pick modes interactively
//	climb serve              - Start SSH server for remote play
//	climb scores <mode>      - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.climb/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/ddrozdov/tui-climber/internal/climb"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "climb",
	Short: "Climb - a terminal wall-climbing reaction game",
	Long: `Climb is a terminal reaction game. Holds appear on alternating sides
of a wall; press the matching arrow before the timer runs out to
climb higher. One wrong side or one missed timer and you fall.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  climb play
  climb play climb-classic
  climb menu
  climb serve --ssh :2222
  climb scores climb`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.climb/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
