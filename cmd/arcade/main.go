// arcade is a terminal platform for deterministic arcade simulations.
//
// Usage:
//
//	arcade list                - List available games
//	arcade play <game>         - Play a game
//	arcade menu                - Start menu to pick games interactively
//	arcade scores <game>       - Show high scores for a game
//	arcade headless <game>     - Run a simulation without a display
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade-core/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/mvasiliev/arcade-core/internal/games/pong"
	_ "github.com/mvasiliev/arcade-core/internal/games/snake"
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
	Use:   "arcade",
	Short: "Deterministic arcade simulations in your terminal",
	Long: `arcade runs deterministic arcade game simulations in the terminal.
Every game is a pure state-transition engine: the same seed and inputs
always replay the same run.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  scores    - View high scores
  headless  - Run a simulation without a display

Examples:
  arcade list
  arcade play pong
  arcade play snake --difficulty hard
  arcade headless snake --ticks 5000 --seed 42
  arcade scores pong`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade-core/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(headlessCmd)
}
