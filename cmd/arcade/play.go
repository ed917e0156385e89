package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mvasiliev/arcade-core/internal/core"
	"github.com/mvasiliev/arcade-core/internal/games/pong"
	"github.com/mvasiliev/arcade-core/internal/games/snake"
	"github.com/mvasiliev/arcade-core/internal/platform/tui"
	"github.com/mvasiliev/arcade-core/internal/registry"
	"github.com/mvasiliev/arcade-core/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWrap       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  W/S or Up/Down     - Move
  Arrow keys / WASD  - Steer (snake)
  Enter/Space        - Start / serve
  P                  - Pause
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slower pace, forgiving opponent
  normal - The intended experience
  hard   - Fast and unforgiving

Examples:
  arcade play pong
  arcade play snake --difficulty hard
  arcade play pong --seed 42
  arcade play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagWrap, "wrap", false, "Snake only: wrap through walls instead of dying")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// When no preset was given on the command line, ask interactively.
	difficulty := flagDifficulty
	if difficulty == "" {
		game, _ := registry.Create(gameID)
		result, err := tui.RunDifficultyMenu(game.Title(), width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if result.Back || result.Quit {
			return
		}
		difficulty = string(result.Preset)
	}

	applyGameFlags(gameID, flagConfig, difficulty)
	if gameID == "snake" && cmd.Flags().Changed("wrap") {
		snake.SetWallsWrap(flagWrap)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameFlags routes the config path and difficulty preset to the
// selected engine before the registry instantiates it.
func applyGameFlags(gameID, configPath, difficulty string) {
	switch gameID {
	case "pong":
		pong.SetConfigPath(configPath)
		pong.SetDifficultyPreset(difficulty)
	case "snake":
		snake.SetConfigPath(configPath)
		snake.SetDifficultyPreset(difficulty)
	}
}
