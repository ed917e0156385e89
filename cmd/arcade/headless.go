package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mvasiliev/arcade-core/internal/core"
	"github.com/mvasiliev/arcade-core/internal/registry"
)

var (
	flagTicks        int
	flagHLDifficulty string
	flagHLConfig     string
)

var headlessCmd = &cobra.Command{
	Use:   "headless <game>",
	Short: "Run a game simulation without a display",
	Long: `Run a game for a fixed number of ticks with no rendering.

Useful for verifying determinism: the same --seed always produces
the same final state. Pong plays its AI against an idle paddle;
snake moves in a straight line until something stops it.

Examples:
  arcade headless pong --ticks 3600 --seed 42
  arcade headless snake --ticks 1000 --seed 7 --difficulty hard`,
	Args: cobra.ExactArgs(1),
	Run:  runHeadless,
}

func init() {
	headlessCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of simulation ticks to run")
	headlessCmd.Flags().StringVar(&flagHLDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	headlessCmd.Flags().StringVar(&flagHLConfig, "config", "", "Path to custom game config YAML")
}

func runHeadless(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	applyGameFlags(gameID, flagHLConfig, flagHLDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	game.Reset(cfg)

	log.Info("headless run",
		"game", gameID,
		"seed", cfg.Seed,
		"ticks", flagTicks,
		"difficulty", flagHLDifficulty)

	var result core.StepResult
	for tick := 0; tick < flagTicks; tick++ {
		in := core.NewInputFrame()
		if tick == 0 {
			in.Set(core.ActionStart)
		}
		result = game.Step(in)
		if result.State.GameOver {
			log.Info("game over", "tick", tick, "outcome", result.State.Outcome)
			break
		}
	}

	st := result.State
	fmt.Printf("game=%s seed=%d score=%d gameover=%t outcome=%s session=%s\n",
		gameID, cfg.Seed, st.Score, st.GameOver, st.Outcome, st.SessionID)
}
