package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mvasiliev/arcade-core/internal/core"
	"github.com/mvasiliev/arcade-core/internal/platform/tui"
	"github.com/mvasiliev/arcade-core/internal/registry"
	"github.com/mvasiliev/arcade-core/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive game menu",
	Long: `Open an interactive menu to browse and play games.

Navigate with arrow keys or W/S, select with Enter,
press Tab for the scoreboard, Q to quit.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop: play a game, come back, play another.
	for {
		result, menuErr := tui.RunMenu(store, cfg)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				os.Exit(1)
			}
			if !goBack {
				return
			}
			continue
		}

		game, createErr := registry.Create(result.GameID)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", createErr)
			os.Exit(1)
		}

		diff, diffErr := tui.RunDifficultyMenu(game.Title(), width, height)
		if diffErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", diffErr)
			os.Exit(1)
		}
		if diff.Quit {
			return
		}
		if diff.Back {
			continue
		}

		applyGameFlags(result.GameID, "", string(diff.Preset))

		// Fresh instance so the preset takes effect on Reset.
		game, createErr = registry.Create(result.GameID)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", createErr)
			os.Exit(1)
		}

		playCfg := result.Config
		if playCfg.Seed == 0 {
			playCfg.Seed = time.Now().UnixNano()
		}

		if runErr := tui.Run(game, store, playCfg); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
	}
}
