package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvasiliev/arcade-core/internal/registry"
	"github.com/mvasiliev/arcade-core/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Show the top scores recorded for a game, along with play statistics.

Examples:
  arcade scores pong
  arcade scores snake
  arcade scores snake --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Clear all scores for this game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scores cleared for %s.\n", gameID)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	if len(scores) == 0 {
		fmt.Printf("No scores recorded for %s yet. Go play!\n", gameID)
		return
	}

	fmt.Printf("Top scores for %s:\n\n", gameID)
	for i, entry := range scores {
		fmt.Printf("  %2d. %6d   %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, statsErr := store.GetGameStats(gameID); statsErr == nil && stats.GamesPlayed > 0 {
		fmt.Printf("\nPlayed %d times, best %d, average %.1f\n",
			stats.GamesPlayed, stats.BestScore, stats.AvgScore)
	}
}
