package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvasiliev/arcade-core/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	Run: func(cmd *cobra.Command, args []string) {
		games := registry.List()

		if len(games) == 0 {
			fmt.Println("No games registered.")
			return
		}

		fmt.Println("Available games:")
		fmt.Println()
		for _, g := range games {
			fmt.Printf("  %-12s %s\n", g.ID, g.Title)
		}
		fmt.Println()
		fmt.Println("Play with: arcade play <game>")
	},
}
