package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge48/internal/strategy"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List all available strategies",
	Long:  `Shows a list of all registered move-selection strategies.`,
	Run:   runStrategies,
}

func runStrategies(cmd *cobra.Command, args []string) {
	strategies := strategy.List()

	if len(strategies) == 0 {
		fmt.Println("No strategies available.")
		return
	}

	fmt.Println("Available strategies:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range strategies {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range strategies {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'merge48 solve --strategy <id>' to benchmark one.")
}
