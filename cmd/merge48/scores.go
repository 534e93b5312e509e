package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/merge48/internal/platform/tui"
	"github.com/vovakirdan/merge48/internal/storage"
	"github.com/vovakirdan/merge48/internal/strategy"
)

var flagScoresInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [strategy]",
	Short: "Show recorded results",
	Long: `Display the top 10 results for the given strategy, or for the
expectimax strategy if none is specified. Use "human" for hand-played
games.

Examples:
  merge48 scores
  merge48 scores greedy
  merge48 scores human
  merge48 scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse results in a TUI")
}

func runScores(cmd *cobra.Command, args []string) {
	strategyID := "expectimax"
	if len(args) > 0 {
		strategyID = args[0]
	}

	if strategyID != "human" && !strategy.Exists(strategyID) {
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", strategyID)
		fmt.Fprintln(os.Stderr, "Run 'merge48 strategies' to see available strategies.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	results, err := store.TopResults(strategyID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Results - %s\n", strategyID)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'merge48 solve' or 'merge48 play' to record one.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-4s  %s\n", "Rank", "Score", "Tile", "Moves", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-4s  %s\n", "----", "-----", "----", "-----", "---", "----")

	for i, r := range results {
		won := ""
		if r.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %-4s  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, won, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(strategyID)
	if err == nil && stats.Games > 0 {
		fmt.Println()
		fmt.Printf("Games: %d   Wins: %d   Avg: %.0f   Best tile: %d\n",
			stats.Games, stats.Wins, stats.AvgScore, stats.BestTile)
	}
}
