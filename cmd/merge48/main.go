// merge48 is a sliding-tile merge puzzle with an expectimax AI solver.
//
// Usage:
//
//	merge48 play               - Play interactively (with AI hints and autopilot)
//	merge48 solve              - Run the solver headless over N games
//	merge48 scores             - Show recorded results
//	merge48 strategies         - List available strategies
//	merge48 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.merge48/results.db)
//	--depth <n>     - Override the search depth
//	--config <path> - Load a custom solver config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import strategies to register them
	_ "github.com/vovakirdan/merge48/internal/ai"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagDepth  int
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "merge48",
	Short: "merge48 - A 2048-style puzzle with an expectimax solver",
	Long: `merge48 is a terminal 2048-style merge puzzle that ships with an
expectimax AI: play by hand, ask for hints, let the autopilot take over,
or run the solver headless to benchmark strategies.

Available commands:
  play        - Play interactively with optional AI assistance
  solve       - Run the solver headless over many games
  scores      - View recorded results per strategy
  strategies  - List available strategies
  serve       - Start SSH server for remote play

Examples:
  merge48 play
  merge48 play --strategy greedy
  merge48 solve --games 20 --depth 5
  merge48 scores expectimax
  merge48 serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.merge48/results.db", "Path to results database")
	rootCmd.PersistentFlags().IntVar(&flagDepth, "depth", 0, "Search depth override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom solver config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(serveCmd)
}
