package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge48/internal/ai"
	"github.com/vovakirdan/merge48/internal/config"
	"github.com/vovakirdan/merge48/internal/game"
	"github.com/vovakirdan/merge48/internal/storage"
	"github.com/vovakirdan/merge48/internal/strategy"
)

var (
	flagSolveGames    int
	flagSolveStrategy string
	flagSolvePreset   string
	flagSolveNoSave   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the solver headless over many games",
	Long: `Play complete games without a UI and report statistics.

Each game runs the chosen strategy from a fresh board until no legal
move remains. Results are saved to the database unless --no-save is
given. With --seed, game N runs with seed+N so a batch is reproducible.

Examples:
  merge48 solve
  merge48 solve --games 20
  merge48 solve --strategy greedy --games 100 --no-save
  merge48 solve --seed 42 --games 10 --depth 5`,
	Run: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolveGames, "games", 1, "Number of games to play")
	solveCmd.Flags().StringVar(&flagSolveStrategy, "strategy", "expectimax", "Strategy to run")
	solveCmd.Flags().StringVar(&flagSolvePreset, "preset", "", "Depth preset: fast, normal, deep")
	solveCmd.Flags().BoolVar(&flagSolveNoSave, "no-save", false, "Do not record results in the database")
}

func runSolve(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "merge48",
	})

	if !strategy.Exists(flagSolveStrategy) {
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", flagSolveStrategy)
		fmt.Fprintln(os.Stderr, "Run 'merge48 strategies' to see available strategies.")
		os.Exit(1)
	}

	solverCfg, err := config.LoadSolver(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyDepthPreset(&solverCfg, config.DepthPreset(flagSolvePreset))
	ai.SetSolverConfig(solverCfg)

	strat, err := strategy.Create(flagSolveStrategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating strategy: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if !flagSolveNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open results database", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	games := flagSolveGames
	if games < 1 {
		games = 1
	}

	var (
		wins       int
		totalScore int
		bestScore  int
		bestTile   int
	)

	for i := 0; i < games; i++ {
		seed := flagSeed
		if seed != 0 {
			seed += int64(i)
		}

		result := playOneGame(strat, seed)

		wins += boolToInt(result.Won)
		totalScore += result.Score
		if result.Score > bestScore {
			bestScore = result.Score
		}
		if result.MaxTile > bestTile {
			bestTile = result.MaxTile
		}

		logger.Info("game finished",
			"game", i+1,
			"score", result.Score,
			"max_tile", result.MaxTile,
			"moves", result.Moves,
			"won", result.Won,
			"duration", fmt.Sprintf("%ds", result.DurationSecs),
		)

		if store != nil {
			if _, saveErr := store.SaveResult(result); saveErr != nil {
				logger.Warn("could not save result", "error", saveErr)
			}
		}
	}

	fmt.Println()
	fmt.Printf("Strategy: %s\n", strat.Title())
	fmt.Printf("Games:    %d\n", games)
	fmt.Printf("Wins:     %d (%.0f%%)\n", wins, 100*float64(wins)/float64(games))
	fmt.Printf("Avg:      %.0f\n", float64(totalScore)/float64(games))
	fmt.Printf("Best:     %d (tile %d)\n", bestScore, bestTile)
}

// playOneGame runs a single game to completion with the given strategy.
func playOneGame(strat strategy.Strategy, seed int64) storage.GameResult {
	session := game.NewSession(game.Config{Seed: seed})
	strat.Reset(strategy.Config{Seed: session.Seed(), Depth: flagDepth})

	start := time.Now()
	for !session.Over() {
		dir, ok := strat.NextMove(session.Board())
		if !ok {
			break
		}
		if moved, _ := session.Apply(dir); !moved {
			// A strategy suggesting an illegal move is a bug; bail out
			// rather than loop forever.
			break
		}
	}

	return storage.GameResult{
		StrategyID:   strat.ID(),
		Score:        session.Score(),
		MaxTile:      session.MaxTile(),
		Moves:        session.Moves(),
		Won:          session.Won(),
		DurationSecs: int(time.Since(start).Seconds()),
		Seed:         session.Seed(),
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
