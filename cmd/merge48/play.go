package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/merge48/internal/ai"
	"github.com/vovakirdan/merge48/internal/config"
	"github.com/vovakirdan/merge48/internal/platform/tui"
	"github.com/vovakirdan/merge48/internal/storage"
	"github.com/vovakirdan/merge48/internal/strategy"
)

var (
	flagPreset   string
	flagStrategy string
	flagRate     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively with optional AI assistance",
	Long: `Start an interactive game in the terminal.

Controls:
  Arrows/WASD/HJKL - Move tiles
  ?                - Show the AI's suggested move
  P                - Toggle AI autopilot
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Depth presets:
  fast   - Shallow search, instant moves
  normal - Default search depth
  deep   - Deeper search, slower but stronger

Examples:
  merge48 play
  merge48 play --strategy greedy
  merge48 play --preset deep --rate 8
  merge48 play --config ./my-solver.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Depth preset: fast, normal, deep")
	playCmd.Flags().StringVar(&flagStrategy, "strategy", "expectimax", "Assist strategy for hints and autopilot")
	playCmd.Flags().IntVar(&flagRate, "rate", 4, "Autopilot speed (moves per second)")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !strategy.Exists(flagStrategy) {
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", flagStrategy)
		fmt.Fprintln(os.Stderr, "Run 'merge48 strategies' to see available strategies.")
		os.Exit(1)
	}

	solverCfg, err := config.LoadSolver(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyDepthPreset(&solverCfg, config.DepthPreset(flagPreset))
	ai.SetSolverConfig(solverCfg)

	assist, err := strategy.Create(flagStrategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating strategy: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(assist, store, tui.PlayConfig{
		Seed:     flagSeed,
		Depth:    flagDepth,
		FourProb: solverCfg.Spawn.FourProb,
		AutoRate: flagRate,
		Width:    width,
		Height:   height,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
