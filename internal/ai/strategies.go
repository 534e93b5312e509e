package ai

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/merge48/internal/board"
	"github.com/vovakirdan/merge48/internal/config"
	"github.com/vovakirdan/merge48/internal/strategy"
)

// Package-level solver configuration, set by the CLI before strategies
// are created.
var activeConfig = config.DefaultSolverConfig()

// SetSolverConfig overrides the configuration used by the strategies
// registered in this package.
func SetSolverConfig(cfg config.SolverConfig) {
	activeConfig = cfg
}

func init() {
	strategy.Register("expectimax", func() strategy.Strategy {
		return &ExpectimaxStrategy{}
	})
	strategy.Register("greedy", func() strategy.Strategy {
		return &GreedyStrategy{}
	})
	strategy.Register("random", func() strategy.Strategy {
		return &RandomStrategy{}
	})
}

// ExpectimaxStrategy selects moves with the full expectimax search.
type ExpectimaxStrategy struct {
	solver *Solver
	depth  int
}

// ID returns the strategy identifier.
func (s *ExpectimaxStrategy) ID() string { return "expectimax" }

// Title returns the display name.
func (s *ExpectimaxStrategy) Title() string { return "Expectimax" }

// Reset initializes the strategy from the active solver config.
func (s *ExpectimaxStrategy) Reset(cfg strategy.Config) {
	s.solver = NewSolver(activeConfig)
	s.depth = cfg.Depth
	if s.depth <= 0 {
		s.depth = s.solver.DefaultDepth()
	}
}

// NextMove picks the direction with the best expected score.
func (s *ExpectimaxStrategy) NextMove(b board.Board) (board.Direction, bool) {
	if s.solver == nil {
		s.Reset(strategy.Config{})
	}
	return s.solver.BestMove(b, s.depth)
}

// GreedyStrategy is a one-ply baseline: it picks the legal move that
// maximizes the immediate score gain plus the static evaluation of the
// resulting board, ignoring tile spawns entirely.
type GreedyStrategy struct {
	solver *Solver
}

// ID returns the strategy identifier.
func (s *GreedyStrategy) ID() string { return "greedy" }

// Title returns the display name.
func (s *GreedyStrategy) Title() string { return "Greedy (1-ply)" }

// Reset initializes the strategy from the active solver config.
func (s *GreedyStrategy) Reset(cfg strategy.Config) {
	s.solver = NewSolver(activeConfig)
}

// NextMove picks the best immediate move.
func (s *GreedyStrategy) NextMove(b board.Board) (board.Direction, bool) {
	if s.solver == nil {
		s.Reset(strategy.Config{})
	}

	bestScore := 0.0
	bestDir := board.Up
	found := false

	for _, dir := range board.Directions {
		sim := board.Move(b, dir)
		if !sim.Moved {
			continue
		}
		score := float64(sim.ScoreGain) + s.solver.Evaluate(sim.Board)
		if !found || score > bestScore {
			bestScore = score
			bestDir = dir
			found = true
		}
	}

	return bestDir, found
}

// RandomStrategy picks a uniformly random legal move. It is the floor
// every other strategy should beat.
type RandomStrategy struct {
	rng *rand.Rand
}

// ID returns the strategy identifier.
func (s *RandomStrategy) ID() string { return "random" }

// Title returns the display name.
func (s *RandomStrategy) Title() string { return "Random" }

// Reset seeds the strategy's RNG.
func (s *RandomStrategy) Reset(cfg strategy.Config) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))
}

// NextMove picks a random legal move.
func (s *RandomStrategy) NextMove(b board.Board) (board.Direction, bool) {
	if s.rng == nil {
		s.Reset(strategy.Config{})
	}

	var legal []board.Direction
	for _, dir := range board.Directions {
		if board.Move(b, dir).Moved {
			legal = append(legal, dir)
		}
	}
	if len(legal) == 0 {
		return 0, false
	}
	return legal[s.rng.Intn(len(legal))], true
}
