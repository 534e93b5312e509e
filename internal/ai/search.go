package ai

import (
	"math"
	"sort"

	"github.com/vovakirdan/merge48/internal/board"
	"github.com/vovakirdan/merge48/internal/config"
)

// MoveDescriptor identifies a chosen direction together with the score
// gained by applying it from the position it was chosen at.
type MoveDescriptor struct {
	Dir       board.Direction
	ScoreGain int
}

// SearchResult is the outcome of one expectimax call. Move is populated
// only at player nodes that found at least one legal move; chance and
// terminal nodes report a score alone.
type SearchResult struct {
	Move  *MoveDescriptor
	Score float64
}

// Solver runs the expectimax search. It holds the evaluation weights,
// the fullness-to-depth bands and the spawn distribution the chance
// layer models. A Solver is stateless between calls: for a fixed board
// and depth its decisions are fully deterministic.
type Solver struct {
	weights  Weights
	depth    int
	bands    []config.DepthBandConfig
	fourProb float64
}

// NewSolver creates a solver from the given configuration.
func NewSolver(cfg config.SolverConfig) *Solver {
	bands := make([]config.DepthBandConfig, len(cfg.Search.DepthBands))
	copy(bands, cfg.Search.DepthBands)

	// Bands are matched from the highest threshold down.
	sort.Slice(bands, func(i, j int) bool {
		return bands[i].MinFullness > bands[j].MinFullness
	})

	return &Solver{
		weights: Weights{
			Empty:        cfg.Weights.Empty,
			Merges:       cfg.Weights.Merges,
			Monotonicity: cfg.Weights.Monotonicity,
		},
		depth:    cfg.Search.DefaultDepth,
		bands:    bands,
		fourProb: cfg.Spawn.FourProb,
	}
}

// NewDefaultSolver creates a solver with the stock configuration.
func NewDefaultSolver() *Solver {
	return NewSolver(config.DefaultSolverConfig())
}

// DefaultDepth returns the solver's configured default search depth.
func (s *Solver) DefaultDepth() int {
	return s.depth
}

// Evaluate scores a position with the solver's weights.
func (s *Solver) Evaluate(b board.Board) float64 {
	return Evaluate(b, s.weights)
}

// MaxDepth maps board fullness to the effective search depth relative
// to defaultDepth: crowded boards search deeper, open boards shallower.
// The result is never below one ply, so a live board always gets a root
// player search even when a negative band delta swallows a shallow
// default depth.
func (s *Solver) MaxDepth(fullness float64, defaultDepth int) int {
	depth := defaultDepth
	for _, band := range s.bands {
		if fullness >= band.MinFullness {
			depth = defaultDepth + band.Delta
			break
		}
	}
	if depth < 1 {
		depth = 1
	}
	return depth
}

// DecideMove picks the direction with the best expected long-run score
// and applies it to the board. When no legal move exists the board is
// returned unchanged with Moved=false, which is how callers detect game
// over.
func (s *Solver) DecideMove(b board.Board, defaultDepth int) board.MoveResult {
	if defaultDepth <= 0 {
		defaultDepth = s.depth
	}
	maxDepth := s.MaxDepth(board.Fullness(b), defaultDepth)

	result := s.Search(b, 0, maxDepth, true)
	if result.Move == nil {
		return board.MoveResult{Board: b}
	}
	return board.Move(b, result.Move.Dir)
}

// BestMove returns the direction DecideMove would choose without
// applying it. Reports false when no legal move exists.
func (s *Solver) BestMove(b board.Board, defaultDepth int) (board.Direction, bool) {
	if defaultDepth <= 0 {
		defaultDepth = s.depth
	}
	maxDepth := s.MaxDepth(board.Fullness(b), defaultDepth)

	result := s.Search(b, 0, maxDepth, true)
	if result.Move == nil {
		return 0, false
	}
	return result.Move.Dir, true
}

// Search runs the expectimax recursion. Player nodes maximize over the
// four directions; chance nodes average over every (empty cell, spawn
// value) combination weighted by probability. The tree is explored
// full-width with no pruning, so cost grows sharply with maxDepth.
func (s *Solver) Search(b board.Board, depth, maxDepth int, player bool) SearchResult {
	if depth >= maxDepth || board.IsTerminal(b) {
		return SearchResult{Score: s.Evaluate(b)}
	}
	if player {
		return s.playerNode(b, depth, maxDepth)
	}
	return s.chanceNode(b, depth, maxDepth)
}

func (s *Solver) playerNode(b board.Board, depth, maxDepth int) SearchResult {
	best := SearchResult{Score: math.Inf(-1)}

	for _, dir := range board.Directions {
		sim := board.Move(b, dir)
		if !sim.Moved {
			continue
		}

		// Each branch recurses on its own board copy; siblings never
		// observe each other's merges.
		score := float64(sim.ScoreGain) + s.Search(sim.Board, depth+1, maxDepth, false).Score
		if score > best.Score {
			best = SearchResult{
				Move:  &MoveDescriptor{Dir: dir, ScoreGain: sim.ScoreGain},
				Score: score,
			}
		}
	}

	if best.Move == nil {
		return SearchResult{Score: s.Evaluate(b)}
	}
	return best
}

func (s *Solver) chanceNode(b board.Board, depth, maxDepth int) SearchResult {
	empty := board.EmptyCells(b)
	if len(empty) == 0 {
		return SearchResult{Score: s.Evaluate(b)}
	}

	spawns := [2]struct {
		value int
		prob  float64
	}{
		{2, 1 - s.fourProb},
		{4, s.fourProb},
	}

	cellProb := 1.0 / float64(len(empty))
	total := 0.0
	for _, idx := range empty {
		for _, spawn := range spawns {
			next := b
			next[idx] = spawn.value
			total += cellProb * spawn.prob * s.Search(next, depth+1, maxDepth, true).Score
		}
	}

	return SearchResult{Score: total}
}
