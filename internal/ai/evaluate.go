// Package ai implements the decision-making core of the solver: a
// static heuristic evaluator and a full-width expectimax search with a
// fullness-driven depth policy.
package ai

import (
	"github.com/vovakirdan/merge48/internal/board"
	"github.com/vovakirdan/merge48/internal/config"
)

// Weights combines the three board heuristics into a single leaf score.
type Weights struct {
	Empty        float64
	Merges       float64
	Monotonicity float64
}

// DefaultWeights returns the weights the solver was tuned with.
func DefaultWeights() Weights {
	cfg := config.DefaultSolverConfig()
	return Weights{
		Empty:        cfg.Weights.Empty,
		Merges:       cfg.Weights.Merges,
		Monotonicity: cfg.Weights.Monotonicity,
	}
}

// Evaluate scores a position statically:
//
//	score = Empty*emptyCount + Merges*mergeCount - Monotonicity*monoPenalty
//
// It is a leaf-only evaluator, called at search depth limits and
// terminal positions, never during move simulation.
func Evaluate(b board.Board, w Weights) float64 {
	return w.Empty*float64(board.CountEmpty(b)) +
		w.Merges*float64(countMerges(b)) -
		w.Monotonicity*monotonicity(b)
}

// countMerges counts adjacent equal-valued, non-zero pairs across every
// row and every column. It measures merge potential only; the board is
// not mutated and no merges are performed.
func countMerges(b board.Board) int {
	merges := 0
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size-1; c++ {
			if v := b.At(r, c); v != 0 && v == b.At(r, c+1) {
				merges++
			}
		}
	}
	for c := 0; c < board.Size; c++ {
		for r := 0; r < board.Size-1; r++ {
			if v := b.At(r, c); v != 0 && v == b.At(r+1, c) {
				merges++
			}
		}
	}
	return merges
}

// monotonicity measures how far the board is from being consistently
// ordered. Across all rows it accumulates the magnitudes of decreasing
// steps and of increasing steps separately and keeps the smaller total,
// then does the same across all columns; the two minima are summed.
// Lower is better.
func monotonicity(b board.Board) float64 {
	var rowDesc, rowAsc, colDesc, colAsc float64

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size-1; c++ {
			cur, next := b.At(r, c), b.At(r, c+1)
			if cur > next {
				rowDesc += float64(cur - next)
			} else if cur < next {
				rowAsc += float64(next - cur)
			}
		}
	}

	for c := 0; c < board.Size; c++ {
		for r := 0; r < board.Size-1; r++ {
			cur, next := b.At(r, c), b.At(r+1, c)
			if cur > next {
				colDesc += float64(cur - next)
			} else if cur < next {
				colAsc += float64(next - cur)
			}
		}
	}

	return min(rowDesc, rowAsc) + min(colDesc, colAsc)
}
