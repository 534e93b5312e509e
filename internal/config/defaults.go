package config

import (
	_ "embed"
)

//go:embed defaults/solver.yaml
var defaultSolverYAML []byte

// DefaultSolverConfig returns the stock solver configuration: the
// heuristic weights and fullness-to-depth bands the solver was tuned
// with.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Weights: WeightsConfig{
			Empty:        27.0,
			Merges:       70.0,
			Monotonicity: 4.0,
		},
		Search: SearchConfig{
			DefaultDepth: 5,
			DepthBands: []DepthBandConfig{
				{MinFullness: 1.00, Delta: 5},
				{MinFullness: 0.85, Delta: 2},
				{MinFullness: 0.60, Delta: 0},
				{MinFullness: 0.50, Delta: -2},
				{MinFullness: 0.40, Delta: -3},
				{MinFullness: 0.00, Delta: -4},
			},
		},
		Spawn: SpawnConfig{
			FourProb: 0.10,
		},
	}
}
