// Package config provides YAML-based configuration loading for the
// solver: heuristic weights, search depth policy and tile spawn odds.
package config

// SolverConfig contains all tunable parameters of the solver.
type SolverConfig struct {
	Weights WeightsConfig `yaml:"weights"`
	Search  SearchConfig  `yaml:"search"`
	Spawn   SpawnConfig   `yaml:"spawn"`
}

// WeightsConfig defines the heuristic evaluation weights.
type WeightsConfig struct {
	Empty        float64 `yaml:"empty"`        // Reward per empty cell
	Merges       float64 `yaml:"merges"`       // Reward per adjacent equal pair
	Monotonicity float64 `yaml:"monotonicity"` // Penalty per monotonicity break
}

// SearchConfig defines the expectimax depth policy.
type SearchConfig struct {
	DefaultDepth int               `yaml:"default_depth"`
	DepthBands   []DepthBandConfig `yaml:"depth_bands"`
}

// DepthBandConfig maps a board fullness threshold to a depth adjustment
// relative to the default depth. Bands are evaluated from the highest
// threshold down; the first band whose threshold the fullness reaches
// wins.
type DepthBandConfig struct {
	MinFullness float64 `yaml:"min_fullness"`
	Delta       int     `yaml:"delta"`
}

// SpawnConfig defines the random tile distribution.
type SpawnConfig struct {
	FourProb float64 `yaml:"four_prob"` // Probability a spawned tile is a 4 (rest are 2s)
}

// DepthPreset represents a named search depth level.
type DepthPreset string

const (
	DepthFast   DepthPreset = "fast"
	DepthNormal DepthPreset = "normal"
	DepthDeep   DepthPreset = "deep"
)

// DepthForPreset returns the default search depth for a preset.
// Returns 0 for an unknown or empty preset, meaning "keep configured".
func DepthForPreset(preset DepthPreset) int {
	switch preset {
	case DepthFast:
		return 3
	case DepthNormal:
		return 5
	case DepthDeep:
		return 7
	default:
		return 0
	}
}

// ApplyDepthPreset overrides the configured default depth from a preset.
func ApplyDepthPreset(cfg *SolverConfig, preset DepthPreset) {
	if depth := DepthForPreset(preset); depth > 0 {
		cfg.Search.DefaultDepth = depth
	}
}
