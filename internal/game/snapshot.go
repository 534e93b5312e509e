package game

import "github.com/vovakirdan/merge48/internal/board"

// State represents the current session state.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
	StateWon      State = "won"
)

// Snapshot captures the complete session state for determinism testing
// and display.
type Snapshot struct {
	Board   board.Board
	Score   int
	Moves   int
	MaxTile int
	Seed    int64
	State   State
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.over:
		state = StateGameOver
	case s.Won():
		state = StateWon
	}

	return Snapshot{
		Board:   s.board,
		Score:   s.score,
		Moves:   s.moves,
		MaxTile: s.maxTile,
		Seed:    s.seed,
		State:   state,
	}
}
