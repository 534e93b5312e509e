// Package game manages a single playthrough: the board, the running
// score and the random tile spawns between moves. Randomness is an
// injected capability (a seeded rand.Rand), never an ambient source, so
// a session replays identically for the same seed and move sequence.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/merge48/internal/board"
)

// TargetTile is the tile value that counts as winning a game.
const TargetTile = 2048

// Config contains configuration for a session.
type Config struct {
	Seed     int64   // RNG seed (0 = derive from current time)
	FourProb float64 // Probability a spawned tile is a 4 (0 = default 0.10)
}

// Session is one playthrough of the puzzle.
type Session struct {
	rng      *rand.Rand
	seed     int64
	fourProb float64

	board   board.Board
	score   int
	moves   int
	maxTile int
	over    bool

	// Move number at which the target tile first appeared, 0 if never.
	wonAt int
}

// NewSession creates and initializes a session: an empty grid with two
// randomly placed starting tiles.
func NewSession(cfg Config) *Session {
	s := &Session{}
	s.Reset(cfg)
	return s
}

// Reset restarts the session with a fresh board.
func (s *Session) Reset(cfg Config) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s.rng = rand.New(rand.NewSource(seed))
	s.seed = seed
	s.fourProb = cfg.FourProb
	if s.fourProb == 0 {
		s.fourProb = 0.10
	}

	s.board = board.Board{}
	s.score = 0
	s.moves = 0
	s.over = false
	s.wonAt = 0

	s.spawnTile()
	s.spawnTile()
	s.maxTile = board.MaxTile(s.board)
}

// spawnTile places a 2 (or, with fourProb probability, a 4) in a
// uniformly random empty cell. A full board spawns nothing.
func (s *Session) spawnTile() {
	empty := board.EmptyCells(s.board)
	if len(empty) == 0 {
		return
	}

	value := 2
	if s.rng.Float64() < s.fourProb {
		value = 4
	}

	s.board[empty[s.rng.Intn(len(empty))]] = value
}

// Apply performs a move: the directional slide, then the random tile
// spawn, then the game-over check. Reports whether the move was legal
// and the score it gained. An illegal move changes nothing and spawns
// nothing.
func (s *Session) Apply(dir board.Direction) (bool, int) {
	if s.over {
		return false, 0
	}

	res := board.Move(s.board, dir)
	if !res.Moved {
		return false, 0
	}

	s.board = res.Board
	s.score += res.ScoreGain
	s.moves++

	if mt := board.MaxTile(s.board); mt > s.maxTile {
		s.maxTile = mt
		if mt >= TargetTile && s.wonAt == 0 {
			s.wonAt = s.moves
		}
	}

	s.spawnTile()

	if board.IsTerminal(s.board) {
		s.over = true
	}

	return true, res.ScoreGain
}

// Board returns a copy of the current board.
func (s *Session) Board() board.Board { return s.board }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Moves returns the number of legal moves applied so far.
func (s *Session) Moves() int { return s.moves }

// MaxTile returns the highest tile reached during the session.
func (s *Session) MaxTile() int { return s.maxTile }

// Seed returns the RNG seed the session runs with.
func (s *Session) Seed() int64 { return s.seed }

// Over reports whether no legal move remains.
func (s *Session) Over() bool { return s.over }

// Won reports whether the target tile was reached.
func (s *Session) Won() bool { return s.wonAt > 0 }

// WonAt returns the move number at which the target tile first
// appeared, or 0 if it never did.
func (s *Session) WonAt() int { return s.wonAt }
