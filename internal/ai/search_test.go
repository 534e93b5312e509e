package ai

import (
	"testing"

	"github.com/vovakirdan/merge48/internal/board"
	"github.com/vovakirdan/merge48/internal/config"
)

func TestMaxDepth(t *testing.T) {
	s := NewDefaultSolver()

	tests := []struct {
		name     string
		fullness float64
		want     int
	}{
		{"full board searches deepest", 1.00, 10},
		{"nearly full board", 0.85, 7},
		{"between crowded bands", 0.90, 7},
		{"default band", 0.60, 5},
		{"half full", 0.50, 3},
		{"getting sparse", 0.40, 2},
		{"open board searches shallowest", 0.25, 1},
		{"fresh board", 0.125, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.MaxDepth(tt.fullness, 5); got != tt.want {
				t.Errorf("MaxDepth(%v, 5) = %d, want %d", tt.fullness, got, tt.want)
			}
		})
	}
}

func TestMaxDepthNeverBelowOnePly(t *testing.T) {
	s := NewDefaultSolver()

	tests := []struct {
		name         string
		fullness     float64
		defaultDepth int
		want         int
	}{
		{"fresh board at fast depth", 0.125, 3, 1},
		{"fresh board at depth 1", 0.125, 1, 1},
		{"sparse board at depth 4", 0.25, 4, 1},
		{"half full at fast depth", 0.50, 3, 1},
		{"nearly full boards are unaffected", 0.85, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.MaxDepth(tt.fullness, tt.defaultDepth); got != tt.want {
				t.Errorf("MaxDepth(%v, %d) = %d, want %d", tt.fullness, tt.defaultDepth, got, tt.want)
			}
		})
	}
}

func TestBestMoveAtShallowDefaultDepths(t *testing.T) {
	// An open board drops the effective depth by the largest band delta;
	// a shallow default must still yield a root search and a move rather
	// than a spurious game-over signal.
	s := NewDefaultSolver()
	var b board.Board
	b.Set(0, 0, 2)
	b.Set(1, 1, 2)

	for _, depth := range []int{1, 2, 3, 4} {
		dir, ok := s.BestMove(b, depth)
		if !ok {
			t.Fatalf("BestMove(depth=%d) found no legal move on a nearly empty board", depth)
		}
		if !board.Move(b, dir).Moved {
			t.Errorf("BestMove(depth=%d) suggested illegal direction %v", depth, dir)
		}
	}

	fast := config.DepthForPreset(config.DepthFast)
	res := s.DecideMove(b, fast)
	if !res.Moved {
		t.Errorf("DecideMove(depth=%d) reported no legal move on a nearly empty board", fast)
	}
}

func TestSearchAtDepthLimitEvaluates(t *testing.T) {
	s := NewDefaultSolver()
	b := fromRows([board.Size][board.Size]int{
		{2, 2, 0, 0},
	})

	res := s.Search(b, 0, 0, true)
	if res.Move != nil {
		t.Errorf("Move = %v, want nil at the depth limit", res.Move)
	}
	if want := s.Evaluate(b); res.Score != want {
		t.Errorf("Score = %v, want static evaluation %v", res.Score, want)
	}
}

func TestSearchDoesNotMutateBoard(t *testing.T) {
	s := NewDefaultSolver()
	b := fromRows([board.Size][board.Size]int{
		{2, 2, 4, 0},
		{0, 0, 4, 0},
	})
	before := b

	s.Search(b, 0, 3, true)

	if b != before {
		t.Error("Search mutated its input board")
	}
}

func TestBestMoveDeterministic(t *testing.T) {
	s := NewDefaultSolver()
	b := fromRows([board.Size][board.Size]int{
		{2, 2, 4, 0},
		{0, 4, 0, 0},
		{0, 0, 2, 0},
	})

	first, ok := s.BestMove(b, 5)
	if !ok {
		t.Fatal("BestMove found no legal move")
	}
	for i := 0; i < 5; i++ {
		dir, ok := s.BestMove(b, 5)
		if !ok || dir != first {
			t.Fatalf("BestMove = (%v, %v), want (%v, true) every time", dir, ok, first)
		}
	}
}

func TestBestMoveTieBreaksToEarlierDirection(t *testing.T) {
	// A lone centered tile scores identically whichever way it slides;
	// the first direction in enumeration order must win.
	s := NewDefaultSolver()
	var b board.Board
	b.Set(1, 1, 2)

	dir, ok := s.BestMove(b, 5)
	if !ok {
		t.Fatal("BestMove found no legal move")
	}
	if dir != board.Up {
		t.Errorf("BestMove = %v, want %v on a symmetric position", dir, board.Up)
	}
}

func TestBestMoveKeepsMergePotential(t *testing.T) {
	// With a single adjacent pair the shallow search prefers sliding the
	// pair away intact over cashing it in: the merge-potential reward
	// outweighs the immediate four points.
	s := NewDefaultSolver()
	b := fromRows([board.Size][board.Size]int{
		{2, 2, 0, 0},
	})

	dir, ok := s.BestMove(b, 5)
	if !ok {
		t.Fatal("BestMove found no legal move")
	}
	if dir != board.Down {
		t.Errorf("BestMove = %v, want %v", dir, board.Down)
	}
}

func TestDecideMoveOnDeadBoard(t *testing.T) {
	s := NewDefaultSolver()
	b := fromRows([board.Size][board.Size]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	res := s.DecideMove(b, 5)
	if res.Moved {
		t.Error("Moved = true on a dead board")
	}
	if res.Board != b {
		t.Error("dead board was modified")
	}
	if res.ScoreGain != 0 {
		t.Errorf("ScoreGain = %d, want 0", res.ScoreGain)
	}

	if _, ok := s.BestMove(b, 5); ok {
		t.Error("BestMove reported a legal move on a dead board")
	}
}

func TestDecideMoveAppliesChosenDirection(t *testing.T) {
	s := NewDefaultSolver()
	b := fromRows([board.Size][board.Size]int{
		{2, 2, 0, 0},
		{0, 4, 4, 0},
	})

	dir, ok := s.BestMove(b, 5)
	if !ok {
		t.Fatal("BestMove found no legal move")
	}

	res := s.DecideMove(b, 5)
	want := board.Move(b, dir)
	if res != want {
		t.Errorf("DecideMove result differs from simulating BestMove's direction:\ngot %+v\nwant %+v", res, want)
	}
	if !res.Moved {
		t.Error("Moved = false, want true")
	}
}

func TestDecideMoveZeroDepthUsesDefault(t *testing.T) {
	s := NewDefaultSolver()
	b := fromRows([board.Size][board.Size]int{
		{2, 2, 0, 0},
	})

	got := s.DecideMove(b, 0)
	want := s.DecideMove(b, s.DefaultDepth())
	if got != want {
		t.Errorf("DecideMove with depth 0 = %+v, want same as default depth %+v", got, want)
	}
}

func TestChanceNodeAveragesSpawns(t *testing.T) {
	// A chance node on a board with one empty cell averages exactly two
	// children: a 2 with probability 0.9 and a 4 with probability 0.1,
	// both evaluated statically one ply deeper.
	s := NewDefaultSolver()
	b := fromRows([board.Size][board.Size]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 0},
	})

	res := s.Search(b, 0, 1, false)

	with2 := b
	with2.Set(3, 3, 2)
	with4 := b
	with4.Set(3, 3, 4)
	want := 0.9*s.Evaluate(with2) + 0.1*s.Evaluate(with4)

	if diff := res.Score - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("chance score = %v, want %v", res.Score, want)
	}
}
