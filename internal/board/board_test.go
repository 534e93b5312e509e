package board

import "testing"

// fromRows builds a board from a row-major grid literal.
func fromRows(rows [Size][Size]int) Board {
	var b Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b.Set(r, c, rows[r][c])
		}
	}
	return b
}

func TestMoveRight(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size][Size]int
		expected [Size][Size]int
		moved    bool
		gain     int
	}{
		{
			name:     "simple merge",
			input:    [Size][Size]int{{0, 0, 2, 2}},
			expected: [Size][Size]int{{0, 0, 0, 4}},
			moved:    true,
			gain:     4,
		},
		{
			name:     "merged tile does not merge again",
			input:    [Size][Size]int{{2, 2, 4, 0}},
			expected: [Size][Size]int{{0, 0, 4, 4}},
			moved:    true,
			gain:     4,
		},
		{
			name:     "two independent merges",
			input:    [Size][Size]int{{4, 4, 4, 4}},
			expected: [Size][Size]int{{0, 0, 8, 8}},
			moved:    true,
			gain:     16,
		},
		{
			name:     "odd run merges the pair nearest the edge",
			input:    [Size][Size]int{{0, 2, 2, 2}},
			expected: [Size][Size]int{{0, 0, 2, 4}},
			moved:    true,
			gain:     4,
		},
		{
			name:     "slide without merge",
			input:    [Size][Size]int{{2, 0, 0, 0}},
			expected: [Size][Size]int{{0, 0, 0, 2}},
			moved:    true,
			gain:     0,
		},
		{
			name:     "slide over gaps then merge",
			input:    [Size][Size]int{{2, 0, 0, 2}},
			expected: [Size][Size]int{{0, 0, 0, 4}},
			moved:    true,
			gain:     4,
		},
		{
			name:     "nothing to do",
			input:    [Size][Size]int{{0, 0, 2, 4}},
			expected: [Size][Size]int{{0, 0, 2, 4}},
			moved:    false,
			gain:     0,
		},
		{
			name:     "empty board",
			input:    [Size][Size]int{},
			expected: [Size][Size]int{},
			moved:    false,
			gain:     0,
		},
		{
			name: "rows are independent",
			input: [Size][Size]int{
				{2, 2, 0, 0},
				{0, 4, 0, 4},
				{2, 4, 8, 16},
				{0, 0, 0, 0},
			},
			expected: [Size][Size]int{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{2, 4, 8, 16},
				{0, 0, 0, 0},
			},
			moved: true,
			gain:  12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Move(fromRows(tt.input), Right)
			if res.Board != fromRows(tt.expected) {
				t.Errorf("board mismatch:\ngot:\n%vwant:\n%v", res.Board, fromRows(tt.expected))
			}
			if res.Moved != tt.moved {
				t.Errorf("Moved = %v, want %v", res.Moved, tt.moved)
			}
			if res.ScoreGain != tt.gain {
				t.Errorf("ScoreGain = %d, want %d", res.ScoreGain, tt.gain)
			}
		})
	}
}

func TestMoveDirections(t *testing.T) {
	// A column with a pair and a trailing tile: the merge must land on
	// the edge being moved toward.
	tests := []struct {
		name     string
		dir      Direction
		input    [Size][Size]int
		expected [Size][Size]int
		gain     int
	}{
		{
			name: "up merges toward top edge",
			dir:  Up,
			input: [Size][Size]int{
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 0, 0},
				{0, 0, 0, 0},
			},
			expected: [Size][Size]int{
				{4, 0, 0, 0},
				{4, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			gain: 4,
		},
		{
			name: "down merges toward bottom edge",
			dir:  Down,
			input: [Size][Size]int{
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 0, 0},
				{0, 0, 0, 0},
			},
			expected: [Size][Size]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{4, 0, 0, 0},
				{4, 0, 0, 0},
			},
			gain: 4,
		},
		{
			name: "left merges toward left edge",
			dir:  Left,
			input: [Size][Size]int{
				{0, 2, 2, 4},
			},
			expected: [Size][Size]int{
				{4, 4, 0, 0},
			},
			gain: 4,
		},
		{
			name: "left does not cascade",
			dir:  Left,
			input: [Size][Size]int{
				{2, 2, 4, 0},
			},
			expected: [Size][Size]int{
				{4, 4, 0, 0},
			},
			gain: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Move(fromRows(tt.input), tt.dir)
			if res.Board != fromRows(tt.expected) {
				t.Errorf("board mismatch:\ngot:\n%vwant:\n%v", res.Board, fromRows(tt.expected))
			}
			if !res.Moved {
				t.Error("Moved = false, want true")
			}
			if res.ScoreGain != tt.gain {
				t.Errorf("ScoreGain = %d, want %d", res.ScoreGain, tt.gain)
			}
		})
	}
}

func TestRepeatedMoveIsNoOp(t *testing.T) {
	// Once tiles are compacted and no merges remain, repeating the same
	// move changes nothing.
	b := fromRows([Size][Size]int{
		{2, 4, 0, 8},
		{0, 16, 2, 0},
		{4, 0, 0, 32},
	})

	first := Move(b, Right)
	if !first.Moved {
		t.Fatal("first move did not move")
	}

	second := Move(first.Board, Right)
	if second.Moved {
		t.Error("second identical move reported Moved = true")
	}
	if second.Board != first.Board {
		t.Error("second identical move changed the board")
	}
	if second.ScoreGain != 0 {
		t.Errorf("second identical move ScoreGain = %d, want 0", second.ScoreGain)
	}
}

func TestMovePreservesTileSum(t *testing.T) {
	b := fromRows([Size][Size]int{
		{2, 2, 4, 8},
		{0, 4, 4, 0},
		{16, 0, 2, 2},
		{2, 0, 0, 2},
	})

	for _, dir := range Directions {
		res := Move(b, dir)
		if Sum(res.Board) != Sum(b) {
			t.Errorf("%v: sum changed from %d to %d", dir, Sum(b), Sum(res.Board))
		}
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	b := fromRows([Size][Size]int{
		{2, 2, 0, 0},
		{0, 4, 4, 0},
	})
	before := b

	for _, dir := range Directions {
		Move(b, dir)
	}

	if b != before {
		t.Error("Move mutated its input board")
	}
}

func TestScoreGainMatchesMergedValues(t *testing.T) {
	// Every merge of two v tiles contributes 2v to the gain.
	b := fromRows([Size][Size]int{
		{2, 2, 4, 4},
		{8, 8, 0, 0},
	})

	res := Move(b, Right)
	if want := 4 + 8 + 16; res.ScoreGain != want {
		t.Errorf("ScoreGain = %d, want %d", res.ScoreGain, want)
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size][Size]int
		terminal bool
	}{
		{
			name: "checkerboard has no moves",
			input: [Size][Size]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			terminal: true,
		},
		{
			name: "full board with one mergeable pair",
			input: [Size][Size]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 4},
			},
			terminal: false,
		},
		{
			name: "board with an empty cell",
			input: [Size][Size]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 0},
			},
			terminal: false,
		},
		{
			name:     "empty board has no moves",
			input:    [Size][Size]int{},
			terminal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTerminal(fromRows(tt.input)); got != tt.terminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.terminal)
			}
		})
	}
}

func TestEmptyCellsAndFullness(t *testing.T) {
	var b Board
	if got := CountEmpty(b); got != Cells {
		t.Errorf("CountEmpty(empty) = %d, want %d", got, Cells)
	}
	if got := Fullness(b); got != 0 {
		t.Errorf("Fullness(empty) = %v, want 0", got)
	}

	b.Set(0, 0, 2)
	b.Set(3, 3, 4)

	empty := EmptyCells(b)
	if len(empty) != Cells-2 {
		t.Fatalf("len(EmptyCells) = %d, want %d", len(empty), Cells-2)
	}
	for _, idx := range empty {
		if b[idx] != 0 {
			t.Errorf("EmptyCells returned occupied index %d", idx)
		}
	}

	if got, want := Fullness(b), 2.0/float64(Cells); got != want {
		t.Errorf("Fullness = %v, want %v", got, want)
	}
}

func TestMaxTile(t *testing.T) {
	b := fromRows([Size][Size]int{
		{2, 0, 0, 0},
		{0, 128, 0, 0},
		{0, 0, 64, 0},
	})
	if got := MaxTile(b); got != 128 {
		t.Errorf("MaxTile = %d, want 128", got)
	}
	if got := MaxTile(Board{}); got != 0 {
		t.Errorf("MaxTile(empty) = %d, want 0", got)
	}
}

func TestRotations(t *testing.T) {
	b := fromRows([Size][Size]int{
		{2, 4, 0, 0},
		{0, 8, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 16},
	})

	cw := rotateCW(b)
	if got := cw.At(0, 3); got != 2 {
		t.Errorf("rotateCW top-left landed at (0,3) = %d, want 2", got)
	}
	if got := cw.At(3, 0); got != 16 {
		t.Errorf("rotateCW bottom-right landed at (3,0) = %d, want 16", got)
	}

	if rotateCCW(cw) != b {
		t.Error("rotateCCW(rotateCW(b)) != b")
	}
	if rotate180(rotate180(b)) != b {
		t.Error("rotate180 applied twice != identity")
	}
	if rotateCW(rotateCW(b)) != rotate180(b) {
		t.Error("two clockwise rotations != rotate180")
	}
}
