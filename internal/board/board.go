// Package board implements the 4x4 sliding-tile board and its move
// mechanics: pushing tiles toward an edge, merging equal neighbours and
// detecting dead positions. All functions are pure; a Board is a value
// type, so every simulation works on its own copy.
package board

import (
	"fmt"
	"strings"
)

// Size is the board dimension; Cells is the total cell count.
const (
	Size  = 4
	Cells = Size * Size
)

// Direction represents a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all moves in search enumeration order.
var Directions = [4]Direction{Up, Down, Left, Right}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Board is a 4x4 grid stored as a flat row-major array; 0 marks an empty
// cell, non-zero values are powers of two.
type Board [Cells]int

// At returns the tile at row r, column c.
func (b Board) At(r, c int) int {
	return b[r*Size+c]
}

// Set places a tile at row r, column c.
func (b *Board) Set(r, c, v int) {
	b[r*Size+c] = v
}

// MoveResult describes the outcome of one directional move simulation.
// Moved=false implies Board is unchanged and ScoreGain is 0.
type MoveResult struct {
	Board     Board
	Moved     bool
	ScoreGain int
}

// Move simulates a move in the given direction.
//
// All four directions reuse a single canonical routine that moves tiles
// to the right: the board is rotated so the requested direction lines up
// with "right", slid, then rotated back.
func Move(b Board, dir Direction) MoveResult {
	switch dir {
	case Up:
		res := slideRight(rotateCW(b))
		res.Board = rotateCCW(res.Board)
		return res
	case Down:
		res := slideRight(rotateCCW(b))
		res.Board = rotateCW(res.Board)
		return res
	case Left:
		res := slideRight(rotate180(b))
		res.Board = rotate180(res.Board)
		return res
	case Right:
		return slideRight(b)
	default:
		return MoveResult{Board: b}
	}
}

// MoveUp simulates an upward move.
func MoveUp(b Board) MoveResult { return Move(b, Up) }

// MoveDown simulates a downward move.
func MoveDown(b Board) MoveResult { return Move(b, Down) }

// MoveLeft simulates a leftward move.
func MoveLeft(b Board) MoveResult { return Move(b, Left) }

// MoveRight simulates a rightward move.
func MoveRight(b Board) MoveResult { return Move(b, Right) }

// slideRight runs the canonical move: push toward the right edge, merge
// adjacent equal pairs, then push again to close the gaps merging left
// behind.
func slideRight(b Board) MoveResult {
	pushed, didPush := pushRight(b)
	merged, didMerge, gain := mergeRight(pushed)
	final, _ := pushRight(merged)
	return MoveResult{
		Board:     final,
		Moved:     didPush || didMerge,
		ScoreGain: gain,
	}
}

// pushRight compacts every row toward the right edge, preserving tile
// order. Reports whether any tile changed position.
func pushRight(b Board) (Board, bool) {
	var out Board
	moved := false
	for r := 0; r < Size; r++ {
		write := Size - 1
		for c := Size - 1; c >= 0; c-- {
			v := b.At(r, c)
			if v == 0 {
				continue
			}
			out.Set(r, write, v)
			if c != write {
				moved = true
			}
			write--
		}
	}
	return out, moved
}

// mergeRight merges equal neighbours in a single pass scanning from the
// right edge inward. Because the leading cell of a merged pair is zeroed
// before the scan advances, a tile produced by a merge can never merge a
// second time within the same move.
func mergeRight(b Board) (Board, bool, int) {
	merged := false
	gain := 0
	for r := 0; r < Size; r++ {
		for c := Size - 1; c > 0; c-- {
			v := b.At(r, c)
			if v != 0 && v == b.At(r, c-1) {
				b.Set(r, c, v*2)
				b.Set(r, c-1, 0)
				gain += v * 2
				merged = true
			}
		}
	}
	return b, merged, gain
}

// rotateCW rotates the board 90 degrees clockwise.
func rotateCW(b Board) Board {
	var out Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out.Set(c, Size-1-r, b.At(r, c))
		}
	}
	return out
}

// rotateCCW rotates the board 90 degrees counter-clockwise.
func rotateCCW(b Board) Board {
	var out Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out.Set(Size-1-c, r, b.At(r, c))
		}
	}
	return out
}

// rotate180 rotates the board half a turn.
func rotate180(b Board) Board {
	var out Board
	for i := 0; i < Cells; i++ {
		out[Cells-1-i] = b[i]
	}
	return out
}

// IsTerminal reports whether no legal move exists: every directional
// simulation leaves the board unchanged.
func IsTerminal(b Board) bool {
	for _, dir := range Directions {
		if Move(b, dir).Moved {
			return false
		}
	}
	return true
}

// EmptyCells returns the flat indices of all empty cells.
func EmptyCells(b Board) []int {
	var cells []int
	for i, v := range b {
		if v == 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

// CountEmpty returns the number of empty cells.
func CountEmpty(b Board) int {
	n := 0
	for _, v := range b {
		if v == 0 {
			n++
		}
	}
	return n
}

// Fullness returns the fraction of occupied cells (0 to 1).
func Fullness(b Board) float64 {
	return float64(Cells-CountEmpty(b)) / float64(Cells)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for _, v := range b {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func Sum(b Board) int {
	total := 0
	for _, v := range b {
		total += v
	}
	return total
}

// String renders the board as four rows of right-aligned tile values,
// with empty cells shown as dots. Used for logs and debugging output.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v := b.At(r, c); v == 0 {
				sb.WriteString("     .")
			} else {
				fmt.Fprintf(&sb, "%6d", v)
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
