package t2048

import (
	"errors"
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction in a fixed order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// DefaultTarget is the classic winning tile.
const DefaultTarget = 2048

// ErrUnknownDirection is returned by ParseDirection for unrecognised input.
var ErrUnknownDirection = errors.New("t2048: unknown direction")

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection accepts full names and initials (u, d, l, r), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// MoveOutcome is the result of sliding a board in one direction.
// Moved is false exactly when Board equals the input; ScoreGained is then 0.
type MoveOutcome struct {
	Board       Board
	ScoreGained int
	Moved       bool
}

// SlideLine slides one line toward index 0 and merges equal neighbours.
// Merging is a single left-to-right pass: a tile produced by a merge is
// never merged again in the same call. The input slice is not modified.
func SlideLine(line []int) ([]int, int) {
	out := make([]int, 0, len(line))
	for _, v := range line {
		if v != 0 {
			out = append(out, v)
		}
	}

	score := 0
	for i := 0; i+1 < len(out); i++ {
		if out[i] == out[i+1] {
			out[i] *= 2
			score += out[i]
			out[i+1] = 0
			i++ // merged tile is final
		}
	}

	result := make([]int, len(line))
	w := 0
	for _, v := range out {
		if v != 0 {
			result[w] = v
			w++
		}
	}
	return result, score
}

func reverseLine(line []int) {
	for i, j := 0, len(line)-1; i < j; i, j = i+1, j-1 {
		line[i], line[j] = line[j], line[i]
	}
}

// Move slides every row or column of b in direction d.
// Up/Down operate on columns, Left/Right on rows; Down and Right reverse
// each line around SlideLine. Score is summed in line index order.
// An invalid direction yields an unmoved outcome.
func Move(b Board, d Direction) MoveOutcome {
	if !d.Valid() || b.size == 0 {
		return MoveOutcome{Board: b}
	}

	vertical := d == DirUp || d == DirDown
	reversed := d == DirDown || d == DirRight

	next := b.clone()
	total := 0
	for i := range b.size {
		line := b.line(i, vertical)
		if reversed {
			reverseLine(line)
		}
		slid, score := SlideLine(line)
		if reversed {
			reverseLine(slid)
		}
		next.setLine(i, vertical, slid)
		total += score
	}

	if next.Equal(b) {
		return MoveOutcome{Board: b}
	}
	return MoveOutcome{Board: next, ScoreGained: total, Moved: true}
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(b Board) bool {
	for _, v := range b.cells {
		if v == 0 {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// non-empty tiles are equal.
func HasPossibleMerge(b Board) bool {
	n := b.size
	for r := range n {
		for c := range n {
			v := b.cells[r*n+c]
			if v == 0 {
				continue
			}
			if c < n-1 && b.cells[r*n+c+1] == v {
				return true
			}
			if r < n-1 && b.cells[(r+1)*n+c] == v {
				return true
			}
		}
	}
	return false
}

// HasAnyLegalMove reports whether some direction would change the board.
func HasAnyLegalMove(b Board) bool {
	return HasEmptyCell(b) || HasPossibleMerge(b)
}

// HasWinningTile reports whether any cell is at least target.
func HasWinningTile(b Board, target int) bool {
	for _, v := range b.cells {
		if v >= target {
			return true
		}
	}
	return false
}
