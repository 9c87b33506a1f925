package t2048

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// BoardSize is the default board dimension.
const BoardSize = 4

var (
	// ErrInvalidSize is returned for boards that are not N×N with N >= 2.
	ErrInvalidSize = errors.New("t2048: invalid board size")
	// ErrInvalidTile is returned for cell values that are neither 0 nor a power of two >= 2.
	ErrInvalidTile = errors.New("t2048: invalid tile value")
)

// Cell is a 0-indexed board coordinate.
type Cell struct {
	Row int
	Col int
}

// Board is an N×N grid of tile values, 0 meaning empty.
// Boards are values: every operation returns a new Board and never
// writes to the receiver's storage.
type Board struct {
	size  int
	cells []int // row-major, len == size*size
}

// NewBoard returns an empty size×size board.
func NewBoard(size int) (Board, error) {
	if size < 2 {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return Board{size: size, cells: make([]int, size*size)}, nil
}

// EmptyBoard returns an empty board of the default size.
func EmptyBoard() Board {
	b, _ := NewBoard(BoardSize)
	return b
}

// BoardFromRows builds a board from nested rows, validating shape and values.
func BoardFromRows(rows [][]int) (Board, error) {
	size := len(rows)
	b, err := NewBoard(size)
	if err != nil {
		return Board{}, err
	}
	for r, row := range rows {
		if len(row) != size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, r, len(row), size)
		}
		for c, v := range row {
			if !validTile(v) {
				return Board{}, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidTile, v, r, c)
			}
			b.cells[r*size+c] = v
		}
	}
	return b, nil
}

// MustBoard is like BoardFromRows but panics on invalid input.
// Intended for fixtures and tests.
func MustBoard(rows [][]int) Board {
	b, err := BoardFromRows(rows)
	if err != nil {
		panic(err)
	}
	return b
}

// BoardFromFlat builds a size×size board from row-major cell values.
func BoardFromFlat(size int, cells []int) (Board, error) {
	b, err := NewBoard(size)
	if err != nil {
		return Board{}, err
	}
	if len(cells) != size*size {
		return Board{}, fmt.Errorf("%w: %d cells for %dx%d board", ErrInvalidSize, len(cells), size, size)
	}
	for i, v := range cells {
		if !validTile(v) {
			return Board{}, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidTile, v, i/size, i%size)
		}
	}
	copy(b.cells, cells)
	return b, nil
}

// validTile reports whether v is 0 or a power of two >= 2.
func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Size returns the board dimension N.
func (b Board) Size() int {
	return b.size
}

// At returns the value at (row, col). Out-of-range coordinates read as 0.
func (b Board) At(row, col int) int {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return 0
	}
	return b.cells[row*b.size+col]
}

// With returns a copy of the board with (row, col) set to value.
func (b Board) With(row, col, value int) Board {
	out := b.clone()
	out.cells[row*b.size+col] = value
	return out
}

// Row returns a copy of row r.
func (b Board) Row(r int) []int {
	out := make([]int, b.size)
	copy(out, b.cells[r*b.size:(r+1)*b.size])
	return out
}

// Rows returns the board as a fresh nested slice.
func (b Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for r := range b.size {
		rows[r] = b.Row(r)
	}
	return rows
}

// Flat returns the row-major cell values.
func (b Board) Flat() []int {
	out := make([]int, len(b.cells))
	copy(out, b.cells)
	return out
}

// Equal reports whether two boards have the same size and cells.
func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// TileCount returns the number of non-empty cells.
func (b Board) TileCount() int {
	n := 0
	for _, v := range b.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// String renders the board as right-aligned columns, one row per line.
func (b Board) String() string {
	width := len(strconv.Itoa(b.MaxTile()))
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for r := range b.size {
		for c := range b.size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := b.At(r, c)
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b Board) clone() Board {
	out := Board{size: b.size, cells: make([]int, len(b.cells))}
	copy(out.cells, b.cells)
	return out
}

// line reads the i-th row (vertical=false) or column (vertical=true).
func (b Board) line(i int, vertical bool) []int {
	out := make([]int, b.size)
	for j := range b.size {
		if vertical {
			out[j] = b.cells[j*b.size+i]
		} else {
			out[j] = b.cells[i*b.size+j]
		}
	}
	return out
}

// setLine writes the i-th row or column in place. Only used on fresh copies.
func (b Board) setLine(i int, vertical bool, values []int) {
	for j, v := range values {
		if vertical {
			b.cells[j*b.size+i] = v
		} else {
			b.cells[i*b.size+j] = v
		}
	}
}
