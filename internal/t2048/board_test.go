package t2048

import (
	"errors"
	"slices"
	"testing"
)

func TestBoardFromRowsValidation(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		err  error
	}{
		{
			name: "valid",
			rows: [][]int{{0, 2}, {4, 2048}},
		},
		{
			name: "too small",
			rows: [][]int{{2}},
			err:  ErrInvalidSize,
		},
		{
			name: "empty",
			rows: nil,
			err:  ErrInvalidSize,
		},
		{
			name: "ragged",
			rows: [][]int{{0, 2, 4}, {0, 2}, {0, 0, 0}},
			err:  ErrInvalidSize,
		},
		{
			name: "not a power of two",
			rows: [][]int{{0, 3}, {0, 0}},
			err:  ErrInvalidTile,
		},
		{
			name: "one is not a tile",
			rows: [][]int{{1, 0}, {0, 0}},
			err:  ErrInvalidTile,
		},
		{
			name: "negative",
			rows: [][]int{{0, 0}, {-2, 0}},
			err:  ErrInvalidTile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BoardFromRows(tt.rows)
			if tt.err == nil {
				if err != nil {
					t.Fatalf("BoardFromRows() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("BoardFromRows() error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestBoardFromFlat(t *testing.T) {
	b, err := BoardFromFlat(2, []int{2, 0, 0, 4})
	if err != nil {
		t.Fatalf("BoardFromFlat() failed: %v", err)
	}
	if b.At(0, 0) != 2 || b.At(1, 1) != 4 {
		t.Errorf("cells not row-major: %v", b.Rows())
	}

	if _, err := BoardFromFlat(2, []int{2, 0, 0}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("short cell slice error = %v, want ErrInvalidSize", err)
	}
	if _, err := BoardFromFlat(2, []int{2, 0, 0, 6}); !errors.Is(err, ErrInvalidTile) {
		t.Errorf("bad tile error = %v, want ErrInvalidTile", err)
	}
}

func TestNewBoard(t *testing.T) {
	b, err := NewBoard(5)
	if err != nil {
		t.Fatalf("NewBoard(5) failed: %v", err)
	}
	if b.Size() != 5 || b.TileCount() != 0 || len(b.Flat()) != 25 {
		t.Errorf("NewBoard(5) = size %d, %d tiles, %d cells", b.Size(), b.TileCount(), len(b.Flat()))
	}

	if _, err := NewBoard(1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewBoard(1) error = %v, want ErrInvalidSize", err)
	}
}

func TestBoardIsImmutable(t *testing.T) {
	b := MustBoard([][]int{{2, 0}, {0, 0}})

	updated := b.With(1, 1, 4)
	if b.At(1, 1) != 0 {
		t.Error("With modified the receiver")
	}
	if updated.At(1, 1) != 4 {
		t.Error("With did not set the value on the copy")
	}

	flat := b.Flat()
	flat[0] = 1024
	rows := b.Rows()
	rows[0][0] = 1024
	row := b.Row(0)
	row[0] = 1024
	if b.At(0, 0) != 2 {
		t.Error("accessors should return copies")
	}
}

func TestBoardEqual(t *testing.T) {
	a := MustBoard([][]int{{2, 0}, {0, 4}})
	b := MustBoard([][]int{{2, 0}, {0, 4}})
	c := MustBoard([][]int{{2, 0}, {4, 0}})
	d := EmptyBoard()

	if !a.Equal(b) {
		t.Error("identical boards should be equal")
	}
	if a.Equal(c) {
		t.Error("different cells should not be equal")
	}
	if a.Equal(d) {
		t.Error("different sizes should not be equal")
	}
}

func TestMaxTileAndCount(t *testing.T) {
	board := MustBoard([][]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	})

	if got := board.MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
	if got := board.TileCount(); got != 8 {
		t.Errorf("TileCount = %d, want 8", got)
	}
}

func TestBoardString(t *testing.T) {
	board := MustBoard([][]int{
		{2, 0},
		{16, 4},
	})

	want := " 2  .\n16  4\n"
	if got := board.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBoardRowsRoundTrip(t *testing.T) {
	rows := [][]int{
		{2, 0, 0},
		{0, 4, 0},
		{0, 0, 8},
	}
	b := MustBoard(rows)
	for i, r := range b.Rows() {
		if !slices.Equal(r, rows[i]) {
			t.Errorf("Rows()[%d] = %v, want %v", i, r, rows[i])
		}
	}
}
