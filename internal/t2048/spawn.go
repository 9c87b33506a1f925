package t2048

// Rand is the randomness the spawner consumes. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// DefaultSpawn4Prob is the classic chance of a new tile being a 4.
const DefaultSpawn4Prob = 0.10

// Spawner places new tiles on a board.
type Spawner struct {
	Spawn4Prob float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// DefaultSpawner spawns a 2 with probability 0.9 and a 4 with probability 0.1.
var DefaultSpawner = Spawner{Spawn4Prob: DefaultSpawn4Prob}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(b Board) []Cell {
	var cells []Cell
	for r := range b.size {
		for c := range b.size {
			if b.cells[r*b.size+c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Spawn places a 2 or a 4 on a uniformly chosen empty cell of a copy of b.
// It draws the cell index first, then the value. When the board is full it
// returns b unchanged and ok=false.
func (s Spawner) Spawn(b Board, rng Rand) (next Board, at Cell, ok bool) {
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return b, Cell{}, false
	}

	cell := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < s.Spawn4Prob {
		value = 4
	}

	return b.With(cell.Row, cell.Col, value), cell, true
}
