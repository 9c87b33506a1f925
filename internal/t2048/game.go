package t2048

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Status is the session state.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// ErrGameOver is returned by Game.Move once the session has been won or lost.
var ErrGameOver = errors.New("t2048: game is over")

// Turn reports everything that happened during one accepted direction command.
type Turn struct {
	Direction   Direction
	Moved       bool
	ScoreGained int
	Spawned     bool
	SpawnedAt   Cell
	Status      Status
}

// Game is one 2048 session. It owns the current board and the randomness
// used for spawning; the board engine itself is stateless.
type Game struct {
	variant Variant
	spawner Spawner
	rng     Rand

	board  Board
	score  int
	moves  int
	status Status

	lastSpawn    Cell
	hasLastSpawn bool
}

// NewGame creates a session for the given variant. Call Reset or Start before use.
func NewGame(v Variant) *Game {
	if v.Size < 2 {
		v.Size = BoardSize
	}
	return &Game{
		variant: v,
		spawner: Spawner{Spawn4Prob: v.Spawn4},
		status:  StatusPlaying,
	}
}

// ID returns the variant identifier, also used as the score key.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Variant returns the rule set of this session.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset starts a new session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Start(rand.New(rand.NewSource(cfg.Seed)))
}

// Start begins a new session drawing randomness from rng: an empty board
// seeded with two spawned tiles, score 0, status Playing.
func (g *Game) Start(rng Rand) {
	g.rng = rng
	g.score = 0
	g.moves = 0
	g.status = StatusPlaying
	g.hasLastSpawn = false

	board, _ := NewBoard(g.variant.Size)
	for range 2 {
		board, _, _ = g.spawner.Spawn(board, g.rng)
	}
	g.board = board
}

// Move applies one direction command: slide, then spawn if the board
// changed, then re-check the terminal predicates. A move that changes
// nothing is not an error and leaves the session untouched.
func (g *Game) Move(d Direction) (Turn, error) {
	if g.status.Terminal() {
		return Turn{Direction: d, Status: g.status}, ErrGameOver
	}

	outcome := Move(g.board, d)
	if !outcome.Moved {
		return Turn{Direction: d, Status: g.status}, nil
	}

	g.board = outcome.Board
	g.score += outcome.ScoreGained
	g.moves++

	turn := Turn{
		Direction:   d,
		Moved:       true,
		ScoreGained: outcome.ScoreGained,
	}

	if g.rng != nil {
		g.board, turn.SpawnedAt, turn.Spawned = g.spawner.Spawn(g.board, g.rng)
	}
	g.lastSpawn, g.hasLastSpawn = turn.SpawnedAt, turn.Spawned

	switch {
	case g.variant.Won(g.board):
		g.status = StatusWon
	case !HasAnyLegalMove(g.board):
		g.status = StatusLost
	}

	turn.Status = g.status
	return turn, nil
}

// Step translates platform input into at most one move.
// Restart is handled by the platform, which calls Reset.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var (
		dir Direction
		ok  bool
	)
	switch {
	case in.Has(core.ActionUp):
		dir, ok = DirUp, true
	case in.Has(core.ActionDown):
		dir, ok = DirDown, true
	case in.Has(core.ActionLeft):
		dir, ok = DirLeft, true
	case in.Has(core.ActionRight):
		dir, ok = DirRight, true
	}

	moved := false
	if ok {
		turn, err := g.Move(dir)
		moved = err == nil && turn.Moved
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Moves:    g.moves,
		GameOver: g.status.Terminal(),
		Won:      g.status == StatusWon,
	}
}

// Board returns the current board.
func (g *Game) Board() Board {
	return g.board
}

// Score returns the running score.
func (g *Game) Score() int {
	return g.score
}

// Moves returns the number of accepted moves.
func (g *Game) Moves() int {
	return g.moves
}

// Status returns the session status.
func (g *Game) Status() Status {
	return g.status
}

// LastSpawn returns the cell filled by the most recent post-move spawn.
func (g *Game) LastSpawn() (Cell, bool) {
	return g.lastSpawn, g.hasLastSpawn
}
