package t2048

import (
	"math/rand"
	"strings"
	"unicode"
)

// ReplayStep is one recorded direction and its effect.
type ReplayStep struct {
	Turn  Turn
	Score int
	Board Board
}

// ReplayResult is the outcome of a headless replay.
type ReplayResult struct {
	Initial Board
	Steps   []ReplayStep
	Final   Snapshot
	Ignored int // Moves left unplayed because the session ended
}

// Replay plays moves on a fresh session of v seeded with seed. The same
// variant, seed and moves always produce the same result.
func Replay(v Variant, seed int64, moves []Direction) ReplayResult {
	g := NewGame(v)
	g.Start(rand.New(rand.NewSource(seed)))
	return play(g, moves)
}

// ReplayFrom continues a saved session: snap is restored onto a session of
// v, then moves are played with spawns drawn from seed.
func ReplayFrom(v Variant, snap Snapshot, seed int64, moves []Direction) (ReplayResult, error) {
	g := NewGame(v)
	if err := g.Restore(snap, rand.New(rand.NewSource(seed))); err != nil {
		return ReplayResult{}, err
	}
	return play(g, moves), nil
}

func play(g *Game, moves []Direction) ReplayResult {
	res := ReplayResult{Initial: g.Board()}
	for i, d := range moves {
		turn, err := g.Move(d)
		if err != nil {
			res.Ignored = len(moves) - i
			break
		}
		res.Steps = append(res.Steps, ReplayStep{
			Turn:  turn,
			Score: g.Score(),
			Board: g.Board(),
		})
	}
	res.Final = g.Snapshot()
	return res
}

// ParseMoves parses a move list. It accepts a compact letter string such as
// "LLRUD", or names and letters separated by commas or whitespace
// ("left, up d").
func ParseMoves(s string) ([]Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var out []Direction
	for _, f := range fields {
		if d, err := ParseDirection(f); err == nil {
			out = append(out, d)
			continue
		}
		// Compact form: every rune is a direction initial.
		for _, r := range f {
			d, err := ParseDirection(string(r))
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}
	}
	return out, nil
}
