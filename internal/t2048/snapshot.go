package t2048

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Snapshot captures a session for determinism testing, replay and saving.
// Cells are row-major, 0 meaning empty.
type Snapshot struct {
	Variant string `yaml:"variant"`
	Size    int    `yaml:"size"`
	Target  int    `yaml:"target"`
	Score   int    `yaml:"score"`
	Moves   int    `yaml:"moves"`
	MaxTile int    `yaml:"max_tile"`
	Status  Status `yaml:"status"`
	Cells   []int  `yaml:"cells,flow"`
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Variant: g.variant.ID,
		Size:    g.board.Size(),
		Target:  g.variant.Target,
		Score:   g.score,
		Moves:   g.moves,
		MaxTile: g.board.MaxTile(),
		Status:  g.status,
		Cells:   g.board.Flat(),
	}
}

// Restore replaces the session state with snap. The board is validated the
// same way as any externally supplied board; spawning continues from rng.
func (g *Game) Restore(snap Snapshot, rng Rand) error {
	if snap.Variant != g.variant.ID {
		return fmt.Errorf("t2048: snapshot is for variant %q, not %q", snap.Variant, g.variant.ID)
	}
	if snap.Size != g.variant.Size {
		return fmt.Errorf("%w: snapshot size %d, variant size %d", ErrInvalidSize, snap.Size, g.variant.Size)
	}
	board, err := BoardFromFlat(snap.Size, snap.Cells)
	if err != nil {
		return err
	}
	if snap.Score < 0 || snap.Moves < 0 {
		return fmt.Errorf("t2048: snapshot has negative score or move count")
	}

	status := StatusPlaying
	switch {
	case g.variant.Won(board):
		status = StatusWon
	case !HasAnyLegalMove(board):
		status = StatusLost
	}

	g.board = board
	g.score = snap.Score
	g.moves = snap.Moves
	g.status = status
	g.rng = rng
	g.hasLastSpawn = false
	return nil
}

// EncodeSnapshot serializes a snapshot as YAML.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("t2048: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a YAML snapshot. It checks shape only; Restore
// validates tile values.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("t2048: decode snapshot: %w", err)
	}
	if snap.Size*snap.Size != len(snap.Cells) {
		return Snapshot{}, fmt.Errorf("%w: %d cells for size %d", ErrInvalidSize, len(snap.Cells), snap.Size)
	}
	return snap, nil
}
