// Package t2048 implements the rules of the 2048 sliding-tile puzzle: the
// board engine, tile spawning, and a game session with classic, endless and
// campaign-level variants.
package t2048

import (
	"fmt"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeEndless  Mode = "endless"
	ModeCampaign Mode = "campaign"
)

// Level defines a campaign level with a target tile.
type Level struct {
	ID     int
	Name   string
	Target int     // Target tile value to reach
	Spawn4 float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// Levels defines the default campaign with increasing difficulty.
// Targets are realistic for a 4x4 grid (8192 is very hard but achievable).
// Spawn4 probability increases to make later levels harder.
var Levels = []Level{
	{ID: 1, Name: "Warm-up", Target: 128, Spawn4: 0.10},
	{ID: 2, Name: "Getting Started", Target: 256, Spawn4: 0.10},
	{ID: 3, Name: "Building Momentum", Target: 512, Spawn4: 0.10},
	{ID: 4, Name: "The Climb", Target: 1024, Spawn4: 0.10},
	{ID: 5, Name: "Classic 2048", Target: 2048, Spawn4: 0.10},
	{ID: 6, Name: "Beyond Limits", Target: 4096, Spawn4: 0.12},
	{ID: 7, Name: "Master Class", Target: 8192, Spawn4: 0.15},
	{ID: 8, Name: "Expert Challenge", Target: 8192, Spawn4: 0.18},
	{ID: 9, Name: "Grandmaster", Target: 8192, Spawn4: 0.20},
	{ID: 10, Name: "Ultimate Champion", Target: 8192, Spawn4: 0.25},
}

// Variant is a playable rule set: board size, winning target and spawn odds.
// A Target of 0 disables winning; only Lost ends the game.
type Variant struct {
	ID     string
	Title  string
	Mode   Mode
	Level  int // 1-based campaign level, 0 otherwise
	Size   int
	Target int
	Spawn4 float64
}

// Classic returns the standard variant with the given board size and target.
func Classic(size, target int, spawn4 float64) Variant {
	title := "2048"
	if size != BoardSize {
		title = fmt.Sprintf("2048 (%dx%d)", size, size)
	}
	if target != DefaultTarget {
		title = fmt.Sprintf("%s to %d", title, target)
	}
	return Variant{
		ID:     "2048",
		Title:  title,
		Mode:   ModeClassic,
		Size:   size,
		Target: target,
		Spawn4: spawn4,
	}
}

// Endless returns a variant without a winning tile.
func Endless(size int, spawn4 float64) Variant {
	return Variant{
		ID:     "2048_endless",
		Title:  "2048 (Endless)",
		Mode:   ModeEndless,
		Size:   size,
		Spawn4: spawn4,
	}
}

// LevelVariant returns the variant for one campaign level.
func LevelVariant(lvl Level, size int) Variant {
	return Variant{
		ID:     fmt.Sprintf("2048_level%d", lvl.ID),
		Title:  fmt.Sprintf("2048 Level %d: %s", lvl.ID, lvl.Name),
		Mode:   ModeCampaign,
		Level:  lvl.ID,
		Size:   size,
		Target: lvl.Target,
		Spawn4: lvl.Spawn4,
	}
}

// Variants returns classic, endless and one variant per level, in that order.
func Variants(size, target int, spawn4 float64, levels []Level) []Variant {
	out := []Variant{
		Classic(size, target, spawn4),
		Endless(size, spawn4),
	}
	for _, lvl := range levels {
		out = append(out, LevelVariant(lvl, size))
	}
	return out
}

// HasTarget reports whether reaching a tile wins. Endless variants have none.
func (v Variant) HasTarget() bool {
	return v.Target > 0
}

// Won reports whether b wins under v.
func (v Variant) Won(b Board) bool {
	return v.HasTarget() && HasWinningTile(b, v.Target)
}

// DefaultVariant is the classic 4x4 game to 2048.
func DefaultVariant() Variant {
	return Classic(BoardSize, DefaultTarget, DefaultSpawn4Prob)
}
