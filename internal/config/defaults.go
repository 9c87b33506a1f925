package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	levels := make([]LevelConfig, 0, len(t2048.Levels))
	for _, l := range t2048.Levels {
		levels = append(levels, LevelConfig{ID: l.ID, Name: l.Name, Target: l.Target, Spawn4: l.Spawn4})
	}
	return Config{
		Board: BoardConfig{
			Size:   t2048.BoardSize,
			Target: t2048.DefaultTarget,
		},
		Spawn: SpawnConfig{
			FourProbability: t2048.DefaultSpawn4Prob,
		},
		Log:    LogConfig{Level: "info"},
		Levels: levels,
		Source: "built-in",
	}
}
