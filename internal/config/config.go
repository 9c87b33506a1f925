// Package config loads 2048 settings from YAML files and environment
// variables.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Config is the full application configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Seed    int64         `yaml:"seed"` // 0 seeds from the clock
	Levels  []LevelConfig `yaml:"levels"`

	// Source names where the file layer came from; set by Load.
	Source string `yaml:"-"`
}

// BoardConfig sets the grid and the winning tile.
type BoardConfig struct {
	Size   int `yaml:"size"`
	Target int `yaml:"target"`
}

// SpawnConfig sets the tile spawn odds.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"`
}

// StorageConfig locates the score database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig sets the log level (debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level"`
}

// LevelConfig is one campaign level.
type LevelConfig struct {
	ID     int     `yaml:"id"`
	Name   string  `yaml:"name"`
	Target int     `yaml:"target"`
	Spawn4 float64 `yaml:"spawn4"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks the board, spawn and level settings.
func (c Config) Validate() error {
	if c.Board.Size < 2 {
		return fmt.Errorf("%w: board.size %d, must be at least 2", ErrInvalid, c.Board.Size)
	}
	if !isTarget(c.Board.Target) {
		return fmt.Errorf("%w: board.target %d, must be a power of two >= 4", ErrInvalid, c.Board.Target)
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("%w: spawn.four_probability %v, must be within [0,1]", ErrInvalid, c.Spawn.FourProbability)
	}

	seen := make(map[int]bool, len(c.Levels))
	for i, l := range c.Levels {
		switch {
		case l.ID <= 0:
			return fmt.Errorf("%w: levels[%d].id %d, must be positive", ErrInvalid, i, l.ID)
		case seen[l.ID]:
			return fmt.Errorf("%w: levels[%d].id %d is duplicated", ErrInvalid, i, l.ID)
		case !isTarget(l.Target):
			return fmt.Errorf("%w: levels[%d].target %d, must be a power of two >= 4", ErrInvalid, i, l.Target)
		case l.Spawn4 < 0 || l.Spawn4 > 1:
			return fmt.Errorf("%w: levels[%d].spawn4 %v, must be within [0,1]", ErrInvalid, i, l.Spawn4)
		}
		seen[l.ID] = true
	}
	return nil
}

func isTarget(v int) bool {
	return v >= 4 && v&(v-1) == 0
}

// CampaignLevels converts the configured levels for the game package.
func (c Config) CampaignLevels() []t2048.Level {
	out := make([]t2048.Level, 0, len(c.Levels))
	for _, l := range c.Levels {
		out = append(out, t2048.Level{ID: l.ID, Name: l.Name, Target: l.Target, Spawn4: l.Spawn4})
	}
	return out
}

// Variants returns every playable variant described by c.
func (c Config) Variants() []t2048.Variant {
	return t2048.Variants(c.Board.Size, c.Board.Target, c.Spawn.FourProbability, c.CampaignLevels())
}
