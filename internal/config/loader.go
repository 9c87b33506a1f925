package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const fileName = "t2048.yaml"

// Load reads the configuration and applies environment overrides.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// Fields missing from a file keep their built-in values. A customPath that
// cannot be read or parsed is an error; the other locations are skipped.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := parse(customPath)
		if err != nil {
			return Default(), err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := parse(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(filepath.Join("configs", fileName)); err == nil {
		return cfg, nil
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg, nil
}

func parse(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// envOverrides lists the supported variables; unset ones stay nil.
type envOverrides struct {
	Size     *int     `env:"T2048_SIZE"`
	Target   *int     `env:"T2048_TARGET"`
	Spawn4   *float64 `env:"T2048_SPAWN4"`
	DBPath   *string  `env:"T2048_DB"`
	LogLevel *string  `env:"T2048_LOG_LEVEL"`
	Seed     *int64   `env:"T2048_SEED"`
}

// ApplyEnv overrides cfg with any T2048_* environment variables that are set.
func ApplyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}

	if o.Size != nil {
		cfg.Board.Size = *o.Size
	}
	if o.Target != nil {
		cfg.Board.Target = *o.Target
	}
	if o.Spawn4 != nil {
		cfg.Spawn.FourProbability = *o.Spawn4
	}
	if o.DBPath != nil {
		cfg.Storage.DBPath = *o.DBPath
	}
	if o.LogLevel != nil {
		cfg.Log.Level = *o.LogLevel
	}
	if o.Seed != nil {
		cfg.Seed = *o.Seed
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", filename)
}
