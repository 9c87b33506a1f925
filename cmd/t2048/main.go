// t2048 plays 2048 in the terminal.
//
// Usage:
//
//	t2048 play [variant]     - Play; with no variant, pick one from the menu
//	t2048 list               - List playable variants
//	t2048 levels             - List campaign levels
//	t2048 scores [variant]   - Show high scores
//	t2048 replay --moves ... - Replay a move list headlessly
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--db <path>         - Scores database (default: ~/.t2048/scores.db)
//	--seed <value>      - RNG seed for reproducible games
//	--size <n>          - Board size
//	--target <tile>     - Winning tile for the classic variant
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagSize     int
	flagTarget   int
	flagLogLevel string

	cfg      config.Config
	logger   *log.Logger
	registry *registry.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "t2048",
		Short: "2048 in your terminal",
		Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board in one of four directions; equal tiles that collide merge
into their sum. Reach the target tile to win. The game is lost when the
board is full and nothing can merge.

Examples:
  t2048 play
  t2048 play 2048_endless --size 5
  t2048 scores 2048
  t2048 replay --seed 7 --moves LLURD`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&a.flagDBPath, "db", "", "Path to scores database (default ~/.t2048/scores.db)")
	pf.Int64Var(&a.flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&a.flagSize, "size", 0, "Board size (default from config: 4)")
	pf.IntVar(&a.flagTarget, "target", 0, "Winning tile for the classic variant (default from config: 2048)")
	pf.StringVar(&a.flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		a.newPlayCmd(),
		a.newListCmd(),
		a.newLevelsCmd(),
		a.newScoresCmd(),
		a.newReplayCmd(),
	)
	return rootCmd
}

// setup loads config, applies flags over it and registers the variants.
// Precedence: flags > environment > config file > built-in defaults.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = a.flagDBPath
	}
	if flags.Changed("seed") {
		cfg.Seed = a.flagSeed
	}
	if flags.Changed("size") {
		cfg.Board.Size = a.flagSize
	}
	if flags.Changed("target") {
		cfg.Board.Target = a.flagTarget
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix:          "t2048",
		ReportTimestamp: true,
		Level:           level,
	})
	a.logger.Debug("config loaded", "source", cfg.Source, "size", cfg.Board.Size, "target", cfg.Board.Target)

	a.cfg = cfg
	a.registry = registry.New()
	t2048.RegisterVariants(a.registry, cfg.Variants())
	return nil
}

// variant looks up a registered variant by ID.
func (a *app) variant(id string) (t2048.Variant, error) {
	if a.registry.Exists(id) {
		for _, v := range a.cfg.Variants() {
			if v.ID == id {
				return v, nil
			}
		}
	}
	return t2048.Variant{}, fmt.Errorf("unknown variant %q (run 't2048 list' to see variants)", id)
}
