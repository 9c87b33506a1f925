package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Session wires the menu, game and scoreboard screens together.
type Session struct {
	Registry *registry.Registry
	Variants []t2048.Variant
	Store    ScoreStore // may be nil
	Logger   *log.Logger
	Config   core.RuntimeConfig
}

// Run plays variantID, or opens the menu when it is empty, and keeps
// cycling between screens until the player quits.
func (s Session) Run(variantID string) error {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := s.Config

	for {
		if variantID == "" {
			res, err := RunMenu(s.Variants, cfg)
			if err != nil {
				return fmt.Errorf("tui: menu: %w", err)
			}
			cfg = res.Config

			switch {
			case res.Quit:
				return nil
			case res.WantsScoreboard:
				back, err := RunScoreboard(s.Store, s.Registry.List(), "", cfg.ScreenW, cfg.ScreenH)
				if err != nil {
					return fmt.Errorf("tui: scoreboard: %w", err)
				}
				if !back {
					return nil
				}
				continue
			}
			variantID = res.VariantID
		}

		game, err := s.Registry.Create(variantID)
		if err != nil {
			return err
		}
		logger.Info("starting game", "variant", variantID)

		back, err := Run(game, s.Store, logger, cfg)
		if err != nil {
			return fmt.Errorf("tui: game: %w", err)
		}
		if !back {
			return nil
		}

		// A fixed seed applies to the first game only.
		cfg.Seed = 0
		variantID = ""
	}
}
