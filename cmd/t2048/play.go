package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func (a *app) newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play [variant]",
		Short: "Play 2048",
		Long: `Start playing. Without a variant, a menu offers classic, endless and
the campaign levels.

Controls:
  Arrows/WASD/HJKL - Slide
  R                - New game
  B/Esc            - Back to menu
  ?                - More help
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play 2048
  t2048 play 2048_level3
  t2048 play 2048 --size 5 --target 4096
  t2048 play --config ./my-2048.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runPlay,
	}
}

func (a *app) runPlay(cmd *cobra.Command, args []string) error {
	variantID := ""
	if len(args) == 1 {
		variantID = args[0]
		if _, err := a.variant(variantID); err != nil {
			return err
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	session := tui.Session{
		Registry: a.registry,
		Variants: a.cfg.Variants(),
		Logger:   a.logger,
		Config: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    a.cfg.Seed,
		},
	}

	// The game still works without storage.
	store, err := storage.Open(a.cfg.Storage.DBPath, a.logger)
	if err != nil {
		a.logger.Warn("scores database unavailable", "err", err)
	} else {
		defer store.Close()
		session.Store = store
	}

	return session.Run(variantID)
}
