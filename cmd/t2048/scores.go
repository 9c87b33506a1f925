package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func (a *app) newScoresCmd() *cobra.Command {
	var clearScores, all bool

	cmd := &cobra.Command{
		Use:   "scores [variant]",
		Short: "Show high scores",
		Long: `Display the top 10 scores for a variant, or every recorded game with
--all. Without a variant, opens the interactive scoreboard.

Examples:
  t2048 scores
  t2048 scores 2048
  t2048 scores 2048_endless --all
  t2048 scores 2048_level2 --clear`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScores(cmd, args, clearScores, all)
		},
	}
	cmd.Flags().BoolVar(&clearScores, "clear", false, "Delete all scores for the variant")
	cmd.Flags().BoolVar(&all, "all", false, "List every recorded game, not just the top 10")
	return cmd
}

func (a *app) runScores(cmd *cobra.Command, args []string, clearScores, all bool) error {
	store, err := storage.Open(a.cfg.Storage.DBPath, a.logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if clearScores || all {
			return errors.New("--clear and --all need a variant")
		}
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, a.registry.List(), "", width, height)
		return err
	}

	gameID := args[0]
	if _, err := a.variant(gameID); err != nil {
		return err
	}

	if clearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared scores for %s.\n", a.registry.Title(gameID))
		return nil
	}
	return printScores(cmd, store, gameID, a.registry.Title(gameID), all)
}

func printScores(cmd *cobra.Command, store *storage.Store, gameID, title string, all bool) error {
	out := cmd.OutOrStdout()

	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 't2048 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Tile", "Moves", "Result", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "----", "-----", "------", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-6d  %-7s  %s\n",
			i+1, e.Score, e.MaxTile, e.Moves, e.Status, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Best tile: %d  Games: %d  Wins: %d\n",
		stats.HighScore, stats.BestTile, stats.GamesCount, stats.Wins)
	return nil
}
