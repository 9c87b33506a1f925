package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

func (a *app) newReplayCmd() *cobra.Command {
	var (
		moves    string
		variant  string
		from     string
		snapshot bool
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a move list without the TUI",
		Long: `Play a recorded move list on a fresh board and print every step.
The same seed, variant, size and moves always give the same result.

Moves are direction names or initials (u, d, l, r), either packed
("LLURD") or separated by commas or spaces ("left, up, d").

With --from, play continues from a snapshot written by --snapshot
instead of a fresh board; the variant defaults to the snapshot's.

Examples:
  t2048 replay --seed 7 --moves LLURD
  t2048 replay --seed 7 --moves "left up right" --size 3
  t2048 replay --seed 1 --moves LURDLURD --variant 2048_endless --snapshot
  t2048 replay --seed 2 --moves UU --from saved.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var snap *t2048.Snapshot
			if from != "" {
				s, err := readSnapshot(from)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("variant") {
					variant = s.Variant
				}
				snap = &s
			}
			return a.runReplay(cmd.OutOrStdout(), variant, moves, snap, snapshot)
		},
	}

	cmd.Flags().StringVar(&moves, "moves", "", "Moves to play (required)")
	cmd.Flags().StringVar(&variant, "variant", "2048", "Variant ID")
	cmd.Flags().StringVar(&from, "from", "", "Start from a YAML snapshot file")
	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "Print the final snapshot as YAML")
	cmd.MarkFlagRequired("moves")
	return cmd
}

func (a *app) runReplay(out io.Writer, variantID, moveList string, from *t2048.Snapshot, snapshot bool) error {
	v, err := a.variant(variantID)
	if err != nil {
		return err
	}
	moves, err := t2048.ParseMoves(moveList)
	if err != nil {
		a.logger.Error("replay rejected", "moves", moveList, "err", err)
		return err
	}

	var res t2048.ReplayResult
	if from != nil {
		res, err = t2048.ReplayFrom(v, *from, a.cfg.Seed, moves)
		if err != nil {
			return err
		}
	} else {
		res = t2048.Replay(v, a.cfg.Seed, moves)
	}

	fmt.Fprintf(out, "%s, seed %d\n\n", v.Title, a.cfg.Seed)
	fmt.Fprint(out, res.Initial)
	for i, step := range res.Steps {
		fmt.Fprintf(out, "\n%d. %s", i+1, describeTurn(step))
		fmt.Fprintln(out)
		fmt.Fprint(out, step.Board)
	}

	fmt.Fprintf(out, "\nscore %d, moves %d, max tile %d, %s\n",
		res.Final.Score, res.Final.Moves, res.Final.MaxTile, res.Final.Status)
	if res.Ignored > 0 {
		a.logger.Warn("moves after the end of the game were ignored", "count", res.Ignored)
	}

	if snapshot {
		data, err := t2048.EncodeSnapshot(res.Final)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "---")
		out.Write(data)
	}
	return nil
}

func readSnapshot(path string) (t2048.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return t2048.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	return t2048.DecodeSnapshot(data)
}

// describeTurn renders one step as "left +8 (score 12), spawned 2 at (0,3)".
func describeTurn(step t2048.ReplayStep) string {
	turn := step.Turn
	if !turn.Moved {
		return fmt.Sprintf("%s: no change", turn.Direction)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s +%d (score %d)", turn.Direction, turn.ScoreGained, step.Score)
	if turn.Spawned {
		at := turn.SpawnedAt
		fmt.Fprintf(&b, ", spawned %d at (%d,%d)", step.Board.At(at.Row, at.Col), at.Row, at.Col)
	}
	if turn.Status.Terminal() {
		fmt.Fprintf(&b, ", %s", turn.Status)
	}
	return b.String()
}
