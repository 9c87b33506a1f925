package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List campaign levels",
		Args:  cobra.NoArgs,
		Run:   a.runLevels,
	}
}

func (a *app) runLevels(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	levels := a.cfg.CampaignLevels()

	if len(levels) == 0 {
		fmt.Fprintln(out, "No campaign levels configured.")
		return
	}

	fmt.Fprintf(out, "  %-5s  %-20s  %6s  %s\n", "Level", "Name", "Target", "Chance of 4")
	fmt.Fprintf(out, "  %-5s  %-20s  %6s  %s\n", "-----", "----", "------", "-----------")
	for _, l := range levels {
		fmt.Fprintf(out, "  %-5d  %-20s  %6d  %.0f%%\n", l.ID, l.Name, l.Target, l.Spawn4*100)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 't2048 play 2048_level<n>' to play a level.")
}
