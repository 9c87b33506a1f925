package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List playable variants",
		Long:  `Shows every variant: classic, endless and one per campaign level.`,
		Args:  cobra.NoArgs,
		Run:   a.runList,
	}
}

func (a *app) runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := a.registry.List()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 't2048 play <id>' to play a variant.")
}
