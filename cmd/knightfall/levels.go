package main

import (
	"fmt"

	"github.com/automoto/knightfall/levels"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the built-in levels",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	names, err := levels.Names()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available levels:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-12s  %s\n", "Name", "Size")
	fmt.Fprintf(out, "  %-12s  %s\n", "----", "----")
	for _, name := range names {
		grid, err := levels.Load(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-12s  %dx%d\n", name, grid.Width, grid.Height)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'knightfall play --level <name>' to play one.")
	return nil
}
