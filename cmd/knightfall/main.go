// knightfall is a tile platformer: a knight runs, jumps and dashes through a
// level of ground, traps and patrolling enemies to reach the goal.
//
// Usage:
//
//	knightfall play             - Open the game window
//	knightfall sim              - Run the simulation headless and print the result
//	knightfall levels           - List the built-in levels
//
// Global flags:
//
//	--level <name>      - Level to load (default: level1)
//	--tuning <path>     - Tuning YAML overriding the defaults
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/levels"
	"github.com/automoto/knightfall/logging"
	"github.com/automoto/knightfall/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagLevel    string
	flagTuning   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "knightfall",
	Short: "Knightfall - a tile platformer",
	Long: `Knightfall is a 2D tile platformer. Guide the knight past enemies and
traps, pick up the double jump and dash, and reach the goal.

Available commands:
  play     - Open the game window
  sim      - Run the simulation without a window
  levels   - List the built-in levels

Examples:
  knightfall play
  knightfall play --level training
  knightfall sim --ticks 600 --script "right*120,jump,right*60"
  knightfall levels`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", levels.Level1Name, "Level to load")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to a tuning YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if _, err := logging.Setup(flagLogLevel); err != nil {
		return err
	}

	source, err := config.LoadTuning(flagTuning)
	if err != nil {
		return err
	}
	log.Debug("tuning loaded", "source", source)
	return nil
}

func loadLevel() (*leveldata.Grid, error) {
	grid, err := levels.Load(flagLevel)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'knightfall levels' to list them)", err)
	}
	return grid, nil
}
