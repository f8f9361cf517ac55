package main

import (
	"fmt"
	"io"

	"github.com/automoto/knightfall/scenes"
	"github.com/spf13/cobra"
)

var (
	flagTicks  int
	flagScript string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a window",
	Long: `Run the simulation headless for a number of ticks and print the final
state of the knight and camera.

The script is a comma separated list of actions: left, right, jump, dash,
restart, pause and wait. Append *N to hold an action for N ticks. Ticks left
over after the script run with no input.

Examples:
  knightfall sim --ticks 300
  knightfall sim --ticks 600 --script "right*120,jump,right*40"`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Ticks to simulate (60 per second)")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Input script")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", flagTicks)
	}
	steps, err := scenes.ParseScript(flagScript)
	if err != nil {
		return err
	}
	grid, err := loadLevel()
	if err != nil {
		return err
	}

	scene := scenes.NewPlatformerScene(grid)
	scene.RunScript(steps, flagTicks)
	printSnapshot(cmd.OutOrStdout(), grid.Name, scene.Snapshot())
	return nil
}

func printSnapshot(w io.Writer, level string, s scenes.Snapshot) {
	fmt.Fprintf(w, "level:     %s\n", level)
	fmt.Fprintf(w, "tick:      %d\n", s.Tick)
	fmt.Fprintf(w, "knight:    x=%.2f y=%.2f vx=%.2f vy=%.2f grounded=%t\n", s.X, s.Y, s.VX, s.VY, s.Grounded)
	fmt.Fprintf(w, "state:     %s frame=%d facing_right=%t\n", s.State, s.Frame, s.FacingRight)
	fmt.Fprintf(w, "lives:     %d alive=%t\n", s.Lives, s.Alive)
	fmt.Fprintf(w, "abilities: double_jump=%t dash=%t\n", s.CanDoubleJump, s.CanDash)
	fmt.Fprintf(w, "camera:    x=%.2f y=%.2f\n", s.CameraX, s.CameraY)
	fmt.Fprintf(w, "enemies:   %d alive\n", s.Enemies)
	fmt.Fprintf(w, "complete:  %t\n", s.LevelComplete)
}
