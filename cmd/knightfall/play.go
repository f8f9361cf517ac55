package main

import (
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window on the selected level.

Controls:
  Left/Right   - Move
  Space/Up     - Jump (again in the air once double jump is unlocked)
  D/Shift      - Dash, once unlocked
  P/Esc        - Pause
  R            - Restart the level`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// Game adapts a scene to ebiten.Game.
type Game struct {
	scene *scenes.PlatformerScene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	grid, err := loadLevel()
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle("Knightfall")
	ebiten.SetTPS(config.C.TPS)

	return ebiten.RunGame(&Game{scene: scenes.NewPlatformerScene(grid)})
}
