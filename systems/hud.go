package systems

import (
	"fmt"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

const startHint = "Arrow keys to move, Space to jump"

// abilityHints is shown when an ability is picked up.
var abilityHints = map[tilemap.TileType]string{
	tilemap.AbilityDoubleJump: "Double jump acquired",
	tilemap.AbilityDash:       "Dash acquired, press D to dash",
}

// UpdateHUD counts down the on-screen hint.
func UpdateHUD(e *ecs.ECS) {
	hud := GetOrCreateHUD(e)
	if hud.HintTimer <= 0 {
		return
	}
	hud.HintTimer -= dt(e)
	if hud.HintTimer <= 0 {
		hud.HintTimer = 0
		hud.Hint = ""
	}
}

// ShowHint puts text on screen for the configured hint duration.
func ShowHint(e *ecs.ECS, text string) {
	hud := GetOrCreateHUD(e)
	hud.Hint = text
	hud.HintTimer = cfg.HUD.HintDuration
}

// ShowStartHint shows the controls reminder.
func ShowStartHint(e *ecs.ECS) {
	ShowHint(e, startHint)
}

// GetOrCreateHUD returns the singleton HUD component, creating if needed.
func GetOrCreateHUD(e *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.HUD))
	}
	return components.HUD.Get(entry)
}

// HUDLines returns the overlay text for the current state.
func HUDLines(e *ecs.ECS) []string {
	var lines []string

	if knightEntry, ok := GetKnight(e); ok {
		knight := components.Knight.Get(knightEntry)
		state := components.State.Get(knightEntry)
		lines = append(lines, fmt.Sprintf("Lives: %d", knight.Lives))
		if !knight.Alive {
			lines = append(lines, "Game over - press R to restart")
		} else if state.CurrentState == cfg.Dying {
			lines = append(lines, "...")
		}
	}

	if GetOrCreateLevelComplete(e).IsComplete {
		lines = append(lines, "You have reached the goal! Press R to play again")
	}
	if GetOrCreatePause(e).IsPaused {
		lines = append(lines, "Paused - P to resume")
	}
	if hud := GetOrCreateHUD(e); hud.Hint != "" {
		lines = append(lines, hud.Hint)
	}
	return lines
}

// DrawHUD renders the overlay text in the top left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	for i, line := range HUDLines(e) {
		ebitenutil.DebugPrintAt(screen, line, 4, 4+i*12)
	}
}
