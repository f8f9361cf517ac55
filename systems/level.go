package systems

import (
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/automoto/knightfall/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getLevel(e *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}

func getRoster(e *ecs.ECS) (*components.RosterData, bool) {
	entry, ok := components.Roster.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Roster.Get(entry), true
}

// GetKnight returns the knight entry.
func GetKnight(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Knight.First(e.World)
}

// UpdateRestart restarts the level on request. It runs regardless of pause
// and level completion.
func UpdateRestart(e *ecs.ECS) {
	intent := GetOrCreateIntent(e)
	if !intent.RestartRequested {
		return
	}
	RestartLevel(e)
}

// RestartLevel resets the tile map, knight, enemies, camera and level flags to
// their state at load.
func RestartLevel(e *ecs.ECS) {
	level, ok := getLevel(e)
	if !ok {
		return
	}
	level.Map.Reset()

	if roster, ok := getRoster(e); ok {
		for _, enemy := range roster.Enemies {
			removeEnemy(e, enemy)
		}
		roster.Enemies = roster.Enemies[:0]
		roster.CleanupTimer = 0
	}
	factory.SpawnEnemies(e, level)

	if knight, ok := GetKnight(e); ok {
		factory.ResetKnight(knight, level.SpawnX, level.SpawnY)
	}
	if camera, ok := components.Camera.First(e.World); ok {
		factory.ResetCamera(camera, level.SpawnX, level.SpawnY,
			float64(level.Map.PixelWidth()), float64(level.Map.PixelHeight()))
	}

	*GetOrCreateLevelComplete(e) = components.LevelCompleteData{}
	GetOrCreatePause(e).IsPaused = false
	*GetOrCreateIntent(e) = components.IntentData{}
	*GetOrCreateHUD(e) = components.HUDData{}

	log.Info("level restarted", "level", level.Name)
}

// removeEnemy deletes an enemy entity and its broadphase object.
func removeEnemy(e *ecs.ECS, enemy donburi.Entity) {
	if !e.World.Valid(enemy) {
		return
	}
	entry := e.World.Entry(enemy)
	if entry.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(entry).Object)
		}
	}
	e.World.Remove(enemy)
}
