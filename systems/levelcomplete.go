package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/yohamta/donburi/ecs"
)

// CompleteLevel latches the level complete flag. It reports false when the
// level was already complete.
func CompleteLevel(e *ecs.ECS) bool {
	levelComplete := GetOrCreateLevelComplete(e)
	if levelComplete.IsComplete {
		return false
	}

	clock := GetClock(e)
	levelComplete.IsComplete = true
	levelComplete.Tick = clock.Tick
	PlaySFX(e, cfg.SoundGoal)

	name := ""
	if level, ok := getLevel(e); ok {
		name = level.Name
	}
	components.LevelCompleted.Publish(e.World, components.LevelCompletedEvent{
		Level: name,
		Tick:  clock.Tick,
	})
	return true
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed.
func GetOrCreateLevelComplete(ecs *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.LevelComplete))
		components.LevelComplete.SetValue(ent, components.LevelCompleteData{})
	}

	ent, _ := components.LevelComplete.First(ecs.World)
	return components.LevelComplete.Get(ent)
}
