package systems

import (
	"github.com/automoto/knightfall/components"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on request. It runs even while paused.
func UpdatePause(e *ecs.ECS) {
	intent := GetOrCreateIntent(e)
	if !intent.PauseRequested {
		return
	}
	intent.PauseRequested = false

	pause := GetOrCreatePause(e)
	pause.IsPaused = !pause.IsPaused
	log.Debug("pause toggled", "paused", pause.IsPaused)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or once the
// level is complete.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if GetOrCreateLevelComplete(e).IsComplete {
			return
		}
		system(e)
	})
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
