package systems

import (
	"github.com/automoto/knightfall/components"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// SubscribeEvents wires the gameplay events to logging and the HUD.
func SubscribeEvents(e *ecs.ECS) {
	components.LevelCompleted.Subscribe(e.World, func(w donburi.World, ev components.LevelCompletedEvent) {
		log.Info("level complete", "level", ev.Level, "tick", ev.Tick)
	})
	components.AbilityAcquired.Subscribe(e.World, func(w donburi.World, ev components.AbilityAcquiredEvent) {
		log.Info("ability acquired", "ability", ev.Ability, "col", ev.Cell.Col, "row", ev.Cell.Row)
		if hint, ok := abilityHints[ev.Ability]; ok {
			ShowHint(e, hint)
		}
	})
	components.CheckpointReached.Subscribe(e.World, func(w donburi.World, ev components.CheckpointReachedEvent) {
		log.Debug("checkpoint reached", "x", ev.X, "y", ev.Y)
	})
	components.EnemyStomped.Subscribe(e.World, func(w donburi.World, ev components.EnemyStompedEvent) {
		log.Debug("enemy stomped", "x", ev.X, "y", ev.Y)
	})
	components.KnightDied.Subscribe(e.World, func(w donburi.World, ev components.KnightDiedEvent) {
		log.Info("knight died", "tick", ev.Tick)
	})
}

// ProcessEvents delivers the events published during the tick.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
