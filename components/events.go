package components

import (
	"github.com/automoto/knightfall/shared/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type LevelCompletedEvent struct {
	Level string
	Tick  uint64
}

type AbilityAcquiredEvent struct {
	Ability tilemap.TileType
	Cell    tilemap.Cell
}

type CheckpointReachedEvent struct {
	X, Y float64
}

type EnemyStompedEvent struct {
	Enemy donburi.Entity
	X, Y  float64
}

type KnightDiedEvent struct {
	Tick uint64
}

var (
	LevelCompleted    = events.NewEventType[LevelCompletedEvent]()
	AbilityAcquired   = events.NewEventType[AbilityAcquiredEvent]()
	CheckpointReached = events.NewEventType[CheckpointReachedEvent]()
	EnemyStomped      = events.NewEventType[EnemyStompedEvent]()
	KnightDied        = events.NewEventType[KnightDiedEvent]()
)
