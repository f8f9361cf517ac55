package systems

import (
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock counts simulated ticks. It runs first so every later system in
// the tick sees the same tick number.
func UpdateClock(e *ecs.ECS) {
	clock := GetClock(e)
	clock.Tick++
	clock.Elapsed += clock.DT
}

// GetClock returns the singleton clock, creating it if needed.
func GetClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = factory.CreateClock(e)
	}
	return components.Clock.Get(entry)
}

func dt(e *ecs.ECS) float64 {
	return GetClock(e).DT
}
