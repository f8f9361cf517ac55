package systems

import (
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateIntent returns the input intent the knight reads each tick.
func GetOrCreateIntent(e *ecs.ECS) *components.IntentData {
	entry, ok := components.Intent.First(e.World)
	if !ok {
		entry = factory.CreateClock(e)
	}
	return components.Intent.Get(entry)
}

// SetTargetVelocity sets the horizontal speed the knight accelerates toward.
func SetTargetVelocity(e *ecs.ECS, vx float64) {
	GetOrCreateIntent(e).TargetVX = vx
}

// RequestJump asks for a jump on the next tick.
func RequestJump(e *ecs.ECS) {
	GetOrCreateIntent(e).JumpRequested = true
}

// RequestDash asks for a dash on the next tick.
func RequestDash(e *ecs.ECS) {
	GetOrCreateIntent(e).DashRequested = true
}

// RequestRestart asks for the level to be restarted on the next tick.
func RequestRestart(e *ecs.ECS) {
	GetOrCreateIntent(e).RestartRequested = true
}

// RequestPause toggles pause on the next tick.
func RequestPause(e *ecs.ECS) {
	GetOrCreateIntent(e).PauseRequested = true
}
