package systems

import (
	"math"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates runs the knight state machine and advances its animation.
func UpdateStates(e *ecs.ECS) {
	step := dt(e)
	tags.Knight.Each(e.World, func(entry *donburi.Entry) {
		updateKnightState(entry, step)
	})
}

func updateKnightState(entry *donburi.Entry, step float64) {
	knight := components.Knight.Get(entry)
	if !knight.Alive {
		// The death pose holds its last frame.
		return
	}

	state := components.State.Get(entry)
	body := &components.Physics.Get(entry).Body

	changed := false
	switch state.CurrentState {
	case cfg.Dying:
		state.StateTimer -= step
		if state.StateTimer <= 0 {
			state.StateTimer = 0
			knight.Alive = false
		}
	case cfg.TakingDamage:
		state.StateTimer -= step
		if state.StateTimer <= 0 {
			state.StateTimer = 0
			changed = enterKnightState(entry, movementState(body), 0)
		}
	default:
		changed = enterKnightState(entry, movementState(body), 0)
	}

	if !changed {
		components.Animation.Get(entry).Advance(step)
	}
}

// movementState picks the free movement state for a body.
func movementState(body *gamemath.Body) cfg.StateID {
	switch {
	case !body.Grounded:
		return cfg.Jumping
	case math.Abs(body.VX) > cfg.Knight.RunThreshold:
		return cfg.Running
	default:
		return cfg.Idle
	}
}

// enterKnightState switches state and restarts the matching animation.
func enterKnightState(entry *donburi.Entry, next cfg.StateID, duration float64) bool {
	state := components.State.Get(entry)
	if !state.Enter(next, duration) {
		return false
	}
	components.Animation.Get(entry).SetClip(cfg.Animation.Knight[next])
	return true
}
