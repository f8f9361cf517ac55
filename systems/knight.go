package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKnight applies intent to the knight and moves it through the level.
func UpdateKnight(e *ecs.ECS) {
	knightEntry, ok := GetKnight(e)
	if !ok {
		return
	}
	level, ok := getLevel(e)
	if !ok {
		return
	}

	intent := GetOrCreateIntent(e)
	jump, dash := intent.JumpRequested, intent.DashRequested
	intent.JumpRequested = false
	intent.DashRequested = false

	knight := components.Knight.Get(knightEntry)
	if !knight.Alive {
		return
	}

	step := dt(e)
	physics := components.Physics.Get(knightEntry)
	state := components.State.Get(knightEntry)
	body := &physics.Body

	updateKnightTimers(knight, step)

	if state.CurrentState.Locked() {
		body.TargetVX = 0
	} else {
		body.TargetVX = intent.TargetVX
		if jump {
			Jump(e, knightEntry)
		}
		if dash {
			Dash(knightEntry)
		}
	}

	params := physics.Params
	if knight.IsDashing {
		body.VX = knight.DashDirection * cfg.Knight.DashSpeed
		body.TargetVX = body.VX
		params.MaxSpeed = cfg.Knight.DashSpeed
	}

	physics.Last = gamemath.Integrate(body, params, level.KnightResolver)
	if physics.Last.Landed {
		knight.DoubleJumpUsed = false
	}

	if knight.IsDashing {
		knight.DashTimer -= step
		switch {
		case physics.Last.Landed:
			// Landing ends a dash without a cooldown.
			endDash(knight, body, 0)
		case knight.DashTimer <= 0:
			endDash(knight, body, cfg.Knight.DashCooldown)
		}
	}

	updateFacing(knight, body.VX)
	factory.SyncObject(knightEntry)
}

func updateKnightTimers(knight *components.KnightData, step float64) {
	if knight.InvulnTimer > 0 {
		knight.InvulnTimer = max(0, knight.InvulnTimer-step)
	}
	if knight.DashCooldown > 0 {
		knight.DashCooldown = max(0, knight.DashCooldown-step)
	}
	knight.FlickerCounter++
}

func updateFacing(knight *components.KnightData, vx float64) {
	if vx > cfg.Knight.FacingThreshold {
		knight.FacingRight = true
	} else if vx < -cfg.Knight.FacingThreshold {
		knight.FacingRight = false
	}
}

// Jump starts a ground jump or spends the double jump. It reports whether the
// knight jumped.
func Jump(e *ecs.ECS, knightEntry *donburi.Entry) bool {
	knight := components.Knight.Get(knightEntry)
	state := components.State.Get(knightEntry)
	if !knight.Alive || state.CurrentState.Locked() {
		return false
	}

	body := &components.Physics.Get(knightEntry).Body
	switch {
	case body.Grounded:
		body.VY = cfg.Knight.JumpForce
		body.Grounded = false
		knight.DoubleJumpUsed = false
	case knight.CanDoubleJump && !knight.DoubleJumpUsed:
		body.VY = cfg.Knight.JumpForce
		knight.DoubleJumpUsed = true
	default:
		return false
	}

	PlaySFX(e, cfg.SoundJump)
	return true
}

// Dash starts a dash in the facing direction. It reports whether the dash
// started.
func Dash(knightEntry *donburi.Entry) bool {
	knight := components.Knight.Get(knightEntry)
	state := components.State.Get(knightEntry)
	if !knight.Alive || state.CurrentState.Locked() {
		return false
	}
	if !knight.CanDash || knight.IsDashing || knight.DashCooldown > 0 {
		return false
	}

	knight.IsDashing = true
	knight.DashTimer = cfg.Knight.DashDuration
	knight.DashDirection = knight.Facing()

	body := &components.Physics.Get(knightEntry).Body
	body.VX = knight.DashDirection * cfg.Knight.DashSpeed
	body.TargetVX = body.VX
	return true
}

func endDash(knight *components.KnightData, body *gamemath.Body, cooldown float64) {
	knight.IsDashing = false
	knight.DashTimer = 0
	knight.DashCooldown = cooldown
	body.VX = gamemath.ClampSpeed(body.VX, cfg.Knight.MaxSpeed)
}
