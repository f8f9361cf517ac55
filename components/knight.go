package components

import (
	"github.com/automoto/knightfall/config"
	"github.com/yohamta/donburi"
)

type KnightData struct {
	Lives       int
	Alive       bool
	InvulnTimer float64 // seconds of invulnerability left
	FacingRight bool

	// Abilities
	CanDoubleJump  bool
	DoubleJumpUsed bool
	CanDash        bool

	// Dash
	IsDashing     bool
	DashTimer     float64
	DashCooldown  float64
	DashDirection float64

	// Respawn point, moved by checkpoints
	CheckpointX  float64
	CheckpointY  float64
	OnCheckpoint bool // standing on a checkpoint tile last tick

	FlickerCounter int
}

// Invulnerable reports whether damage is currently ignored.
func (k *KnightData) Invulnerable() bool {
	return k.InvulnTimer > 0
}

// Facing returns the facing as a direction sign.
func (k *KnightData) Facing() float64 {
	if k.FacingRight {
		return config.DirectionRight
	}
	return config.DirectionLeft
}

// ShouldRender implements the invulnerability flicker. The hit and death
// animations are always drawn.
func (k *KnightData) ShouldRender(state config.StateID) bool {
	if !k.Invulnerable() || state == config.TakingDamage || state == config.Dying {
		return true
	}
	ticks := config.Knight.FlickerTicks
	if ticks <= 0 {
		return true
	}
	return (k.FlickerCounter/ticks)%2 == 0
}

var Knight = donburi.NewComponentType[KnightData]()
