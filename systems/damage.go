package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TakeDamage costs the knight one life. It does nothing while the knight is
// invulnerable, already hurt or dying. It reports whether a life was lost.
func TakeDamage(e *ecs.ECS, knightEntry *donburi.Entry) bool {
	knight := components.Knight.Get(knightEntry)
	state := components.State.Get(knightEntry)
	if !knight.Alive || knight.Invulnerable() {
		return false
	}
	if state.CurrentState == cfg.TakingDamage || state.CurrentState == cfg.Dying {
		return false
	}

	knight.Lives--
	knight.IsDashing = false
	knight.DashTimer = 0
	PlaySFX(e, cfg.SoundHurt)

	if knight.Lives <= 0 {
		knight.Lives = 0
		enterKnightState(knightEntry, cfg.Dying, cfg.Knight.DeathDuration)

		tick := GetClock(e).Tick
		components.KnightDied.Publish(e.World, components.KnightDiedEvent{Tick: tick})
		return true
	}

	enterKnightState(knightEntry, cfg.TakingDamage, cfg.Knight.HitDuration)
	knight.InvulnTimer = cfg.Knight.InvulnDuration

	body := &components.Physics.Get(knightEntry).Body
	body.VX *= cfg.Knight.HitVelocityDamp
	body.TargetVX = 0

	log.Debug("knight hurt", "lives", knight.Lives)
	return true
}
