package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves the knight against the enemies once per tick. Only
// the first overlapping enemy in roster order counts: it is stomped when the
// knight's feet are near its top, otherwise the knight is hurt.
func UpdateCombat(e *ecs.ECS) {
	knightEntry, ok := GetKnight(e)
	if !ok {
		return
	}
	knight := components.Knight.Get(knightEntry)
	state := components.State.Get(knightEntry)
	if !knight.Alive || knight.Invulnerable() || state.CurrentState == cfg.Dying {
		return
	}
	roster, ok := getRoster(e)
	if !ok {
		return
	}

	candidates := broadphaseEnemies(knightEntry)
	if len(candidates) == 0 {
		return
	}

	knightBody := &components.Physics.Get(knightEntry).Body
	for _, enemy := range roster.Enemies {
		if !candidates[enemy] {
			continue
		}
		enemyEntry := e.World.Entry(enemy)
		if components.Enemy.Get(enemyEntry).State != cfg.EnemyAlive {
			continue
		}
		enemyBody := &components.Physics.Get(enemyEntry).Body
		if !knightBody.Overlaps(enemyBody) {
			continue
		}

		if gamemath.IsStomp(knightBody.Bottom(), enemyBody.Y, cfg.Enemy.StompAbove, cfg.Enemy.StompBelow) {
			stomp(e, knightBody, enemyEntry)
		} else {
			TakeDamage(e, knightEntry)
		}
		return
	}
}

// broadphaseEnemies returns the enemies sharing a space cell with the knight.
func broadphaseEnemies(knightEntry *donburi.Entry) map[donburi.Entity]bool {
	if !knightEntry.HasComponent(components.Object) {
		return nil
	}
	obj := components.Object.Get(knightEntry)
	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}

	found := make(map[donburi.Entity]bool, len(check.Objects))
	for _, o := range check.Objects {
		if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
			found[entry.Entity()] = true
		}
	}
	return found
}

func stomp(e *ecs.ECS, knightBody *gamemath.Body, enemyEntry *donburi.Entry) {
	if !StompEnemy(enemyEntry) {
		return
	}
	knightBody.VY = cfg.Knight.StompBounce
	PlaySFX(e, cfg.SoundEnemyKilled)

	x, y := components.Physics.Get(enemyEntry).Body.Center()
	components.EnemyStomped.Publish(e.World, components.EnemyStompedEvent{
		Enemy: enemyEntry.Entity(),
		X:     x,
		Y:     y,
	})
}
