package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs patrol AI and physics for every enemy in roster order.
func UpdateEnemies(e *ecs.ECS) {
	level, ok := getLevel(e)
	if !ok {
		return
	}
	roster, ok := getRoster(e)
	if !ok {
		return
	}

	step := dt(e)
	for _, enemy := range roster.Enemies {
		if !e.World.Valid(enemy) {
			continue
		}
		updateEnemy(e.World.Entry(enemy), level.EnemyResolver, step)
	}
}

func updateEnemy(entry *donburi.Entry, resolver *gamemath.Resolver, step float64) {
	enemy := components.Enemy.Get(entry)
	physics := components.Physics.Get(entry)
	body := &physics.Body

	switch enemy.State {
	case cfg.EnemyAlive:
		body.VX = enemy.Direction * cfg.Enemy.Speed
		body.TargetVX = body.VX

		// Ledges only turn an enemy that is standing on something.
		params := physics.Params
		params.AvoidLedges = params.AvoidLedges && body.Grounded

		physics.Last = gamemath.Integrate(body, params, resolver)
		if physics.Last.HitWall || physics.Last.AtLedge {
			enemy.Direction = -enemy.Direction
			body.VX = enemy.Direction * cfg.Enemy.Speed
			body.TargetVX = body.VX
		}

	case cfg.EnemyStomped:
		body.VX = 0
		body.TargetVX = 0
		physics.Last = gamemath.Integrate(body, physics.Params, resolver)

		updateSquash(components.Squash.Get(entry), step)

		enemy.DeathTimer += step
		if enemy.DeathTimer >= cfg.Enemy.DeathDuration {
			enemy.State = cfg.EnemyDead
			enemy.Alive = false
		}

	default:
		return
	}

	components.Animation.Get(entry).Advance(step)
	factory.SyncObject(entry)
}

// StompEnemy flattens an alive enemy. It reports false for an enemy that was
// already stomped or dead.
func StompEnemy(entry *donburi.Entry) bool {
	enemy := components.Enemy.Get(entry)
	if enemy.State != cfg.EnemyAlive {
		return false
	}

	enemy.State = cfg.EnemyStomped
	enemy.DeathTimer = 0

	body := &components.Physics.Get(entry).Body
	body.VX = 0
	body.TargetVX = 0

	components.Animation.Get(entry).SetClip(cfg.Animation.EnemyHit)
	components.Squash.SetValue(entry, components.SquashData{
		Tween:  gween.New(1, cfg.Enemy.SquashScale, float32(cfg.Animation.EnemyHit.FrameDuration), ease.OutQuad),
		ScaleY: 1,
	})
	return true
}

func updateSquash(squash *components.SquashData, step float64) {
	if squash.Tween == nil {
		return
	}
	scale, finished := squash.Tween.Update(float32(step))
	squash.ScaleY = scale
	if finished {
		squash.Tween = nil
	}
}
