package factory

import (
	"github.com/automoto/knightfall/archetypes"
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemyParams are the integrator settings for a patrolling enemy. The speed
// is reached in a single step.
func EnemyParams() gamemath.Params {
	return gamemath.Params{
		Acceleration:   cfg.Enemy.Speed,
		MaxSpeed:       cfg.Enemy.Speed,
		Gravity:        cfg.Physics.Gravity,
		MaxFallSpeed:   cfg.Physics.MaxFallSpeed,
		GroundFriction: cfg.Physics.GroundFriction,
		AirFriction:    cfg.Physics.AirFriction,
		AvoidLedges:    true,
	}
}

// CreateEnemy spawns an enemy and appends it to the level roster. It returns
// nil without spawning when the roster is full.
func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	levelEntry, ok := components.Roster.First(ecs.World)
	if !ok {
		log.Warn("enemy spawn without a level", "x", x, "y", y)
		return nil
	}
	roster := components.Roster.Get(levelEntry)
	if roster.Full() {
		log.Warn("enemy roster full, spawn ignored", "max", roster.Capacity, "x", x, "y", y)
		return nil
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	w := float64(cfg.Enemy.CollisionWidth)
	h := float64(cfg.Enemy.CollisionHeight)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		State:     cfg.EnemyAlive,
		Alive:     true,
		Direction: cfg.Enemy.StartDirection,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Body: gamemath.Body{
			X:        x,
			Y:        y,
			W:        w,
			H:        h,
			VX:       cfg.Enemy.StartDirection * cfg.Enemy.Speed,
			TargetVX: cfg.Enemy.StartDirection * cfg.Enemy.Speed,
		},
		Params: EnemyParams(),
	})
	components.Squash.SetValue(enemy, components.SquashData{ScaleY: 1})

	anim := components.AnimationData{}
	anim.SetClip(cfg.Animation.EnemyWalk)
	components.Animation.SetValue(enemy, anim)

	roster.Enemies = append(roster.Enemies, enemy.Entity())
	return enemy
}
