package factory

import (
	"github.com/automoto/knightfall/archetypes"
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// KnightParams are the integrator settings for the knight outside a dash.
func KnightParams() gamemath.Params {
	return gamemath.Params{
		Acceleration:   cfg.Knight.Acceleration,
		MaxSpeed:       cfg.Knight.MaxSpeed,
		Gravity:        cfg.Physics.Gravity,
		MaxFallSpeed:   cfg.Physics.MaxFallSpeed,
		GroundFriction: cfg.Physics.GroundFriction,
		AirFriction:    cfg.Physics.AirFriction,
	}
}

func CreateKnight(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	knight := archetypes.Knight.Spawn(ecs)

	w := float64(cfg.Knight.CollisionWidth)
	h := float64(cfg.Knight.CollisionHeight)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvKnight)
	obj.Data = knight
	components.Object.SetValue(knight, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	ResetKnight(knight, x, y)
	return knight
}

// ResetKnight puts the knight back to its freshly spawned state at x, y.
// Abilities and the checkpoint are cleared.
func ResetKnight(knight *donburi.Entry, x, y float64) {
	components.Knight.SetValue(knight, components.KnightData{
		Lives:       cfg.Knight.StartingLives,
		Alive:       true,
		FacingRight: true,
		CheckpointX: x,
		CheckpointY: y,
	})
	components.Physics.SetValue(knight, components.PhysicsData{
		Body: gamemath.Body{
			X: x,
			Y: y,
			W: float64(cfg.Knight.CollisionWidth),
			H: float64(cfg.Knight.CollisionHeight),
		},
		Params: KnightParams(),
	})
	components.State.SetValue(knight, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})

	anim := components.AnimationData{}
	anim.SetClip(cfg.Animation.Knight[cfg.Idle])
	components.Animation.SetValue(knight, anim)

	SyncObject(knight)
}

// SyncObject copies an entity's body position into its broadphase object.
func SyncObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	body := &components.Physics.Get(e).Body
	obj.X = body.X
	obj.Y = body.Y
	obj.Update()
}
