package systems

import (
	"github.com/automoto/knightfall/archetypes"
	"github.com/yohamta/donburi/ecs"
)

// AddSystems registers the simulation systems in tick order.
func AddSystems(ecs *ecs.ECS) {
	// Systems that always run
	ecs.AddSystem(UpdateRestart)
	ecs.AddSystem(UpdatePause)

	// Simulation, in tick order
	ecs.AddSystem(WithGameplayChecks(UpdateClock))
	ecs.AddSystem(WithGameplayChecks(UpdateKnight))
	ecs.AddSystem(WithGameplayChecks(UpdateStates))
	ecs.AddSystem(WithGameplayChecks(UpdateEnemies))
	ecs.AddSystem(WithGameplayChecks(UpdateCombat))
	ecs.AddSystem(WithGameplayChecks(UpdateTiles))
	ecs.AddSystem(WithGameplayChecks(UpdateCamera))
	ecs.AddSystem(WithGameplayChecks(UpdateCleanup))
	ecs.AddSystem(WithPauseCheck(UpdateHUD))
	ecs.AddSystem(ProcessEvents)
}

// AddRenderers registers the debug renderers.
func AddRenderers(ecs *ecs.ECS) {
	ecs.AddRenderer(archetypes.LayerWorld, DrawLevel)
	ecs.AddRenderer(archetypes.LayerWorld, DrawEntities)
	ecs.AddRenderer(archetypes.LayerWorld, DrawDebug)
	ecs.AddRenderer(archetypes.LayerHUD, DrawHUD)
}
