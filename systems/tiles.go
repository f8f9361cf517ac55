package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/tilemap"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTiles applies the interactive tile under the knight's center.
func UpdateTiles(e *ecs.ECS) {
	knightEntry, ok := GetKnight(e)
	if !ok {
		return
	}
	level, ok := getLevel(e)
	if !ok {
		return
	}

	knight := components.Knight.Get(knightEntry)
	state := components.State.Get(knightEntry)
	if !knight.Alive || state.CurrentState == cfg.Dying {
		setCameraBias(e, false)
		return
	}

	body := &components.Physics.Get(knightEntry).Body
	cx, cy := body.Center()
	col, row := level.KnightResolver.CellAt(cx, cy)
	cell := tilemap.Cell{Col: col, Row: row}
	tile := level.Map.Classify(cell.Col, cell.Row)

	setCameraBias(e, tile == tilemap.CameraTrigger)

	onCheckpoint := tile == tilemap.Checkpoint
	if onCheckpoint && !knight.OnCheckpoint {
		knight.CheckpointX = body.X
		knight.CheckpointY = body.Y
		components.CheckpointReached.Publish(e.World, components.CheckpointReachedEvent{
			X: body.X,
			Y: body.Y,
		})
	}
	knight.OnCheckpoint = onCheckpoint

	switch tile {
	case tilemap.Goal:
		CompleteLevel(e)
	case tilemap.AbilityDoubleJump, tilemap.AbilityDash:
		acquireAbility(e, knight, level.Map, cell, tile)
	case tilemap.Trap:
		springTrap(e, knightEntry)
	}
}

func acquireAbility(e *ecs.ECS, knight *components.KnightData, m *tilemap.TileMap, cell tilemap.Cell, tile tilemap.TileType) {
	if !m.Consume(cell.Col, cell.Row) {
		return
	}

	switch tile {
	case tilemap.AbilityDoubleJump:
		knight.CanDoubleJump = true
	case tilemap.AbilityDash:
		knight.CanDash = true
	}

	PlaySFX(e, cfg.SoundPowerUp)
	components.AbilityAcquired.Publish(e.World, components.AbilityAcquiredEvent{
		Ability: tile,
		Cell:    cell,
	})
}

// springTrap hurts the knight and, unless that killed it, sends it back to
// the last checkpoint.
func springTrap(e *ecs.ECS, knightEntry *donburi.Entry) {
	TakeDamage(e, knightEntry)

	knight := components.Knight.Get(knightEntry)
	state := components.State.Get(knightEntry)
	if !knight.Alive || state.CurrentState == cfg.Dying {
		return
	}

	body := &components.Physics.Get(knightEntry).Body
	body.X = knight.CheckpointX
	body.Y = knight.CheckpointY
	body.VX = 0
	body.VY = 0
	body.TargetVX = 0
	factory.SyncObject(knightEntry)
}

func setCameraBias(e *ecs.ECS, on bool) {
	if camera, ok := components.Camera.First(e.World); ok {
		components.Camera.Get(camera).TriggerBias = on
	}
}
