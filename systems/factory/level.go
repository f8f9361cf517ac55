package factory

import (
	"github.com/automoto/knightfall/archetypes"
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/shared/leveldata"
	"github.com/automoto/knightfall/shared/tilemap"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the tile map for grid and the level singleton holding it.
// Grids smaller than the configured map size are padded with open air.
func CreateLevel(ecs *ecs.ECS, grid *leveldata.Grid) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	width := max(grid.Width, cfg.C.MapWidth)
	height := max(grid.Height, cfg.C.MapHeight)
	tileSize := grid.TileSize
	if tileSize <= 0 {
		tileSize = cfg.C.TileSize
	}
	m := tilemap.New(grid.Rows, width, height, tileSize)

	spawn := tilemap.Cell{Col: cfg.Knight.SpawnCol, Row: cfg.Knight.SpawnRow}
	if marker, ok := m.PlayerSpawn(); ok {
		spawn = marker
	}
	spawnX, spawnY := CellPosition(spawn, tileSize, cfg.Knight.CollisionHeight)

	components.Level.SetValue(level, components.LevelData{
		Name:           grid.Name,
		Map:            m,
		KnightResolver: gamemath.NewResolver(m, gamemath.CharacterSolidity),
		EnemyResolver:  gamemath.NewResolver(m, gamemath.EnemySolidity),
		SpawnX:         spawnX,
		SpawnY:         spawnY,
	})
	components.Roster.SetValue(level, components.RosterData{
		Enemies:  make([]donburi.Entity, 0, cfg.Enemy.MaxEnemies),
		Capacity: cfg.Enemy.MaxEnemies,
	})

	return level
}

// CellPosition returns the top left of a body of the given height standing on
// the bottom of cell.
func CellPosition(cell tilemap.Cell, tileSize, height int) (x, y float64) {
	x = float64(cell.Col * tileSize)
	y = float64((cell.Row+1)*tileSize - height)
	return x, y
}

// SpawnEnemies creates an enemy on every spawn marker of the level map.
func SpawnEnemies(ecs *ecs.ECS, level *components.LevelData) {
	for _, cell := range level.Map.EnemySpawns() {
		x, y := CellPosition(cell, level.Map.TileSize(), cfg.Enemy.CollisionHeight)
		CreateEnemy(ecs, x, y)
	}
}

// CreateWorld populates an empty ECS with everything one level needs: clock,
// broadphase space, level, knight, enemies and camera. It returns the knight.
func CreateWorld(ecs *ecs.ECS, grid *leveldata.Grid) *donburi.Entry {
	CreateClock(ecs)
	level := CreateLevel(ecs, grid)
	levelData := components.Level.Get(level)
	m := levelData.Map

	CreateSpace(ecs, m.PixelWidth(), m.PixelHeight(), m.TileSize())

	knight := CreateKnight(ecs, levelData.SpawnX, levelData.SpawnY)
	SpawnEnemies(ecs, levelData)
	CreateCamera(ecs, levelData.SpawnX, levelData.SpawnY,
		float64(m.PixelWidth()), float64(m.PixelHeight()))

	log.Info("level loaded", "level", grid.Name,
		"width", m.Width(), "height", m.Height(), "enemies", len(m.EnemySpawns()))
	return knight
}
