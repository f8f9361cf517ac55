package components

import (
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/shared/tilemap"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name string
	Map  *tilemap.TileMap

	KnightResolver *gamemath.Resolver
	EnemyResolver  *gamemath.Resolver

	// Knight spawn in world pixels
	SpawnX float64
	SpawnY float64
}

var Level = donburi.NewComponentType[LevelData]()
