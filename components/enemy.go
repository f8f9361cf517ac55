package components

import (
	"github.com/automoto/knightfall/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	State      config.EnemyStateID
	Alive      bool
	Direction  float64 // -1 left, 1 right
	DeathTimer float64 // seconds spent stomped
}

var Enemy = donburi.NewComponentType[EnemyData]()
