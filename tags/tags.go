package tags

import "github.com/yohamta/donburi"

var (
	Knight = donburi.NewTag().SetName("Knight")
	Enemy  = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for the combat broadphase
const (
	ResolvKnight = "Knight"
	ResolvEnemy  = "Enemy"
)
