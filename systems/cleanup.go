package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCleanup compacts the enemy roster once per cleanup interval.
func UpdateCleanup(e *ecs.ECS) {
	roster, ok := getRoster(e)
	if !ok {
		return
	}

	roster.CleanupTimer += dt(e)
	if roster.CleanupTimer < cfg.Enemy.CleanupInterval {
		return
	}
	roster.CleanupTimer = 0

	if removed := CompactRoster(e, roster); removed > 0 {
		log.Debug("dead enemies removed", "count", removed, "remaining", len(roster.Enemies))
	}
}

// CompactRoster removes dead enemies from the world and the roster, keeping
// the order of the rest. It returns how many were removed.
func CompactRoster(e *ecs.ECS, roster *components.RosterData) int {
	kept := roster.Enemies[:0]
	removed := 0
	for _, enemy := range roster.Enemies {
		if !e.World.Valid(enemy) {
			removed++
			continue
		}
		if isDead(e.World.Entry(enemy)) {
			removeEnemy(e, enemy)
			removed++
			continue
		}
		kept = append(kept, enemy)
	}
	roster.Enemies = kept
	return removed
}

func isDead(entry *donburi.Entry) bool {
	enemy := components.Enemy.Get(entry)
	return !enemy.Alive && enemy.State == cfg.EnemyDead
}
