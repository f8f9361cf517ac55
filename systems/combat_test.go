package systems

import (
	"strings"
	"testing"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestStompKillsEnemyAndBounces(t *testing.T) {
	e, knight := newTestECS(t, testLevel("  P     E"))

	var stomped []components.EnemyStompedEvent
	components.EnemyStomped.Subscribe(e.World, func(w donburi.World, ev components.EnemyStompedEvent) {
		stomped = append(stomped, ev)
	})

	placeKnight(knight, 128, 122)
	knightBody(knight).VY = 3

	tick(e, 1)

	enemies := enemyEntries(t, e)
	require.Len(t, enemies, 1)
	assert.Equal(t, cfg.EnemyStomped, components.Enemy.Get(enemies[0]).State)
	assert.InDelta(t, cfg.Knight.StompBounce, knightBody(knight).VY, 1e-9)
	assert.Equal(t, 3, components.Knight.Get(knight).Lives, "a stomp never costs a life")
	assert.Contains(t, DrainSFX(e), cfg.SoundEnemyKilled)

	require.Len(t, stomped, 1)
	assert.Equal(t, enemies[0].Entity(), stomped[0].Enemy)
}

func TestSideContactHurtsKnight(t *testing.T) {
	e, knight := newTestECS(t, testLevel("  P     E"))
	placeKnight(knight, 120, 140)

	tick(e, 1)

	data := components.Knight.Get(knight)
	assert.Equal(t, 2, data.Lives)
	assert.Equal(t, cfg.TakingDamage, components.State.Get(knight).CurrentState)

	enemies := enemyEntries(t, e)
	assert.Equal(t, cfg.EnemyAlive, components.Enemy.Get(enemies[0]).State)

	// The enemy walks through the knight while it is invulnerable.
	tick(e, 60)
	assert.Equal(t, 2, data.Lives)
}

func TestFirstOverlappingEnemyWins(t *testing.T) {
	e, knight := newTestECS(t, testLevel("  P    EE"))
	placeKnight(knight, 120, 122)
	knightBody(knight).VY = 3

	tick(e, 1)

	enemies := enemyEntries(t, e)
	require.Len(t, enemies, 2)
	assert.Equal(t, cfg.EnemyStomped, components.Enemy.Get(enemies[0]).State)
	assert.Equal(t, cfg.EnemyAlive, components.Enemy.Get(enemies[1]).State)
	assert.Equal(t, 3, components.Knight.Get(knight).Lives)
}

func TestCombatSkipsDyingKnight(t *testing.T) {
	e, knight := newTestECS(t, testLevel("  P"+strings.Repeat(" ", 5)+"E"))
	tick(e, 1)

	data := components.Knight.Get(knight)
	data.Lives = 1
	require.True(t, TakeDamage(e, knight))
	data.InvulnTimer = 0

	placeKnight(knight, 120, 122)
	knightBody(knight).VY = 3
	tick(e, 1)

	enemies := enemyEntries(t, e)
	assert.Equal(t, cfg.EnemyAlive, components.Enemy.Get(enemies[0]).State)
}
