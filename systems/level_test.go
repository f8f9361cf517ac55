package systems

import (
	"testing"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestartRestoresLevel(t *testing.T) {
	e, knight := newTestECS(t, testLevel("  P D   E     t"))

	// Pick up the ability, kill the enemy and finish the level.
	placeKnight(knight, 64, 140)
	tick(e, 1)
	require.True(t, components.Knight.Get(knight).CanDoubleJump)

	enemies := enemyEntries(t, e)
	require.Len(t, enemies, 1)
	require.True(t, StompEnemy(enemies[0]))

	placeKnight(knight, 224, 140)
	tick(e, 1)
	require.True(t, GetOrCreateLevelComplete(e).IsComplete)

	RequestRestart(e)
	tick(e, 1)

	data := components.Knight.Get(knight)
	body := knightBody(knight)
	assert.False(t, GetOrCreateLevelComplete(e).IsComplete)
	assert.False(t, data.CanDoubleJump)
	assert.Equal(t, cfg.Knight.StartingLives, data.Lives)
	assert.True(t, data.Alive)
	assert.Equal(t, 32.0, body.X)
	assert.Equal(t, 140.0, body.Y)
	assert.False(t, GetOrCreateIntent(e).RestartRequested)

	level, _ := getLevel(e)
	assert.Equal(t, tilemap.AbilityDoubleJump, level.Map.Classify(4, 9))

	enemies = enemyEntries(t, e)
	require.Len(t, enemies, 1)
	assert.Equal(t, cfg.EnemyAlive, components.Enemy.Get(enemies[0]).State)
	assert.Equal(t, 127.0, components.Physics.Get(enemies[0]).Body.X)
}

func TestRestartRevivesDeadKnight(t *testing.T) {
	e, knight := newTestECS(t, testLevel("  P"))
	tick(e, 1)

	data := components.Knight.Get(knight)
	data.Lives = 1
	require.True(t, TakeDamage(e, knight))
	tick(e, 80)
	require.False(t, data.Alive)

	RequestRestart(e)
	tick(e, 1)
	assert.True(t, data.Alive)
	assert.Equal(t, cfg.Idle, components.State.Get(knight).CurrentState)
}

func TestPauseStopsSimulation(t *testing.T) {
	e, knight := newTestECS(t, testLevel("  P"))
	tick(e, 1)
	require.Equal(t, uint64(1), GetClock(e).Tick)

	RequestPause(e)
	SetTargetVelocity(e, cfg.Knight.MaxSpeed)
	tick(e, 5)
	assert.True(t, GetOrCreatePause(e).IsPaused)
	assert.Equal(t, uint64(1), GetClock(e).Tick)
	assert.Equal(t, 32.0, knightBody(knight).X)
	assert.Contains(t, HUDLines(e), "Paused - P to resume")

	RequestPause(e)
	tick(e, 1)
	assert.False(t, GetOrCreatePause(e).IsPaused)
	assert.Equal(t, uint64(2), GetClock(e).Tick)
	assert.Greater(t, knightBody(knight).X, 32.0)
}

func TestHintExpires(t *testing.T) {
	e, _ := newTestECS(t, testLevel("  P"))
	ShowStartHint(e)
	assert.Contains(t, HUDLines(e), startHint)

	tick(e, int(cfg.HUD.HintDuration*float64(cfg.C.TPS))+2)
	assert.Empty(t, GetOrCreateHUD(e).Hint)
	assert.Equal(t, []string{"Lives: 3"}, HUDLines(e))
}

func TestSFXQueueIsBounded(t *testing.T) {
	e, _ := newTestECS(t, testLevel("  P"))

	for i := 0; i < cfg.MaxPendingSFX+3; i++ {
		PlaySFX(e, cfg.SoundJump)
	}
	assert.Equal(t, 3, GetOrCreateAudio(e).Dropped)

	sounds := DrainSFX(e)
	assert.Len(t, sounds, cfg.MaxPendingSFX)
	assert.Nil(t, DrainSFX(e))
}
