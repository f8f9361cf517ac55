package levels

import (
	"testing"

	"github.com/automoto/knightfall/shared/leveldata"
	"github.com/automoto/knightfall/shared/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesListsLevel1First(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, Level1Name, names[0])
	assert.Contains(t, names, "training")
}

func TestLoadLevel1(t *testing.T) {
	grid, err := Load(Level1Name)
	require.NoError(t, err)

	m := tilemap.New(grid.Rows, grid.Width, grid.Height, grid.TileSize)
	assert.Equal(t, Level1Width, m.Width())
	assert.Equal(t, Level1Height, m.Height())
	assert.Len(t, m.EnemySpawns(), 2)

	_, ok := m.PlayerSpawn()
	assert.False(t, ok)

	assert.Equal(t, tilemap.GroundTop, m.Classify(0, 13))
	assert.Equal(t, tilemap.Trap, m.Classify(70, 14))
	assert.Equal(t, tilemap.Goal, m.Classify(87, 12))
	assert.Equal(t, tilemap.AbilityDash, m.Classify(52, 12))
	assert.Equal(t, tilemap.Checkpoint, m.Classify(62, 12))
}

func TestLoadLevel1ReturnsCopy(t *testing.T) {
	grid, err := Load("")
	require.NoError(t, err)
	grid.Rows[13] = "changed"

	again, err := Load(Level1Name)
	require.NoError(t, err)
	assert.Equal(t, Level1[13], again.Rows[13])
}

func TestLoadTrainingLevel(t *testing.T) {
	grid, err := Load("training")
	require.NoError(t, err)

	m := tilemap.New(grid.Rows, grid.Width, grid.Height, grid.TileSize)
	assert.Equal(t, 40, m.Width())
	assert.Len(t, m.EnemySpawns(), 2)

	spawn, ok := m.PlayerSpawn()
	require.True(t, ok)
	assert.Equal(t, tilemap.Cell{Col: 1, Row: 12}, spawn)
	assert.Equal(t, tilemap.AbilityDoubleJump, m.Classify(6, 10))
	assert.Equal(t, tilemap.CameraTrigger, m.Classify(26, 5))
}

func TestLoadUnknownLevel(t *testing.T) {
	_, err := Load("moon")
	assert.ErrorIs(t, err, leveldata.ErrUnknownLevel)
}
