package systems

import (
	"strings"
	"testing"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/shared/leveldata"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// floorRow is the row the test levels stand on. The knight stands at
// y = 140 and enemies at y = 144.
const floorRow = 10

// testLevel builds a level whose row 9 is standing and row 10 is solid
// ground. standing is placed at row 9; floor replaces the ground row when
// given.
func testLevel(standing string, floor ...string) []string {
	rows := make([]string, floorRow+1)
	rows[floorRow-1] = standing
	rows[floorRow] = strings.Repeat("G", 200)
	if len(floor) > 0 {
		rows[floorRow] = floor[0]
	}
	return rows
}

func newTestECS(t *testing.T, rows []string) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	e := ecs.NewECS(donburi.NewWorld())
	AddSystems(e)
	knight := factory.CreateWorld(e, &leveldata.Grid{
		Name:     "test",
		Width:    width,
		Height:   len(rows),
		TileSize: 16,
		Rows:     rows,
	})
	SubscribeEvents(e)
	require.NotNil(t, knight)
	return e, knight
}

func tick(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		e.Update()
	}
}

func knightBody(knight *donburi.Entry) *gamemath.Body {
	return &components.Physics.Get(knight).Body
}

// placeKnight moves the knight to x, y at rest.
func placeKnight(knight *donburi.Entry, x, y float64) {
	body := knightBody(knight)
	body.X, body.Y = x, y
	body.VX, body.VY, body.TargetVX = 0, 0, 0
	body.Grounded = false
	factory.SyncObject(knight)
}

func enemyEntries(t *testing.T, e *ecs.ECS) []*donburi.Entry {
	t.Helper()
	roster, ok := getRoster(e)
	require.True(t, ok)

	entries := make([]*donburi.Entry, 0, len(roster.Enemies))
	for _, enemy := range roster.Enemies {
		entries = append(entries, e.World.Entry(enemy))
	}
	return entries
}
