package gamemath

import (
	"math/rand"
	"testing"

	"github.com/automoto/knightfall/shared/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tileSize = 16

func knightParams() Params {
	return Params{
		Acceleration:   0.35,
		MaxSpeed:       2.2,
		Gravity:        0.4,
		MaxFallSpeed:   10,
		GroundFriction: 0.14,
		AirFriction:    0.05,
	}
}

func enemyParams() Params {
	return Params{
		Acceleration:   1,
		MaxSpeed:       1,
		Gravity:        0.4,
		MaxFallSpeed:   10,
		GroundFriction: 0.14,
		AirFriction:    0.05,
		AvoidLedges:    true,
	}
}

func newGrid(rows ...string) *tilemap.TileMap {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	return tilemap.New(rows, width, len(rows), tileSize)
}

func TestApplyHorizontal(t *testing.T) {
	p := knightParams()

	t.Run("accelerates toward target without overshoot", func(t *testing.T) {
		b := &Body{TargetVX: 2.2, Grounded: true}
		ApplyHorizontal(b, p)
		assert.InDelta(t, 0.35, b.VX, 1e-9)

		b.VX = 2.0
		ApplyHorizontal(b, p)
		assert.InDelta(t, 2.2, b.VX, 1e-9)
	})

	t.Run("ground friction is stronger than air friction", func(t *testing.T) {
		ground := &Body{VX: 2, Grounded: true}
		air := &Body{VX: 2}
		ApplyHorizontal(ground, p)
		ApplyHorizontal(air, p)
		assert.InDelta(t, 1.86, ground.VX, 1e-9)
		assert.InDelta(t, 1.95, air.VX, 1e-9)
	})

	t.Run("slides down to a smaller target", func(t *testing.T) {
		b := &Body{VX: 2.2, TargetVX: 2.1, Grounded: true}
		ApplyHorizontal(b, p)
		assert.InDelta(t, 2.1, b.VX, 1e-9)
	})

	t.Run("friction stops at zero", func(t *testing.T) {
		b := &Body{VX: -0.1, Grounded: true}
		ApplyHorizontal(b, p)
		assert.Zero(t, b.VX)
	})

	t.Run("clamps to max speed", func(t *testing.T) {
		b := &Body{VX: 6, TargetVX: -2.2}
		ApplyHorizontal(b, p)
		assert.InDelta(t, 2.2, b.VX, 1e-9)
	})
}

func TestApplyGravityClamps(t *testing.T) {
	b := &Body{VY: 9.9}
	ApplyGravity(b, knightParams())
	assert.Equal(t, 10.0, b.VY)
}

func TestLandsFlushOnSolidTile(t *testing.T) {
	g := newGrid(
		"   ",
		"   ",
		"   ",
		"###",
	)
	r := NewResolver(g, CharacterSolidity)
	b := &Body{X: 8, W: 15, H: 20}
	b.Y = 48 - b.H - 0.2

	res := Integrate(b, knightParams(), r)

	assert.True(t, res.Landed)
	assert.True(t, b.Grounded)
	assert.Zero(t, b.VY)
	assert.Equal(t, 48.0, b.Bottom())
}

func TestLandedOnlyOnTransition(t *testing.T) {
	g := newGrid("   ", "   ", "###")
	r := NewResolver(g, CharacterSolidity)
	b := &Body{X: 4, Y: 32 - 20, W: 15, H: 20, Grounded: true}

	res := Integrate(b, knightParams(), r)

	assert.False(t, res.Landed)
	assert.True(t, b.Grounded)
	assert.Equal(t, 32.0, b.Bottom())
}

func TestRunsIntoWallFlush(t *testing.T) {
	g := newGrid(
		"     #",
		"     #",
		"     #",
		"######",
	)
	r := NewResolver(g, CharacterSolidity)
	wallLeft := 5.0 * tileSize
	b := &Body{W: 15, H: 20, VX: 2.2, TargetVX: 2.2, Grounded: true}
	b.X = wallLeft - tileSize - b.W
	b.Y = 48 - b.H

	var res StepResult
	for i := 0; i < 20 && !res.HitWall; i++ {
		res = Integrate(b, knightParams(), r)
		require.LessOrEqual(t, b.X+b.W, wallLeft)
	}

	require.True(t, res.HitWall)
	assert.Equal(t, wallLeft, b.X+b.W)
	assert.Zero(t, b.VX)
	assert.Zero(t, b.TargetVX)
}

func TestSnapResolvesDeepPenetrationInOneTick(t *testing.T) {
	g := newGrid(
		"#     ",
		"#     ",
		"######",
	)
	r := NewResolver(g, CharacterSolidity)
	b := &Body{X: 20, Y: 12, W: 15, H: 20, VX: -8, Grounded: true}

	hit, _ := MoveX(b, Params{}, r)

	assert.True(t, hit)
	assert.Equal(t, 16.0, b.X)
}

func TestHitsCeiling(t *testing.T) {
	g := newGrid(
		"###",
		"   ",
		"   ",
		"   ",
		"###",
	)
	r := NewResolver(g, CharacterSolidity)
	b := &Body{X: 4, Y: 18, W: 15, H: 20, VY: -7}

	landed, ceiling := MoveY(b, r)

	assert.False(t, landed)
	assert.True(t, ceiling)
	assert.Equal(t, 16.0, b.Y)
	assert.Zero(t, b.VY)
}

func TestRisingClearsGrounded(t *testing.T) {
	g := newGrid("   ", "   ", "   ", "###")
	r := NewResolver(g, CharacterSolidity)
	b := &Body{X: 4, Y: 28, W: 15, H: 20, VY: -7, Grounded: true}

	MoveY(b, r)

	assert.False(t, b.Grounded)
	assert.Equal(t, 21.0, b.Y)
}

func TestEnemyTurnsAtLedge(t *testing.T) {
	g := newGrid(
		"      ",
		"   ###",
	)
	r := NewResolver(g, EnemySolidity)
	b := &Body{X: 50, Y: 0, W: 16, H: 16, VX: -1, TargetVX: -1, Grounded: true}

	res := Integrate(b, enemyParams(), r)
	assert.False(t, res.AtLedge)
	assert.Equal(t, 49.0, b.X)

	res = Integrate(b, enemyParams(), r)
	assert.True(t, res.AtLedge)
	assert.Equal(t, 49.0, b.X)
	assert.True(t, b.Grounded)
}

func TestBarrierBlocksOnlyEnemies(t *testing.T) {
	g := newGrid(
		"  B ",
		"####",
	)
	enemy := NewResolver(g, EnemySolidity)
	knight := NewResolver(g, CharacterSolidity)

	assert.True(t, enemy.SolidAt(40, 8))
	assert.False(t, knight.SolidAt(40, 8))
}

func TestOutOfBoundsIsSolid(t *testing.T) {
	g := newGrid("  ", "  ")
	r := NewResolver(g, CharacterSolidity)

	assert.True(t, r.SolidAt(-0.5, 8))
	assert.True(t, r.SolidAt(8, -0.5))
	assert.True(t, r.SolidAt(32, 8))
	assert.True(t, r.SolidAt(8, 32))
	assert.False(t, r.SolidAt(8, 8))
}

func TestGroundSamplesOnlyCorners(t *testing.T) {
	// a single tile between the corners of a wide body goes unnoticed
	g := newGrid(
		"   ",
		" # ",
	)
	r := NewResolver(g, CharacterSolidity)

	assert.False(t, r.GroundBelow(&Body{W: 40, H: 16}, 0, 0))
	assert.True(t, r.GroundBelow(&Body{W: 15, H: 16}, 16, 0))
}

func TestSpeedBoundsHoldForRandomInput(t *testing.T) {
	g := newGrid(
		"################",
		"#              #",
		"#   ##         #",
		"#         ###  #",
		"#              #",
		"################",
	)
	r := NewResolver(g, CharacterSolidity)
	p := knightParams()
	rng := rand.New(rand.NewSource(7))
	b := &Body{X: 20, Y: 20, W: 15, H: 20}

	for i := 0; i < 5000; i++ {
		b.TargetVX = []float64{-2.2, 0, 2.2}[rng.Intn(3)]
		if b.Grounded && rng.Intn(20) == 0 {
			b.VY = -7
			b.Grounded = false
		}
		Integrate(b, p, r)

		require.LessOrEqual(t, b.VX, p.MaxSpeed)
		require.GreaterOrEqual(t, b.VX, -p.MaxSpeed)
		require.LessOrEqual(t, b.VY, p.MaxFallSpeed)
	}
}

func TestNoTunnelingAtBoundedSpeed(t *testing.T) {
	g := newGrid(
		"        #       ",
		"        #       ",
		"        #       ",
		"        #       ",
		"################",
	)
	r := NewResolver(g, CharacterSolidity)
	wallLeft, wallRight := 8.0*tileSize, 9.0*tileSize

	for _, speed := range []float64{0.5, 2.2, 6, 11.3, 15.9, 16} {
		for _, start := range []float64{0, 3.7, 8, 15.99} {
			right := &Body{X: wallLeft - 15 - 3*tileSize + start, Y: 44, W: 15, H: 20, VX: speed}
			left := &Body{X: wallRight + 3*tileSize - start, Y: 44, W: 15, H: 20, VX: -speed}

			for i := 0; i < 40; i++ {
				right.VX = speed
				MoveX(right, Params{}, r)
				require.LessOrEqual(t, right.X+right.W, wallLeft, "speed %v start %v", speed, start)

				left.VX = -speed
				MoveX(left, Params{}, r)
				require.GreaterOrEqual(t, left.X, wallRight, "speed %v start %v", speed, start)
			}
		}
	}
}

func TestOverlapsAndStomp(t *testing.T) {
	a := &Body{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Overlaps(&Body{X: 9, Y: 9, W: 10, H: 10}))
	assert.False(t, a.Overlaps(&Body{X: 10, Y: 0, W: 10, H: 10}))

	assert.True(t, IsStomp(96, 100, 4, 10))
	assert.True(t, IsStomp(110, 100, 4, 10))
	assert.False(t, IsStomp(95.9, 100, 4, 10))
	assert.False(t, IsStomp(110.1, 100, 4, 10))
}

func TestApproach(t *testing.T) {
	assert.Equal(t, 1.0, Approach(0.5, 1, 1))
	assert.Equal(t, -1.0, Approach(-0.5, -1, 1))
	assert.Equal(t, 0.75, Approach(0.5, 1, 0.25))
	assert.Equal(t, 2.0, Approach(2, 2, 0.25))
}

func TestClampView(t *testing.T) {
	assert.Equal(t, 0.0, ClampView(-5, 320, 3200))
	assert.Equal(t, 2880.0, ClampView(4000, 320, 3200))
	assert.Equal(t, 100.0, ClampView(100, 320, 3200))
	assert.Equal(t, 0.0, ClampView(100, 320, 200))
}
