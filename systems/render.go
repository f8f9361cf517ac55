package systems

import (
	"image/color"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel fills the sky and draws every visible tile as a colored block.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	level, ok := getLevel(ecs)
	if !ok {
		return
	}
	camX, camY, ok := cameraOffset(ecs)
	if !ok {
		return
	}

	m := level.Map
	size := m.TileSize()
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Only the columns and rows inside the viewport
	firstCol, firstRow := int(camX)/size, int(camY)/size
	lastCol, lastRow := (int(camX)+width)/size, (int(camY)+height)/size

	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			clr, ok := cfg.TileColors[m.Code(col, row)]
			if !ok {
				continue
			}
			x := float32(float64(col*size) - camX)
			y := float32(float64(row*size) - camY)
			vector.FillRect(screen, x, y, float32(size), float32(size), clr, false)
		}
	}
}

// DrawEntities draws the enemies and the knight as rectangles.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs)
	if !ok {
		return
	}

	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.State == cfg.EnemyDead {
			return
		}
		body := &components.Physics.Get(entry).Body
		scale := float64(components.Squash.Get(entry).ScaleY)
		if enemy.State == cfg.EnemyAlive {
			scale = 1
		}
		h := body.H * scale
		drawBody(screen, body.X-camX, body.Y+body.H-h-camY, body.W, h, cfg.EnemyColor)
	})

	tags.Knight.Each(ecs.World, func(entry *donburi.Entry) {
		knight := components.Knight.Get(entry)
		state := components.State.Get(entry)
		if !knight.ShouldRender(state.CurrentState) {
			return
		}
		body := &components.Physics.Get(entry).Body
		drawBody(screen, body.X-camX, body.Y-camY, body.W, body.H, cfg.KnightColor)

		// Facing marker
		eyeX := body.X - camX + 2
		if knight.FacingRight {
			eyeX = body.X - camX + body.W - 5
		}
		drawBody(screen, eyeX, body.Y-camY+4, 3, 3, color.RGBA{A: 255})
	})
}

// DrawDebug outlines the grid and body boxes when enabled in the config.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowGrid && !cfg.Debug.ShowBodies {
		return
	}
	camX, camY, ok := cameraOffset(ecs)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	lineColor := color.RGBA{R: 255, G: 255, B: 255, A: 60}

	if level, ok := getLevel(ecs); ok && cfg.Debug.ShowGrid {
		size := float64(level.Map.TileSize())
		for x := -float64(int(camX) % int(size)); x < float64(width); x += size {
			vector.StrokeLine(screen, float32(x), 0, float32(x), float32(height), 1, lineColor, false)
		}
		for y := -float64(int(camY) % int(size)); y < float64(height); y += size {
			vector.StrokeLine(screen, 0, float32(y), float32(width), float32(y), 1, lineColor, false)
		}
	}

	if cfg.Debug.ShowBodies {
		boxColor := color.RGBA{R: 255, G: 40, B: 40, A: 255}
		components.Physics.Each(ecs.World, func(entry *donburi.Entry) {
			body := &components.Physics.Get(entry).Body
			vector.StrokeRect(screen, float32(body.X-camX), float32(body.Y-camY),
				float32(body.W), float32(body.H), 1, boxColor, false)
		})
	}
}

func cameraOffset(ecs *ecs.ECS) (x, y float64, ok bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X, camera.Position.Y, true
}

func drawBody(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}
