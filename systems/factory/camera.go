package factory

import (
	"github.com/automoto/knightfall/archetypes"
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera creates the camera framing the point (focusX, focusY) the same
// way the follow logic does, already clamped to the world.
func CreateCamera(ecs *ecs.ECS, focusX, focusY, worldW, worldH float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		ViewportW:   float64(cfg.C.Width),
		ViewportH:   float64(cfg.C.Height),
		FacingRight: true,
	})
	ResetCamera(camera, focusX, focusY, worldW, worldH)
	return camera
}

// ResetCamera snaps the camera onto its framing of (focusX, focusY).
func ResetCamera(camera *donburi.Entry, focusX, focusY, worldW, worldH float64) {
	cam := components.Camera.Get(camera)
	x := focusX - cam.ViewportW*cfg.Camera.HorizontalAnchor
	y := focusY - cam.ViewportH/2 - float64(cfg.C.TileSize)
	cam.Position = math.NewVec2(
		gamemath.ClampView(x, cam.ViewportW, worldW),
		gamemath.ClampView(y, cam.ViewportH, worldH),
	)
	cam.TriggerBias = false
	cam.LastTargetVX = 0
	cam.FacingRight = true
}
