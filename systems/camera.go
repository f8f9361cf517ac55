package systems

import (
	"math"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// CameraTarget is what the camera follows on one tick.
type CameraTarget struct {
	X, Y        float64 // knight top left
	VX          float64
	Dashing     bool
	FacingRight bool
}

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	knightEntry, ok := GetKnight(e)
	if !ok {
		return
	}
	level, ok := getLevel(e)
	if !ok {
		return
	}

	body := &components.Physics.Get(knightEntry).Body
	knight := components.Knight.Get(knightEntry)

	StepCamera(camera, CameraTarget{
		X:           body.X,
		Y:           body.Y,
		VX:          body.VX,
		Dashing:     knight.IsDashing,
		FacingRight: knight.FacingRight,
	}, float64(level.Map.TileSize()), float64(level.Map.PixelWidth()), float64(level.Map.PixelHeight()))
}

// StepCamera moves the camera one tick toward target and clamps it to the
// world.
func StepCamera(camera *components.CameraData, target CameraTarget, tileSize, worldW, worldH float64) {
	camera.LastTargetVX = target.VX
	camera.FacingRight = target.FacingRight

	followSpeed := config.Camera.FollowSpeed
	maxFollowSpeed := config.Camera.MaxFollowSpeed
	deadZone := config.Camera.DeadZone
	distanceScale := config.Camera.DistanceScale
	if target.Dashing {
		followSpeed = config.Camera.DashFollowSpeed
		maxFollowSpeed = config.Camera.DashMaxFollowSpeed
		deadZone = config.Camera.DashDeadZone
		distanceScale = config.Camera.DashDistanceScale
	}

	predictedX := target.X + cameraPrediction(target)
	targetX := predictedX - camera.ViewportW*config.Camera.HorizontalAnchor
	if camera.TriggerBias {
		targetX += config.Camera.TriggerOffset
	}
	targetY := target.Y - camera.ViewportH/2 - tileSize

	dx := targetX - camera.Position.X
	if math.Abs(dx) > deadZone/2 {
		gain := math.Min(followSpeed*(1+math.Abs(dx)/distanceScale), maxFollowSpeed)
		if target.Dashing && gamemath.Sign(target.VX) == gamemath.Sign(dx) && target.VX != 0 {
			gain = math.Min(gain*config.Camera.DashAlignBoost, config.Camera.DashAlignMax)
		}
		camera.Position.X += dx * gain
	}

	dy := targetY - camera.Position.Y
	if math.Abs(dy) > config.Camera.VerticalDeadZone/2 {
		gain := config.Camera.FollowSpeed * config.Camera.VerticalSpeedScale * (1 + math.Abs(dy)/config.Camera.DistanceScale)
		gain = math.Min(gain, config.Camera.VerticalMaxSpeed)
		camera.Position.Y += dy * gain
	}

	camera.Position.X = gamemath.ClampView(camera.Position.X, camera.ViewportW, worldW)
	camera.Position.Y = gamemath.ClampView(camera.Position.Y, camera.ViewportH, worldH)
}

// cameraPrediction leads a dashing knight by a few ticks of its velocity.
func cameraPrediction(target CameraTarget) float64 {
	if !target.Dashing || math.Abs(target.VX) <= config.Knight.FacingThreshold {
		return 0
	}
	lead := target.VX * config.Camera.PredictionTicks
	return math.Max(-config.Camera.MaxPrediction, math.Min(lead, config.Camera.MaxPrediction))
}
