package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position  math.Vec2 // top-left corner of the viewport in world pixels
	ViewportW float64
	ViewportH float64

	TriggerBias  bool    // knight is standing on a camera trigger
	LastTargetVX float64 // knight velocity seen on the last update, used for prediction
	FacingRight  bool
}

var Camera = donburi.NewComponentType[CameraData]()
