package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashData flattens a stomped enemy. ScaleY is read by the renderer.
type SquashData struct {
	Tween  *gween.Tween
	ScaleY float32
}

var Squash = donburi.NewComponentType[SquashData]()
