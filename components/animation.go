package components

import (
	"github.com/automoto/knightfall/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Clip  config.AnimationClip
	Frame int
	Timer float64
}

// SetClip starts clip from its first frame.
func (a *AnimationData) SetClip(clip config.AnimationClip) {
	a.Clip = clip
	a.Frame = 0
	a.Timer = 0
}

// Advance moves the frame index forward by dt seconds. One-shot clips hold
// their last frame.
func (a *AnimationData) Advance(dt float64) {
	if a.Clip.Frames <= 0 || a.Clip.FrameDuration <= 0 {
		return
	}

	a.Timer += dt
	for a.Timer >= a.Clip.FrameDuration {
		a.Timer -= a.Clip.FrameDuration
		if a.Frame < a.Clip.Frames-1 {
			a.Frame++
		} else if a.Clip.Loop {
			a.Frame = 0
		}
	}
}

// Finished reports whether a one-shot clip has reached its last frame.
func (a *AnimationData) Finished() bool {
	return !a.Clip.Loop && a.Frame >= a.Clip.Frames-1
}

var Animation = donburi.NewComponentType[AnimationData]()
