package systems

import (
	cfg "github.com/automoto/knightfall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// KeyBindings maps each action to the keys that trigger it.
var KeyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:  {ebiten.KeyArrowLeft},
	cfg.ActionMoveRight: {ebiten.KeyArrowRight},
	cfg.ActionJump:      {ebiten.KeySpace, ebiten.KeyArrowUp},
	cfg.ActionDash:      {ebiten.KeyD, ebiten.KeyShiftLeft},
	cfg.ActionRestart:   {ebiten.KeyR},
	cfg.ActionPause:     {ebiten.KeyP, ebiten.KeyEscape},
}

// ReadKeyboard translates the keyboard into knight intent. It runs once per
// frame, outside the fixed step, so a press is never lost between ticks.
func ReadKeyboard(e *ecs.ECS) {
	left := actionPressed(cfg.ActionMoveLeft)
	right := actionPressed(cfg.ActionMoveRight)

	switch {
	case left && !right:
		SetTargetVelocity(e, -cfg.Knight.MaxSpeed)
	case right && !left:
		SetTargetVelocity(e, cfg.Knight.MaxSpeed)
	default:
		SetTargetVelocity(e, 0)
	}

	if actionJustPressed(cfg.ActionJump) {
		RequestJump(e)
	}
	if actionJustPressed(cfg.ActionDash) {
		RequestDash(e)
	}
	if actionJustPressed(cfg.ActionRestart) {
		RequestRestart(e)
	}
	if actionJustPressed(cfg.ActionPause) {
		RequestPause(e)
	}
}

func actionPressed(action cfg.ActionID) bool {
	for _, key := range KeyBindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func actionJustPressed(action cfg.ActionID) bool {
	for _, key := range KeyBindings[action] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
