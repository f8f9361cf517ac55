package scenes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/systems"
)

// ScriptStep holds one action for a number of ticks.
type ScriptStep struct {
	Action cfg.ActionID // ActionNone waits
	Ticks  int
}

// ParseScript reads a comma separated list of actions such as
// "right*30,jump,right*10,dash". A count after '*' repeats the action for
// that many ticks; "wait" or "idle" holds no input.
func ParseScript(script string) ([]ScriptStep, error) {
	var steps []ScriptStep
	for _, field := range strings.Split(script, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		name, count := field, 1
		if i := strings.IndexByte(field, '*'); i >= 0 {
			n, err := strconv.Atoi(field[i+1:])
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("script step %q: bad repeat count", field)
			}
			name, count = field[:i], n
		}

		action := cfg.ActionNone
		if name != "wait" && name != "idle" {
			a, ok := cfg.ParseAction(name)
			if !ok {
				return nil, fmt.Errorf("script step %q: unknown action %q", field, name)
			}
			action = a
		}
		steps = append(steps, ScriptStep{Action: action, Ticks: count})
	}
	return steps, nil
}

// RunScript plays steps one tick at a time, then idles until ticks have run
// in total. It returns the number of ticks run.
func (ps *PlatformerScene) RunScript(steps []ScriptStep, ticks int) int {
	e := ps.ECS()
	run := 0
	for _, step := range steps {
		for i := 0; i < step.Ticks && run < ticks; i++ {
			applyAction(ps, step.Action)
			ps.Step()
			systems.DrainSFX(e)
			run++
		}
	}
	for run < ticks {
		systems.SetTargetVelocity(e, 0)
		ps.Step()
		systems.DrainSFX(e)
		run++
	}
	return run
}

func applyAction(ps *PlatformerScene, action cfg.ActionID) {
	e := ps.ECS()
	systems.SetTargetVelocity(e, 0)

	switch action {
	case cfg.ActionMoveLeft:
		systems.SetTargetVelocity(e, -cfg.Knight.MaxSpeed)
	case cfg.ActionMoveRight:
		systems.SetTargetVelocity(e, cfg.Knight.MaxSpeed)
	case cfg.ActionJump:
		systems.RequestJump(e)
	case cfg.ActionDash:
		systems.RequestDash(e)
	case cfg.ActionRestart:
		systems.RequestRestart(e)
	case cfg.ActionPause:
		systems.RequestPause(e)
	}
}

// Snapshot is the observable state of the simulation after a tick.
type Snapshot struct {
	Tick          uint64
	X, Y          float64
	VX, VY        float64
	Grounded      bool
	State         cfg.StateID
	Frame         int
	Lives         int
	Alive         bool
	FacingRight   bool
	CanDoubleJump bool
	CanDash       bool
	CameraX       float64
	CameraY       float64
	Enemies       int
	LevelComplete bool
}

// Snapshot captures the knight, camera and level state.
func (ps *PlatformerScene) Snapshot() Snapshot {
	e := ps.ECS()
	snap := Snapshot{
		Tick:          systems.GetClock(e).Tick,
		LevelComplete: systems.GetOrCreateLevelComplete(e).IsComplete,
	}

	if knightEntry, ok := systems.GetKnight(e); ok {
		body := components.Physics.Get(knightEntry).Body
		knight := components.Knight.Get(knightEntry)
		snap.X, snap.Y = body.X, body.Y
		snap.VX, snap.VY = body.VX, body.VY
		snap.Grounded = body.Grounded
		snap.State = components.State.Get(knightEntry).CurrentState
		snap.Frame = components.Animation.Get(knightEntry).Frame
		snap.Lives = knight.Lives
		snap.Alive = knight.Alive
		snap.FacingRight = knight.FacingRight
		snap.CanDoubleJump = knight.CanDoubleJump
		snap.CanDash = knight.CanDash
	}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		snap.CameraX, snap.CameraY = camera.Position.X, camera.Position.Y
	}
	if rosterEntry, ok := components.Roster.First(e.World); ok {
		for _, enemy := range components.Roster.Get(rosterEntry).Enemies {
			if e.World.Valid(enemy) && components.Enemy.Get(e.World.Entry(enemy)).State == cfg.EnemyAlive {
				snap.Enemies++
			}
		}
	}
	return snap
}
