package scenes

import (
	"sync"
	"time"

	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/fixedstep"
	"github.com/automoto/knightfall/shared/leveldata"
	"github.com/automoto/knightfall/systems"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene owns one level's world and the fixed-step loop that
// advances it.
type PlatformerScene struct {
	ecs  *ecs.ECS
	grid *leveldata.Grid
	loop *fixedstep.Loop
	last time.Time
	once sync.Once
}

func NewPlatformerScene(grid *leveldata.Grid) *PlatformerScene {
	return &PlatformerScene{grid: grid}
}

// ECS returns the scene's world, building it on first use.
func (ps *PlatformerScene) ECS() *ecs.ECS {
	ps.once.Do(ps.configure)
	return ps.ecs
}

// Step runs exactly one simulation tick.
func (ps *PlatformerScene) Step() {
	e := ps.ECS()
	systems.GetClock(e).DT = ps.loop.DT()
	e.Update()
}

// Advance feeds elapsed wall time to the fixed-step loop and returns the
// number of ticks it ran.
func (ps *PlatformerScene) Advance(elapsed time.Duration) int {
	ps.ECS()
	return ps.loop.Advance(elapsed, func(float64) {
		ps.Step()
	})
}

// Update reads the keyboard, advances the simulation by the real time since
// the last frame and hands queued sounds to the audio collaborator.
func (ps *PlatformerScene) Update() error {
	e := ps.ECS()
	systems.ReadKeyboard(e)

	now := time.Now()
	elapsed := ps.loop.Step()
	if !ps.last.IsZero() {
		elapsed = now.Sub(ps.last)
	}
	ps.last = now
	ps.Advance(elapsed)

	for _, sound := range systems.DrainSFX(e) {
		log.Debug("sfx", "sound", sound)
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	ps.ECS().Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.loop = fixedstep.New(cfg.C.TPS, cfg.C.MaxCatchUpTicks)

	ecs := ecs.NewECS(donburi.NewWorld())

	systems.AddSystems(ecs)
	systems.AddRenderers(ecs)

	ps.ecs = ecs

	factory.CreateWorld(ps.ecs, ps.grid)
	systems.SubscribeEvents(ps.ecs)
	systems.ShowStartHint(ps.ecs)
}
