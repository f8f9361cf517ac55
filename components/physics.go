package components

import (
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PhysicsData is the body every moving entity owns, plus the parameters the
// shared integrator runs it with.
type PhysicsData struct {
	Body   gamemath.Body
	Params gamemath.Params
	Last   gamemath.StepResult // result of the most recent integration
}

var Physics = donburi.NewComponentType[PhysicsData]()
