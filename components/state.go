package components

import (
	"github.com/automoto/knightfall/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds left in a timed state
}

// Enter switches to next and arms the state timer. Re-entering the current
// state is a no-op.
func (s *StateData) Enter(next config.StateID, duration float64) bool {
	if s.CurrentState == next {
		return false
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = duration
	return true
}

var State = donburi.NewComponentType[StateData]()
