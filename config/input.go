package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDash
	ActionRestart
	ActionPause
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionMoveLeft:
		return "left"
	case ActionMoveRight:
		return "right"
	case ActionJump:
		return "jump"
	case ActionDash:
		return "dash"
	case ActionRestart:
		return "restart"
	case ActionPause:
		return "pause"
	}
	return "none"
}

// ParseAction maps a script or binding name to an action.
func ParseAction(name string) (ActionID, bool) {
	for a := ActionNone + 1; a < ActionCount; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return ActionNone, false
}
