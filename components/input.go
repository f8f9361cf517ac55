package components

import "github.com/yohamta/donburi"

// IntentData is the abstract input the knight consumes each tick. Requests
// are edge-triggered: the knight system clears them once read.
type IntentData struct {
	TargetVX         float64
	JumpRequested    bool
	DashRequested    bool
	RestartRequested bool
	PauseRequested   bool
}

var Intent = donburi.NewComponentType[IntentData]()
