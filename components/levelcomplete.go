package components

import "github.com/yohamta/donburi"

// LevelCompleteData latches once the knight reaches the goal
type LevelCompleteData struct {
	IsComplete bool
	Tick       uint64 // tick the goal was reached on
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
