package components

import "github.com/yohamta/donburi"

// ClockData carries the fixed step every timer advances by.
type ClockData struct {
	DT      float64 // seconds per tick
	Tick    uint64
	Elapsed float64
}

var Clock = donburi.NewComponentType[ClockData]()
