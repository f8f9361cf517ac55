package components

import "github.com/yohamta/donburi"

type HUDData struct {
	Hint      string
	HintTimer float64
}

var HUD = donburi.NewComponentType[HUDData]()
