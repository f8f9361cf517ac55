package components

import (
	cfg "github.com/automoto/knightfall/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects for whoever plays them (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
	Dropped    int // effects discarded because the queue was full
}

var Audio = donburi.NewComponentType[AudioData]()
