package systems

import (
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/yohamta/donburi/ecs"
)

// PlaySFX queues a sound effect for the shell to play. Effects past the
// queue limit are counted and dropped.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	if len(audioData.PendingSFX) >= cfg.MaxPendingSFX {
		audioData.Dropped++
		return
	}
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// DrainSFX returns the queued effects in order and empties the queue.
func DrainSFX(e *ecs.ECS) []cfg.SoundID {
	audioData := GetOrCreateAudio(e)
	if len(audioData.PendingSFX) == 0 {
		return nil
	}
	sounds := make([]cfg.SoundID, len(audioData.PendingSFX))
	copy(sounds, audioData.PendingSFX)
	audioData.PendingSFX = audioData.PendingSFX[:0]
	return sounds
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
