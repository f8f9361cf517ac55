package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundHurt
	SoundPowerUp
	SoundGoal
	SoundEnemyKilled
)

// MaxPendingSFX bounds the queue the audio collaborator drains each frame.
const MaxPendingSFX = 32

func (s SoundID) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundHurt:
		return "hurt"
	case SoundPowerUp:
		return "power_up"
	case SoundGoal:
		return "goal"
	case SoundEnemyKilled:
		return "enemy_killed"
	}
	return "none"
}
