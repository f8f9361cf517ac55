package config

// StateID is the gameplay and animation state of the knight.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jumping
	TakingDamage
	Dying
)

var stateNames = map[StateID]string{
	StateNone:    "none",
	Idle:         "idle",
	Running:      "running",
	Jumping:      "jumping",
	TakingDamage: "taking_damage",
	Dying:        "dying",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Locked reports whether the state preempts movement and only ends on its
// own timer.
func (s StateID) Locked() bool {
	return s == TakingDamage || s == Dying
}

// EnemyStateID is the lifecycle of an enemy.
type EnemyStateID int

const (
	EnemyAlive EnemyStateID = iota
	EnemyStomped
	EnemyDead
)

func (s EnemyStateID) String() string {
	switch s {
	case EnemyAlive:
		return "alive"
	case EnemyStomped:
		return "stomped"
	case EnemyDead:
		return "dead"
	}
	return "unknown"
}
