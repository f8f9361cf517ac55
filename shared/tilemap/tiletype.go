package tilemap

// TileType is the semantic meaning of a grid cell.
type TileType int

const (
	None TileType = iota
	Solid
	GroundTop
	GroundFill
	EnemyBarrier
	Goal
	AbilityDoubleJump
	AbilityDash
	Trap
	Checkpoint
	CameraTrigger
)

// Level codes. Space is an empty cell.
const (
	CodeEmpty         byte = ' '
	CodeSolid         byte = '#'
	CodeGroundTop     byte = 'G'
	CodeGroundFill    byte = 'M'
	CodeEnemyBarrier  byte = 'B'
	CodeGoal          byte = 't'
	CodeDoubleJump    byte = 'D'
	CodeDash          byte = 'F'
	CodeTrap          byte = 'T'
	CodeCheckpoint    byte = 'S'
	CodeCameraTrigger byte = 'C'
	CodeEnemySpawn    byte = 'E'
	CodePlayerSpawn   byte = 'P'
)

// ClassifyCode maps a level code to its tile type. Spawn markers and unknown
// codes are None.
func ClassifyCode(code byte) TileType {
	switch code {
	case CodeSolid:
		return Solid
	case CodeGroundTop:
		return GroundTop
	case CodeGroundFill:
		return GroundFill
	case CodeEnemyBarrier:
		return EnemyBarrier
	case CodeGoal:
		return Goal
	case CodeDoubleJump:
		return AbilityDoubleJump
	case CodeDash:
		return AbilityDash
	case CodeTrap:
		return Trap
	case CodeCheckpoint:
		return Checkpoint
	case CodeCameraTrigger:
		return CameraTrigger
	default:
		return None
	}
}

// BlocksCharacter reports whether the knight collides with the tile.
func (t TileType) BlocksCharacter() bool {
	switch t {
	case Solid, GroundTop, GroundFill:
		return true
	}
	return false
}

// BlocksEnemy reports whether an enemy collides with the tile. Barriers only
// stop enemies.
func (t TileType) BlocksEnemy() bool {
	return t == EnemyBarrier || t.BlocksCharacter()
}

// IsAbility reports whether the tile is a one-shot ability pickup.
func (t TileType) IsAbility() bool {
	return t == AbilityDoubleJump || t == AbilityDash
}

func (t TileType) String() string {
	switch t {
	case None:
		return "none"
	case Solid:
		return "solid"
	case GroundTop:
		return "ground_top"
	case GroundFill:
		return "ground_fill"
	case EnemyBarrier:
		return "enemy_barrier"
	case Goal:
		return "goal"
	case AbilityDoubleJump:
		return "double_jump"
	case AbilityDash:
		return "dash"
	case Trap:
		return "trap"
	case Checkpoint:
		return "checkpoint"
	case CameraTrigger:
		return "camera_trigger"
	default:
		return "unknown"
	}
}
