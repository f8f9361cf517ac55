package config

import "image/color"

// Config holds the screen and grid dimensions.
type Config struct {
	Width    int `yaml:"width"` // viewport width in pixels
	Height   int `yaml:"height"`
	TPS      int `yaml:"tps"` // simulation ticks per second
	TileSize int `yaml:"tile_size"`
	Scale    int `yaml:"scale"` // window scale factor

	MapWidth  int `yaml:"map_width"` // grid size every level is padded to, in tiles
	MapHeight int `yaml:"map_height"`

	MaxCatchUpTicks int `yaml:"max_catch_up_ticks"` // ticks a single frame may run before time is dropped
}

// PhysicsConfig contains the constants shared by every body.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"` // pixels per tick per tick
	MaxFallSpeed float64 `yaml:"max_fall_speed"`

	GroundFriction float64 `yaml:"ground_friction"`
	AirFriction    float64 `yaml:"air_friction"`
}

// KnightConfig contains all player-related configuration values
type KnightConfig struct {
	// Movement
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`  // also the run speed requested by input
	JumpForce    float64 `yaml:"jump_force"` // negative is up

	// Dash
	DashSpeed    float64 `yaml:"dash_speed"`
	DashDuration float64 `yaml:"dash_duration"` // seconds
	DashCooldown float64 `yaml:"dash_cooldown"` // seconds

	// Damage
	StartingLives   int     `yaml:"starting_lives"`
	HitDuration     float64 `yaml:"hit_duration"`      // seconds locked in the hit animation
	DeathDuration   float64 `yaml:"death_duration"`    // seconds before the death pose becomes final
	InvulnDuration  float64 `yaml:"invuln_duration"`   // seconds, outlasts HitDuration
	HitVelocityDamp float64 `yaml:"hit_velocity_damp"` // vx multiplier on taking damage
	StompBounce     float64 `yaml:"stomp_bounce"`      // vy applied after a stomp

	// Visuals
	FacingThreshold float64 `yaml:"facing_threshold"` // |vx| above which facing follows movement
	RunThreshold    float64 `yaml:"run_threshold"`    // |vx| above which a grounded knight is running
	FlickerTicks    int     `yaml:"flicker_ticks"`    // ticks per visibility toggle while invulnerable

	// Dimensions
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`

	// Default spawn tile, used when the level has no player marker
	SpawnCol int `yaml:"spawn_col"`
	SpawnRow int `yaml:"spawn_row"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Speed          float64 `yaml:"speed"`
	StartDirection float64 `yaml:"start_direction"`
	DeathDuration  float64 `yaml:"death_duration"` // seconds spent squashed before removal

	// Stomp band around the enemy's top edge
	StompAbove float64 `yaml:"stomp_above"`
	StompBelow float64 `yaml:"stomp_below"`

	// Squash tween played while stomped
	SquashScale float32 `yaml:"squash_scale"`

	MaxEnemies      int     `yaml:"max_enemies"`
	CleanupInterval float64 `yaml:"cleanup_interval"` // seconds between dead enemy compaction

	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSpeed    float64 `yaml:"follow_speed"` // base gain toward target (0.0-1.0)
	MaxFollowSpeed float64 `yaml:"max_follow_speed"`
	DeadZone       float64 `yaml:"dead_zone"`      // horizontal dead zone width in pixels
	DistanceScale  float64 `yaml:"distance_scale"` // delta at which the gain doubles

	DashFollowSpeed    float64 `yaml:"dash_follow_speed"`
	DashMaxFollowSpeed float64 `yaml:"dash_max_follow_speed"`
	DashDeadZone       float64 `yaml:"dash_dead_zone"`
	DashDistanceScale  float64 `yaml:"dash_distance_scale"`
	DashAlignBoost     float64 `yaml:"dash_align_boost"` // extra gain when the dash runs toward the target
	DashAlignMax       float64 `yaml:"dash_align_max"`

	VerticalDeadZone   float64 `yaml:"vertical_dead_zone"`
	VerticalSpeedScale float64 `yaml:"vertical_speed_scale"` // fraction of FollowSpeed used vertically
	VerticalMaxSpeed   float64 `yaml:"vertical_max_speed"`

	PredictionTicks float64 `yaml:"prediction_ticks"` // ticks of dash velocity to lead by
	MaxPrediction   float64 `yaml:"max_prediction"`

	HorizontalAnchor float64 `yaml:"horizontal_anchor"` // target sits at this fraction of the viewport
	TriggerOffset    float64 `yaml:"trigger_offset"`    // bias while standing on a camera trigger
}

// AnimationClip describes one looping or one-shot animation.
type AnimationClip struct {
	Frames        int
	FrameDuration float64 // seconds
	Loop          bool
}

// AnimationConfig holds the frame tables for every animated state.
type AnimationConfig struct {
	Knight    map[StateID]AnimationClip
	EnemyWalk AnimationClip
	EnemyHit  AnimationClip
}

// HUDConfig contains overlay settings for the debug renderer.
type HUDConfig struct {
	HintDuration float64 `yaml:"hint_duration"` // seconds an ability hint stays on screen
}

// DebugConfig contains debug flags.
type DebugConfig struct {
	ShowGrid   bool `yaml:"show_grid"`
	ShowBodies bool `yaml:"show_bodies"`
}

var C *Config
var Physics PhysicsConfig
var Knight KnightConfig
var Enemy EnemyConfig
var Camera CameraConfig
var Animation AnimationConfig
var HUD HUDConfig
var Debug DebugConfig

// Colors used by the debug renderer, keyed by tile code.
var (
	Sky          = color.RGBA{R: 92, G: 148, B: 252, A: 255}
	TileColors   map[byte]color.RGBA
	KnightColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	EnemyColor   = color.RGBA{R: 150, G: 80, B: 40, A: 255}
	HUDTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:           320,
		Height:          176,
		TPS:             60,
		TileSize:        16,
		Scale:           3,
		MapWidth:        200,
		MapHeight:       15,
		MaxCatchUpTicks: 5,
	}

	Physics = PhysicsConfig{
		Gravity:        0.4,
		MaxFallSpeed:   10.0,
		GroundFriction: 0.14,
		AirFriction:    0.05,
	}

	Knight = KnightConfig{
		// Movement
		Acceleration: 0.35,
		MaxSpeed:     2.2,
		JumpForce:    -7.0,

		// Dash
		DashSpeed:    6.0,
		DashDuration: 0.18,
		DashCooldown: 0.5,

		// Damage
		StartingLives:   3,
		HitDuration:     0.6,
		DeathDuration:   1.2,
		InvulnDuration:  2.0,
		HitVelocityDamp: 0.3,
		StompBounce:     -6.0,

		// Visuals
		FacingThreshold: 0.1,
		RunThreshold:    0.1,
		FlickerTicks:    6,

		// Dimensions
		CollisionWidth:  15,
		CollisionHeight: 20,

		SpawnCol: 2,
		SpawnRow: 6,
	}

	Enemy = EnemyConfig{
		Speed:          1.0,
		StartDirection: DirectionLeft,
		DeathDuration:  1.0,

		StompAbove: 4,
		StompBelow: 10,

		SquashScale: 0.3,

		MaxEnemies:      20,
		CleanupInterval: 1.0,

		CollisionWidth:  16,
		CollisionHeight: 16,
	}

	Camera = CameraConfig{
		FollowSpeed:    0.12,
		MaxFollowSpeed: 0.3,
		DeadZone:       48,
		DistanceScale:  100,

		DashFollowSpeed:    0.65,
		DashMaxFollowSpeed: 0.8,
		DashDeadZone:       24,
		DashDistanceScale:  50,
		DashAlignBoost:     1.3,
		DashAlignMax:       0.9,

		VerticalDeadZone:   126,
		VerticalSpeedScale: 0.15,
		VerticalMaxSpeed:   0.15,

		PredictionTicks: 8,
		MaxPrediction:   80,

		HorizontalAnchor: 1.0 / 3.0,
		TriggerOffset:    15,
	}

	Animation = AnimationConfig{
		Knight: map[StateID]AnimationClip{
			Idle:         {Frames: 4, FrameDuration: 0.1, Loop: true},
			Running:      {Frames: 16, FrameDuration: 0.1, Loop: true},
			Jumping:      {Frames: 4, FrameDuration: 0.1, Loop: true},
			TakingDamage: {Frames: 4, FrameDuration: 0.1},
			Dying:        {Frames: 4, FrameDuration: 0.1},
		},
		EnemyWalk: AnimationClip{Frames: 4, FrameDuration: 0.15, Loop: true},
		EnemyHit:  AnimationClip{Frames: 4, FrameDuration: 0.15},
	}

	HUD = HUDConfig{
		HintDuration: 3.0,
	}

	Debug = DebugConfig{
		ShowGrid:   false,
		ShowBodies: false,
	}

	TileColors = map[byte]color.RGBA{
		'#': {R: 110, G: 110, B: 120, A: 255},
		'G': {R: 60, G: 170, B: 60, A: 255},
		'M': {R: 120, G: 80, B: 50, A: 255},
		'B': {R: 92, G: 148, B: 252, A: 80},
		't': {R: 250, G: 210, B: 40, A: 255},
		'D': {R: 80, G: 220, B: 240, A: 255},
		'F': {R: 240, G: 120, B: 220, A: 255},
		'T': {R: 200, G: 30, B: 30, A: 255},
		'S': {R: 240, G: 240, B: 240, A: 255},
		'C': {R: 92, G: 148, B: 252, A: 40},
	}
}

// TickDuration is the length of one simulation tick in seconds.
func TickDuration() float64 {
	return 1.0 / float64(C.TPS)
}
