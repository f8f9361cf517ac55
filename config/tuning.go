package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/tuning.yaml
var defaultTuningYAML []byte

// ErrInvalidTuning is returned when a tuning file holds values the
// simulation cannot run with.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the overridable subset of the configuration, as stored in YAML.
type Tuning struct {
	Screen  Config        `yaml:"screen"`
	Physics PhysicsConfig `yaml:"physics"`
	Knight  KnightConfig  `yaml:"knight"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Camera  CameraConfig  `yaml:"camera"`
	HUD     HUDConfig     `yaml:"hud"`
	Debug   DebugConfig   `yaml:"debug"`
}

// CurrentTuning snapshots the active configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Screen:  *C,
		Physics: Physics,
		Knight:  Knight,
		Enemy:   Enemy,
		Camera:  Camera,
		HUD:     HUD,
		Debug:   Debug,
	}
}

// Apply makes t the active configuration.
func (t Tuning) Apply() {
	screen := t.Screen
	C = &screen
	Physics = t.Physics
	Knight = t.Knight
	Enemy = t.Enemy
	Camera = t.Camera
	HUD = t.HUD
	Debug = t.Debug
}

// Validate checks the values the simulation depends on.
func (t Tuning) Validate() error {
	switch {
	case t.Screen.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive", ErrInvalidTuning)
	case t.Screen.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive", ErrInvalidTuning)
	case t.Screen.Width <= 0 || t.Screen.Height <= 0:
		return fmt.Errorf("%w: viewport must be positive", ErrInvalidTuning)
	case t.Physics.MaxFallSpeed >= float64(t.Screen.TileSize):
		return fmt.Errorf("%w: max_fall_speed must stay below one tile per tick", ErrInvalidTuning)
	case t.Knight.DashSpeed > float64(t.Screen.TileSize) || t.Knight.MaxSpeed > float64(t.Screen.TileSize):
		return fmt.Errorf("%w: horizontal speed must not exceed one tile per tick", ErrInvalidTuning)
	case t.Knight.Acceleration <= t.Physics.GroundFriction:
		return fmt.Errorf("%w: acceleration must exceed ground friction", ErrInvalidTuning)
	case t.Physics.GroundFriction <= t.Physics.AirFriction:
		return fmt.Errorf("%w: ground friction must exceed air friction", ErrInvalidTuning)
	case t.Knight.InvulnDuration < t.Knight.HitDuration:
		return fmt.Errorf("%w: invuln_duration must outlast hit_duration", ErrInvalidTuning)
	case t.Knight.StartingLives <= 0:
		return fmt.Errorf("%w: starting_lives must be positive", ErrInvalidTuning)
	case t.Enemy.MaxEnemies <= 0:
		return fmt.Errorf("%w: max_enemies must be positive", ErrInvalidTuning)
	}
	return nil
}

// ParseTuning overlays YAML onto base. Keys missing from data keep base's
// values.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning loads and applies tuning overrides. It returns where the values
// came from.
// Search order: customPath -> ~/.knightfall/tuning.yaml -> ./configs/tuning.yaml -> embedded default
func LoadTuning(customPath string) (string, error) {
	base := CurrentTuning()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		t, err := ParseTuning(data, base)
		if err != nil {
			return "", fmt.Errorf("%s: %w", customPath, err)
		}
		t.Apply()
		return customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userTuningPath(), filepath.Join("configs", "tuning.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		t, err := ParseTuning(data, base)
		if err != nil {
			log.Warn("ignoring tuning file", "path", path, "err", err)
			continue
		}
		t.Apply()
		return path, nil
	}

	// Use embedded default YAML
	t, err := ParseTuning(defaultTuningYAML, base)
	if err != nil {
		// Keep the compiled-in values
		log.Warn("ignoring embedded tuning", "err", err)
		return "defaults", nil
	}
	t.Apply()
	return "embedded", nil
}

// userTuningPath returns the path to the user tuning file, or empty if home is unavailable.
func userTuningPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".knightfall", "tuning.yaml")
}
