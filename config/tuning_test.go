package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreTuning puts the active configuration back after a test applies one.
func restoreTuning(t *testing.T) {
	saved := CurrentTuning()
	t.Cleanup(saved.Apply)
}

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, CurrentTuning().Validate())
	assert.Less(t, Physics.AirFriction, Physics.GroundFriction)
	assert.Less(t, Physics.GroundFriction, Knight.Acceleration)
	assert.Greater(t, Knight.InvulnDuration, Knight.HitDuration)
}

func TestEmbeddedTuningMatchesDefaults(t *testing.T) {
	parsed, err := ParseTuning(defaultTuningYAML, CurrentTuning())
	require.NoError(t, err)
	assert.Equal(t, CurrentTuning(), parsed)
}

func TestParseTuningOverlaysPartialYAML(t *testing.T) {
	base := CurrentTuning()

	got, err := ParseTuning([]byte("knight:\n  max_speed: 3.0\ncamera:\n  dead_zone: 32\n"), base)
	require.NoError(t, err)

	assert.Equal(t, 3.0, got.Knight.MaxSpeed)
	assert.Equal(t, 32.0, got.Camera.DeadZone)
	assert.Equal(t, base.Knight.JumpForce, got.Knight.JumpForce)
	assert.Equal(t, base.Screen, got.Screen)
}

func TestParseTuningRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero tps", "screen:\n  tps: 0\n"},
		{"fall speed tunnels", "physics:\n  max_fall_speed: 16\n"},
		{"dash tunnels", "knight:\n  dash_speed: 20\n"},
		{"friction above accel", "physics:\n  ground_friction: 0.5\n"},
		{"air friction above ground", "physics:\n  air_friction: 0.2\n"},
		{"short invulnerability", "knight:\n  invuln_duration: 0.1\n"},
		{"no enemies", "enemy:\n  max_enemies: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml), CurrentTuning())
			assert.ErrorIs(t, err, ErrInvalidTuning)
		})
	}
}

func TestParseTuningRejectsMalformedYAML(t *testing.T) {
	_, err := ParseTuning([]byte("knight: [1, 2"), CurrentTuning())
	assert.Error(t, err)
}

func TestLoadTuningFromCustomPath(t *testing.T) {
	restoreTuning(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("knight:\n  starting_lives: 5\n"), 0o644))

	source, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 5, Knight.StartingLives)
}

func TestLoadTuningMissingCustomPath(t *testing.T) {
	restoreTuning(t)

	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadTuningWarnsOnBrokenUserFile(t *testing.T) {
	restoreTuning(t)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	dir := filepath.Join(home, ".knightfall")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tuning.yaml"), []byte("knight: [1, 2"), 0o644))

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	source, err := LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, "embedded", source)
	assert.Contains(t, buf.String(), "ignoring tuning file")
	assert.Contains(t, buf.String(), filepath.Join(dir, "tuning.yaml"))
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "taking_damage", TakingDamage.String())
	assert.Equal(t, "unknown", StateID(99).String())
	assert.True(t, Dying.Locked())
	assert.False(t, Jumping.Locked())
	assert.Equal(t, "stomped", EnemyStomped.String())
}

func TestParseAction(t *testing.T) {
	a, ok := ParseAction("dash")
	assert.True(t, ok)
	assert.Equal(t, ActionDash, a)

	_, ok = ParseAction("fly")
	assert.False(t, ok)
}
