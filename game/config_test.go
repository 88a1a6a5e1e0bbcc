package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	doc := `
starting_lives: 5
fire_cooldown: 150ms
hazard_spawn_interval: 1.5s
hazard_size: 2
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)

	want := DefaultConfig()
	want.StartingLives = 5
	want.FireCooldown = 150 * time.Millisecond
	want.HazardSpawnInterval = 1500 * time.Millisecond
	want.HazardSize = 2
	assert.Equal(t, want, cfg)
}

func TestLoadConfigEmptyDocument(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("warp_speed: 9\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config")
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"size too large", "hazard_size: 4\n", "hazard_size"},
		{"size too small", "hazard_size: 0\n", "hazard_size"},
		{"zero width", "half_width: 0\n", "half_width"},
		{"negative lives", "starting_lives: -1\n", "starting_lives"},
		{"zero cooldown", "fire_cooldown: 0s\n", "fire_cooldown"},
		{"negative friction", "player_friction: -1\n", "friction"},
		{"infinite turn rate", "player_turn_rate: .inf\n", "player_turn_rate must be finite"},
		{"nan friction", "player_friction: .nan\n", "player_friction must be finite"},
		{"nan acceleration", "player_acceleration: .nan\n", "player_acceleration must be finite"},
		{"nan split angle", "split_angle: .nan\n", "split_angle must be finite"},
		{"infinite split angle", "split_angle: -.inf\n", "split_angle must be finite"},
		{"infinite bullet speed", "bullet_speed: .inf\n", "bullet_speed must be finite"},
		{"nan width", "half_width: .nan\n", "half_width must be finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validate config")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BulletSpeed = 0
	cfg.SplitPoints = -5
	cfg.HazardSpawnInterval = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bullet_speed")
	assert.Contains(t, err.Error(), "split_points")
	assert.Contains(t, err.Error(), "hazard_spawn_interval")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asteroids.yaml")
	require.NoError(t, os.WriteFile(path, []byte("split_points: 250\n"), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.SplitPoints)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HazardSize = 7

	sim, err := New(cfg, nil, nil)
	assert.Nil(t, sim)
	assert.Error(t, err)
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join("..", "config.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
