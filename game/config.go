package game

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the simulation tuning values
type Config struct {
	// HalfWidth is the horizontal wrap-around bound; the playfield spans [-HalfWidth, HalfWidth]
	HalfWidth float64 `yaml:"half_width"`

	// HalfHeight is the vertical wrap-around bound
	HalfHeight float64 `yaml:"half_height"`

	// SpawnWidth and SpawnHeight define the frame hazards are spawned on.
	// This frame is not centered on the origin, unlike the wrap bounds.
	SpawnWidth  float64 `yaml:"spawn_width"`
	SpawnHeight float64 `yaml:"spawn_height"`

	// PlayerAcceleration is the thrust in units per second squared
	PlayerAcceleration float64 `yaml:"player_acceleration"`

	// PlayerMaxSpeed caps the player's velocity magnitude
	PlayerMaxSpeed float64 `yaml:"player_max_speed"`

	// PlayerFriction is subtracted from the speed once per tick, independent of the frame delta
	PlayerFriction float64 `yaml:"player_friction"`

	// PlayerStopSpeed is the speed below which the player comes to rest
	PlayerStopSpeed float64 `yaml:"player_stop_speed"`

	// PlayerTurnRate in radians per second
	PlayerTurnRate float64 `yaml:"player_turn_rate"`

	// PlayerExtent is the player's collision box size
	PlayerExtent float64 `yaml:"player_extent"`

	// StartingLives at the start of every session
	StartingLives int `yaml:"starting_lives"`

	// HazardSpawnInterval between two spawned asteroids
	HazardSpawnInterval time.Duration `yaml:"hazard_spawn_interval"`

	// HazardSpeed of freshly spawned asteroids
	HazardSpeed float64 `yaml:"hazard_speed"`

	// HazardSize tier of freshly spawned asteroids
	HazardSize int `yaml:"hazard_size"`

	// HazardUnitExtent is the collision box size of a size-1 asteroid; larger tiers scale linearly
	HazardUnitExtent float64 `yaml:"hazard_unit_extent"`

	// SplitAngle in degrees between a parent asteroid and each child
	SplitAngle float64 `yaml:"split_angle"`

	// SplitSpeedFactor multiplies the parent's speed for the children
	SplitSpeedFactor float64 `yaml:"split_speed_factor"`

	// SplitPoints awarded when an asteroid larger than size 1 is shot
	SplitPoints int `yaml:"split_points"`

	// BulletSpeed in units per second
	BulletSpeed float64 `yaml:"bullet_speed"`

	// BulletExtent is the bullet's collision box size
	BulletExtent float64 `yaml:"bullet_extent"`

	// FireCooldown between automatic shots while fire is held
	FireCooldown time.Duration `yaml:"fire_cooldown"`
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		HalfWidth:           640.0,
		HalfHeight:          360.0,
		SpawnWidth:          1280.0,
		SpawnHeight:         720.0,
		PlayerAcceleration:  500.0,
		PlayerMaxSpeed:      500.0,
		PlayerFriction:      1.0,
		PlayerStopSpeed:     0.2,
		PlayerTurnRate:      2.0,
		PlayerExtent:        1.0,
		StartingLives:       3,
		HazardSpawnInterval: 2 * time.Second,
		HazardSpeed:         100.0,
		HazardSize:          3,
		HazardUnitExtent:    32.0,
		SplitAngle:          45.0,
		SplitSpeedFactor:    2.0,
		SplitPoints:         100,
		BulletSpeed:         1000.0,
		BulletExtent:        12.0,
		FireCooldown:        300 * time.Millisecond,
	}
}

// Bounds returns the wrap-around rectangle
func (c Config) Bounds() Bounds {
	return Bounds{HalfWidth: c.HalfWidth, HalfHeight: c.HalfHeight}
}

// Validate checks that every value is usable by the simulation
func (c Config) Validate() error {
	var errs []error
	finite := map[string]float64{
		"half_width":          c.HalfWidth,
		"half_height":         c.HalfHeight,
		"spawn_width":         c.SpawnWidth,
		"spawn_height":        c.SpawnHeight,
		"player_acceleration": c.PlayerAcceleration,
		"player_max_speed":    c.PlayerMaxSpeed,
		"player_friction":     c.PlayerFriction,
		"player_stop_speed":   c.PlayerStopSpeed,
		"player_turn_rate":    c.PlayerTurnRate,
		"player_extent":       c.PlayerExtent,
		"hazard_speed":        c.HazardSpeed,
		"hazard_unit_extent":  c.HazardUnitExtent,
		"split_angle":         c.SplitAngle,
		"split_speed_factor":  c.SplitSpeedFactor,
		"bullet_speed":        c.BulletSpeed,
		"bullet_extent":       c.BulletExtent,
	}
	for _, name := range slices.Sorted(maps.Keys(finite)) {
		if v := finite[name]; math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %v", name, v))
		}
	}

	positive := map[string]float64{
		"half_width":         c.HalfWidth,
		"half_height":        c.HalfHeight,
		"spawn_width":        c.SpawnWidth,
		"spawn_height":       c.SpawnHeight,
		"player_max_speed":   c.PlayerMaxSpeed,
		"player_extent":      c.PlayerExtent,
		"hazard_speed":       c.HazardSpeed,
		"hazard_unit_extent": c.HazardUnitExtent,
		"split_speed_factor": c.SplitSpeedFactor,
		"bullet_speed":       c.BulletSpeed,
		"bullet_extent":      c.BulletExtent,
	}
	for _, name := range slices.Sorted(maps.Keys(positive)) {
		if v := positive[name]; !(v > 0) && !math.IsNaN(v) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, positive[name]))
		}
	}
	if c.PlayerAcceleration < 0 || c.PlayerFriction < 0 || c.PlayerStopSpeed < 0 || c.PlayerTurnRate < 0 {
		errs = append(errs, errors.New("player acceleration, friction, stop speed and turn rate must not be negative"))
	}
	if c.StartingLives < 0 {
		errs = append(errs, fmt.Errorf("starting_lives must not be negative, got %d", c.StartingLives))
	}
	if c.HazardSize < MinAsteroidSize || c.HazardSize > MaxAsteroidSize {
		errs = append(errs, fmt.Errorf("hazard_size must be in [%d, %d], got %d", MinAsteroidSize, MaxAsteroidSize, c.HazardSize))
	}
	if c.SplitPoints < 0 {
		errs = append(errs, fmt.Errorf("split_points must not be negative, got %d", c.SplitPoints))
	}
	if c.HazardSpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("hazard_spawn_interval must be positive, got %s", c.HazardSpawnInterval))
	}
	if c.FireCooldown <= 0 {
		errs = append(errs, fmt.Errorf("fire_cooldown must be positive, got %s", c.FireCooldown))
	}
	return errors.Join(errs...)
}

// LoadConfig reads YAML tuning on top of DefaultConfig; keys that are absent keep their defaults
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads YAML tuning from path
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}
