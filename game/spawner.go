package game

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// HazardSpawner creates a large asteroid on an edge of the spawn frame every interval
type HazardSpawner struct {
	timer *Timer
}

// NewHazardSpawner creates a spawner with a repeating timer
func NewHazardSpawner(cfg Config) *HazardSpawner {
	return &HazardSpawner{
		timer: NewTimer(cfg.HazardSpawnInterval, true),
	}
}

// Reset restarts the spawn countdown
func (s *HazardSpawner) Reset() {
	s.timer.Reset()
}

// Timer exposes the spawn countdown
func (s *HazardSpawner) Timer() *Timer {
	return s.timer
}

// Update advances the countdown and spawns at most one asteroid per frame
func (s *HazardSpawner) Update(ctx *Context) error {
	if !s.timer.Tick(secondsToDuration(ctx.Delta)).JustFinished() {
		return nil
	}

	pos, facing, err := hazardSpawnPoint(ctx)
	if err != nil {
		return err
	}

	cfg := ctx.Config
	asteroid, err := NewAsteroid(cfg, pos, facing, cfg.HazardSpeed, cfg.HazardSize)
	if err != nil {
		return err
	}
	id := ctx.World.Spawn(asteroid)
	ctx.Log.Debug("asteroid spawned",
		zap.Uint64("id", uint64(id)),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Float64("facing", facing),
	)
	return nil
}

// hazardSpawnPoint picks the right edge or the top edge of the spawn frame with equal odds,
// and a facing uniform in [-180°, 180°).
func hazardSpawnPoint(ctx *Context) (Vector2, float64, error) {
	rng := ctx.Rand
	if rng == nil {
		return Vector2{}, 0, ErrNoRandomSource
	}
	cfg := ctx.Config

	var pos Vector2
	if rng.Float64() < 0.5 {
		pos = Vector2{X: cfg.SpawnWidth, Y: rng.Float64() * cfg.SpawnHeight}
	} else {
		pos = Vector2{X: rng.Float64() * cfg.SpawnWidth, Y: cfg.SpawnHeight}
	}
	facing := Radians(-180 + 360*rng.Float64())

	if !pos.IsFinite() || math.IsNaN(facing) || math.IsInf(facing, 0) {
		return Vector2{}, 0, fmt.Errorf("%w: spawn at %v facing %v", ErrRandomSource, pos, facing)
	}
	return pos, facing, nil
}

// SpawnBullets fires the shots requested by fire control from the player's nose
func SpawnBullets(ctx *Context, player *Entity) {
	for i := 0; i < ctx.shots; i++ {
		ctx.World.Spawn(NewBullet(ctx.Config, player.Position, player.Rotation))
	}
	ctx.shots = 0
}

// splitAsteroid returns the two children of a destroyed asteroid larger than size 1
func splitAsteroid(cfg Config, parent *Entity) ([]*Entity, error) {
	if parent.Size <= MinAsteroidSize {
		return nil, nil
	}
	spread := Radians(cfg.SplitAngle)
	speed := parent.Speed * cfg.SplitSpeedFactor
	size := parent.Size - 1

	children := make([]*Entity, 0, 2)
	for _, offset := range []float64{spread, -spread} {
		child, err := NewAsteroid(cfg, parent.Position, parent.Rotation+offset, speed, size)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
