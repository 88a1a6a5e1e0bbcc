package main

import (
	"fmt"
	"math/rand"

	"asteroids/game"
)

// soakStats summarizes a headless run
type soakStats struct {
	Frames      uint64
	Sessions    int
	BestPoints  int
	MaxEntities int
	FinalPhase  game.Phase
	Samples     int
	Digest      uint64
}

// script produces pseudo-random player input that holds each choice for a while,
// the way a person leans on keys
type script struct {
	rng  *rand.Rand
	held game.Input
	left int
	fire bool
}

func newScript(seed int64) *script {
	return &script{rng: rand.New(rand.NewSource(seed ^ 0x5eed))}
}

// next returns the input for one frame of the given phase
func (s *script) next(phase game.Phase) game.Input {
	switch phase {
	case game.PhaseMenu:
		return game.Input{Confirm: true}
	case game.PhaseGameOver:
		return game.Input{Cancel: true}
	}

	if s.left <= 0 {
		s.left = 10 + s.rng.Intn(50)
		s.held = game.Input{
			ThrustForward: s.rng.Intn(3) == 0,
			ThrustBack:    s.rng.Intn(8) == 0,
			RotateLeft:    s.rng.Intn(3) == 0,
			RotateRight:   s.rng.Intn(3) == 0,
			FireHeld:      s.rng.Intn(2) == 0,
		}
	}
	s.left--

	in := s.held
	in.FirePressed = in.FireHeld && !s.fire
	s.fire = in.FireHeld
	return in
}

// soak steps sim for frames frames of dt seconds and checks the session invariants after each one
func soak(sim *game.Simulation, sc *script, rec *recorder, frames int, dt float64) (soakStats, error) {
	var stats soakStats
	for i := 0; i < frames; i++ {
		before := sim.Phase()
		if err := sim.Step(dt, sc.next(before)); err != nil {
			return finish(stats, sim, rec), err
		}
		if before != game.PhasePlaying && sim.Phase() == game.PhasePlaying {
			stats.Sessions++
		}
		if err := checkFrame(sim); err != nil {
			return finish(stats, sim, rec), fmt.Errorf("frame %d: %w", sim.Frame(), err)
		}
		if err := rec.observe(sim.Frame(), sim.Snapshot()); err != nil {
			return finish(stats, sim, rec), err
		}

		board := sim.Scoreboard()
		if board.Points > stats.BestPoints {
			stats.BestPoints = board.Points
		}
		if n := sim.World().Len(); n > stats.MaxEntities {
			stats.MaxEntities = n
		}
	}
	return finish(stats, sim, rec), nil
}

func finish(stats soakStats, sim *game.Simulation, rec *recorder) soakStats {
	stats.Frames = sim.Frame()
	stats.FinalPhase = sim.Phase()
	stats.Samples = rec.samples
	stats.Digest = rec.Sum()
	return stats
}

// checkFrame verifies what must hold between frames
func checkFrame(sim *game.Simulation) error {
	world := sim.World()
	cfg := sim.Config()
	bounds := cfg.Bounds()

	switch sim.Phase() {
	case game.PhasePlaying:
		player, err := world.Player()
		if err != nil {
			return err
		}
		if speed := player.Velocity.Length(); speed > cfg.PlayerMaxSpeed+1e-9 {
			return fmt.Errorf("player speed %v above cap", speed)
		}
	default:
		if n := world.Count(game.KindPlayer) + world.Count(game.KindAsteroid) + world.Count(game.KindBullet); n != 0 {
			return fmt.Errorf("%d gameplay entities outside play", n)
		}
	}

	var err error
	world.Each(func(e *game.Entity) {
		if err != nil || e.Kind == game.KindText {
			return
		}
		if e.Kind == game.KindAsteroid && (e.Size < game.MinAsteroidSize || e.Size > game.MaxAsteroidSize) {
			err = fmt.Errorf("asteroid %d has size %d", e.ID, e.Size)
			return
		}
		if !bounds.Contains(e.Position) {
			err = fmt.Errorf("%s %d at %v outside the playfield", e.Kind, e.ID, e.Position)
		}
	})
	return err
}
