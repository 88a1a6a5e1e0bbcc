package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	return NewContext(DefaultConfig(), rand.New(rand.NewSource(1)), zap.NewNop())
}

func newTestSimulation(t *testing.T, seed int64) *Simulation {
	t.Helper()
	sim, err := New(DefaultConfig(), rand.New(rand.NewSource(seed)), zap.NewNop())
	require.NoError(t, err)
	return sim
}

func startPlaying(t *testing.T, sim *Simulation) {
	t.Helper()
	require.NoError(t, sim.Step(0, Input{Confirm: true}))
	require.Equal(t, PhasePlaying, sim.Phase())
}

func mustAsteroid(t *testing.T, cfg Config, pos Vector2, rotation, speed float64, size int) *Entity {
	t.Helper()
	a, err := NewAsteroid(cfg, pos, rotation, speed, size)
	require.NoError(t, err)
	return a
}

func entitiesOfKind(w *World, kind EntityKind) []*Entity {
	var out []*Entity
	w.Each(func(e *Entity) {
		if e.Kind == kind {
			out = append(out, e)
		}
	})
	return out
}
