package main

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
	"time"

	"asteroids/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSoakSim(t *testing.T, seed int64) *game.Simulation {
	t.Helper()
	sim, err := game.New(game.DefaultConfig(), rand.New(rand.NewSource(seed)), zap.NewNop())
	require.NoError(t, err)
	return sim
}

func TestSoakKeepsInvariants(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		sim := newSoakSim(t, seed)

		stats, err := soak(sim, newScript(seed), newRecorder(nil, 60), 60*90, 1.0/60)
		require.NoError(t, err, "seed %d", seed)

		assert.Equal(t, uint64(60*90), stats.Frames)
		assert.GreaterOrEqual(t, stats.Sessions, 1)
		assert.Positive(t, stats.MaxEntities)
		assert.Equal(t, 90, stats.Samples)
	}
}

func TestSoakIsDeterministic(t *testing.T) {
	run := func() soakStats {
		stats, err := soak(newSoakSim(t, 42), newScript(42), newRecorder(nil, 10), 60*30, 1.0/60)
		require.NoError(t, err)
		return stats
	}

	first, second := run(), run()
	assert.Equal(t, first.Digest, second.Digest)
	assert.Equal(t, first.BestPoints, second.BestPoints)

	other, err := soak(newSoakSim(t, 43), newScript(43), newRecorder(nil, 10), 60*30, 1.0/60)
	require.NoError(t, err)
	assert.NotEqual(t, first.Digest, other.Digest)
}

func TestRecordingRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	sim := newSoakSim(t, 5)

	stats, err := soak(sim, newScript(5), newRecorder(&buf, 30), 300, 1.0/60)
	require.NoError(t, err)

	snaps, err := readRecording(&buf)
	require.NoError(t, err)
	require.Len(t, snaps, stats.Samples)
	require.Len(t, snaps, 10)

	last := snaps[len(snaps)-1]
	final := sim.Snapshot()
	assert.Equal(t, final.Phase, last.Phase)
	assert.Equal(t, final.SessionID, last.SessionID)
	assert.Equal(t, final.Points, last.Points)
	assert.Equal(t, len(final.Entities), len(last.Entities))
}

func TestScriptNavigatesMenus(t *testing.T) {
	sc := newScript(7)

	assert.Equal(t, game.Input{Confirm: true}, sc.next(game.PhaseMenu))
	assert.Equal(t, game.Input{Cancel: true}, sc.next(game.PhaseGameOver))
}

func TestScriptFirePressIsAnEdge(t *testing.T) {
	sc := newScript(11)
	prevHeld := false

	for i := 0; i < 1000; i++ {
		in := sc.next(game.PhasePlaying)
		assert.False(t, in.Confirm || in.Cancel)
		if in.FirePressed {
			assert.True(t, in.FireHeld)
			assert.False(t, prevHeld, "frame %d", i)
		}
		prevHeld = in.FireHeld
	}
}

func TestRunRejectsBadFrameRate(t *testing.T) {
	assert.Error(t, run("", 1, time.Second, 0, newRecorder(nil, 1), zap.NewNop()))
}

func TestRunShortSoak(t *testing.T) {
	assert.NoError(t, run("", 5, 5*time.Second, 30, newRecorder(nil, 30), zap.NewNop()))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRunRecordedReportsFlushFailure(t *testing.T) {
	err := runRecorded(failingWriter{}, 30, func(rec *recorder) error {
		return run("", 5, time.Second, 30, rec, zap.NewNop())
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flush recording")
	assert.Contains(t, err.Error(), "disk full")
}

func TestRunRecordedFlushesEverySample(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runRecorded(&buf, 30, func(rec *recorder) error {
		return run("", 5, 2*time.Second, 30, rec, zap.NewNop())
	}))

	snaps, err := readRecording(&buf)
	require.NoError(t, err)
	assert.NotEmpty(t, snaps)
}
