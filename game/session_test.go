package game

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSimulationStartsInMenu(t *testing.T) {
	sim := newTestSimulation(t, 1)

	snap := sim.Snapshot()
	assert.Equal(t, PhaseMenu, snap.Phase)
	assert.Empty(t, snap.SessionID)

	title, ok := snap.Text(LabelTitle)
	require.True(t, ok)
	assert.Equal(t, "Asteroids", title)
	prompt, ok := snap.Text(LabelPrompt)
	require.True(t, ok)
	assert.Equal(t, "PRESS [J] PLAY", prompt)

	assert.Zero(t, snap.Count(KindPlayer))
}

func TestConfirmStartsPlaying(t *testing.T) {
	sim := newTestSimulation(t, 1)
	startPlaying(t, sim)

	assert.Equal(t, Scoreboard{Points: 0, Lives: 3}, sim.Scoreboard())

	player, err := sim.World().Player()
	require.NoError(t, err)
	assert.Equal(t, Vector2{}, player.Position)
	assert.Equal(t, Vector2{}, player.Velocity)
	assert.Equal(t, FacingUp, player.Rotation)

	snap := sim.Snapshot()
	assert.NotEmpty(t, snap.SessionID)
	_, ok := snap.Text(LabelTitle)
	assert.False(t, ok, "menu text is removed when play starts")

	score, ok := snap.Text(LabelScore)
	require.True(t, ok)
	assert.Equal(t, "SCORE: 0", score)
	lives, ok := snap.Text(LabelLives)
	require.True(t, ok)
	assert.Equal(t, "LIVES: 3", lives)
}

func TestMenuIgnoresOtherInput(t *testing.T) {
	sim := newTestSimulation(t, 1)

	require.NoError(t, sim.Step(0.5, Input{Cancel: true, FirePressed: true, ThrustForward: true}))

	assert.Equal(t, PhaseMenu, sim.Phase())
	assert.Zero(t, sim.World().Count(KindBullet))
}

func TestSessionRejectsInvalidTransitions(t *testing.T) {
	session := NewSession(PhaseMenu)

	assert.ErrorIs(t, session.Request(PhaseGameOver), ErrInvalidTransition)
	assert.ErrorIs(t, session.Request(PhaseMenu), ErrInvalidTransition)

	require.NoError(t, session.Request(PhasePlaying))
	require.NoError(t, session.Request(PhasePlaying), "repeating a pending request is allowed")

	pending, ok := session.Pending()
	assert.True(t, ok)
	assert.Equal(t, PhasePlaying, pending)
}

func TestSessionRunsHooksInOrder(t *testing.T) {
	ctx := newTestContext(t)
	session := NewSession(PhaseMenu)
	ctx.Session = session

	var calls []string
	record := func(name string) Action {
		return func(*Context) error {
			calls = append(calls, name)
			return nil
		}
	}
	session.OnEnter(PhaseMenu, record("enter menu"))
	session.OnUpdate(PhaseMenu, record("update menu"))
	session.OnExit(PhaseMenu, record("exit menu"))
	session.OnEnter(PhasePlaying, record("enter playing"))

	require.NoError(t, session.Start(ctx))
	require.NoError(t, session.Start(ctx))
	require.NoError(t, session.Update(ctx))
	require.NoError(t, session.Request(PhasePlaying))

	assert.Equal(t, PhaseMenu, session.Current(), "transitions wait for Apply")

	changed, err := session.Apply(ctx)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, PhasePlaying, session.Current())
	assert.NotEmpty(t, session.ID())

	changed, err = session.Apply(ctx)
	require.NoError(t, err)
	assert.False(t, changed)

	assert.Equal(t, []string{"enter menu", "update menu", "exit menu", "enter playing"}, calls)
}

func TestSessionStopsOnHookError(t *testing.T) {
	ctx := newTestContext(t)
	session := NewSession(PhaseMenu)
	ctx.Session = session

	boom := errors.New("boom")
	reached := false
	session.OnUpdate(PhaseMenu,
		func(*Context) error { return boom },
		func(*Context) error { reached = true; return nil },
	)

	assert.ErrorIs(t, session.Update(ctx), boom)
	assert.False(t, reached)
}

func TestLivesRunOutIntoGameOver(t *testing.T) {
	sim := newTestSimulation(t, 1)
	startPlaying(t, sim)
	cfg := DefaultConfig()
	sim.World().Spawn(mustAsteroid(t, cfg, Vector2{}, 0, 0, 1))

	for _, want := range []int{2, 1, 0} {
		require.NoError(t, sim.Step(0, Input{}))
		require.Equal(t, PhasePlaying, sim.Phase())
		assert.Equal(t, want, sim.Scoreboard().Lives)

		player, err := sim.World().Player()
		require.NoError(t, err)
		assert.Equal(t, Vector2{}, player.Position)
		assert.Equal(t, FacingUp, player.Rotation)
	}

	require.NoError(t, sim.Step(0, Input{}))
	assert.Equal(t, PhaseGameOver, sim.Phase())
	assert.Equal(t, -1, sim.Scoreboard().Lives)

	snap := sim.Snapshot()
	assert.Zero(t, snap.Count(KindPlayer))
	assert.Zero(t, snap.Count(KindAsteroid))
	title, ok := snap.Text(LabelTitle)
	require.True(t, ok)
	assert.Equal(t, "GAME OVER", title)
	prompt, ok := snap.Text(LabelPrompt)
	require.True(t, ok)
	assert.Equal(t, "PRESS [ESC] TO RETURN TO MENU", prompt)
}

func TestDeathResetsPlayerMotion(t *testing.T) {
	sim := newTestSimulation(t, 1)
	startPlaying(t, sim)

	player, err := sim.World().Player()
	require.NoError(t, err)
	player.Position = Vector2{X: 200, Y: 100}
	player.Velocity = Vector2{X: -40, Y: 0}
	player.Rotation = math.Pi / 8
	sim.World().Spawn(mustAsteroid(t, DefaultConfig(), Vector2{X: 200, Y: 100}, 0, 0, 2))

	require.NoError(t, sim.Step(0, Input{}))

	assert.Equal(t, 2, sim.Scoreboard().Lives)
	assert.Equal(t, Vector2{}, player.Position)
	assert.Equal(t, Vector2{}, player.Velocity)
	assert.Equal(t, FacingUp, player.Rotation)
}

func TestSimultaneousHitsCostOneLifeEach(t *testing.T) {
	sim := newTestSimulation(t, 1)
	startPlaying(t, sim)
	cfg := DefaultConfig()
	sim.World().Spawn(mustAsteroid(t, cfg, Vector2{X: 4}, 0, 0, 1))
	sim.World().Spawn(mustAsteroid(t, cfg, Vector2{X: -4}, 0, 0, 1))

	require.NoError(t, sim.Step(0, Input{}))

	assert.Equal(t, 1, sim.Scoreboard().Lives)
	assert.Equal(t, 2, sim.LastCollisions().DeathSignals)
	lives, ok := sim.Snapshot().Text(LabelLives)
	require.True(t, ok)
	assert.Equal(t, "LIVES: 1", lives)
}

func TestFinalDeathsInOneTickStillEndOnce(t *testing.T) {
	sim := newTestSimulation(t, 1)
	startPlaying(t, sim)
	cfg := DefaultConfig()
	for i := 0; i < 5; i++ {
		sim.World().Spawn(mustAsteroid(t, cfg, Vector2{X: float64(i)}, 0, 0, 1))
	}

	require.NoError(t, sim.Step(0, Input{}))

	assert.Equal(t, PhaseGameOver, sim.Phase())
	assert.Equal(t, -2, sim.Scoreboard().Lives)
}

func TestRoundTripResetsSession(t *testing.T) {
	sim := newTestSimulation(t, 3)
	startPlaying(t, sim)
	cfg := DefaultConfig()

	sim.World().Spawn(mustAsteroid(t, cfg, Vector2{X: 0, Y: 200}, 0, 0, 3))
	sim.World().Spawn(NewBullet(cfg, Vector2{X: 0, Y: 200}, math.Pi))
	require.NoError(t, sim.Step(0, Input{}))
	require.Equal(t, 100, sim.Scoreboard().Points)

	for i := 0; i < 4; i++ {
		sim.World().Spawn(mustAsteroid(t, cfg, Vector2{}, 0, 0, 1))
	}
	require.NoError(t, sim.Step(0, Input{}))
	require.Equal(t, PhaseGameOver, sim.Phase())

	require.NoError(t, sim.Step(0, Input{Confirm: true}))
	assert.Equal(t, PhaseGameOver, sim.Phase(), "confirm does nothing on the game over screen")
	assert.Equal(t, 100, sim.Scoreboard().Points)

	require.NoError(t, sim.Step(0, Input{Cancel: true}))
	assert.Equal(t, PhaseMenu, sim.Phase())
	assert.Empty(t, sim.Snapshot().SessionID)
	for _, kind := range []EntityKind{KindPlayer, KindAsteroid, KindBullet} {
		assert.Zero(t, sim.World().Count(kind), kind.String())
	}

	startPlaying(t, sim)
	assert.Equal(t, Scoreboard{Points: 0, Lives: 3}, sim.Scoreboard())
	assert.Equal(t, 1, sim.World().Count(KindPlayer))
	assert.Zero(t, sim.World().Count(KindAsteroid))
}

func TestMissingPlayerIsFatal(t *testing.T) {
	sim := newTestSimulation(t, 1)
	startPlaying(t, sim)
	sim.World().DespawnWhere(func(e *Entity) bool { return e.Kind == KindPlayer })

	err := sim.Step(0.1, Input{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoPlayer)

	var inv *InvariantError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "player lookup", inv.Op)
}

func TestDuplicatePlayerIsFatal(t *testing.T) {
	sim := newTestSimulation(t, 1)
	startPlaying(t, sim)
	sim.World().Spawn(NewPlayer(DefaultConfig()))

	assert.ErrorIs(t, sim.Step(0.1, Input{}), ErrMultiplePlayers)
}

func TestStepRejectsInvalidDelta(t *testing.T) {
	sim := newTestSimulation(t, 1)

	for _, dt := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, sim.Step(dt, Input{}), ErrInvalidDelta)
	}
	assert.Zero(t, sim.Frame())
}

func TestPhaseTransitionsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sim, err := New(DefaultConfig(), rand.New(rand.NewSource(1)), zap.New(core))
	require.NoError(t, err)

	startPlaying(t, sim)

	transitions := logs.FilterMessage("phase transition").All()
	require.Len(t, transitions, 1)
	fields := transitions[0].ContextMap()
	assert.Equal(t, "menu", fields["from"])
	assert.Equal(t, "playing", fields["to"])
	assert.Equal(t, sim.Snapshot().SessionID, fields["session"])

	assert.Equal(t, 1, logs.FilterMessage("session started").Len())
}

func TestDeathsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sim, err := New(DefaultConfig(), rand.New(rand.NewSource(1)), zap.New(core))
	require.NoError(t, err)
	startPlaying(t, sim)
	sim.World().Spawn(mustAsteroid(t, DefaultConfig(), Vector2{}, 0, 0, 1))

	require.NoError(t, sim.Step(0, Input{}))

	deaths := logs.FilterMessage("player died").All()
	require.Len(t, deaths, 1)
	assert.Equal(t, int64(2), deaths[0].ContextMap()["lives"])
}
