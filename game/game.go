package game

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// Simulation advances the game one frame at a time.
// It is driven synchronously by an external frame loop and never blocks.
type Simulation struct {
	ctx        *Context
	collisions *CollisionSystem

	// frame counts completed calls to Step
	frame uint64

	// lastReport is the collision outcome of the latest frame; empty outside Playing
	lastReport CollisionReport
}

// New creates a simulation sitting in the menu.
// rng is the only source of randomness; pass a seeded generator for reproducible runs.
func New(cfg Config, rng *rand.Rand, logger *zap.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if rng == nil {
		return nil, ErrNoRandomSource
	}

	s := &Simulation{
		ctx:        NewContext(cfg, rng, logger),
		collisions: NewCollisionSystem(),
	}
	s.installPhases()

	if err := s.ctx.Session.Start(s.ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// installPhases registers every phase's lifecycle hooks.
// Update hooks run in the order listed, which is the per-frame system order.
func (s *Simulation) installPhases() {
	session := s.ctx.Session

	session.OnEnter(PhaseMenu, spawnScreen(PhaseMenu, "Asteroids", "PRESS [J] PLAY"))
	session.OnUpdate(PhaseMenu, func(ctx *Context) error {
		if ctx.Input.Confirm {
			return ctx.Session.Request(PhasePlaying)
		}
		return nil
	})
	session.OnExit(PhaseMenu, despawnScope(PhaseMenu))

	session.OnEnter(PhasePlaying, setupPlaying)
	session.OnUpdate(PhasePlaying,
		controlPlayer,
		spawnEntities,
		moveEntities,
		s.resolveCollisions,
		handleDeaths,
		projectScoreboard,
	)
	session.OnExit(PhasePlaying, teardownPlaying)

	session.OnEnter(PhaseGameOver, spawnScreen(PhaseGameOver, "GAME OVER", "PRESS [ESC] TO RETURN TO MENU"))
	session.OnUpdate(PhaseGameOver, func(ctx *Context) error {
		if ctx.Input.Cancel {
			return ctx.Session.Request(PhaseMenu)
		}
		return nil
	})
	session.OnExit(PhaseGameOver, despawnScope(PhaseGameOver))
}

// Step advances the simulation by dt seconds using the given input.
// A returned error is fatal; the caller should stop the frame loop.
func (s *Simulation) Step(dt float64, in Input) error {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}

	ctx := s.ctx
	ctx.Delta = dt
	ctx.Input = in
	s.lastReport = CollisionReport{}

	if err := ctx.Session.Update(ctx); err != nil {
		return s.fail(err)
	}
	if _, err := ctx.Session.Apply(ctx); err != nil {
		return s.fail(err)
	}
	s.frame++
	return nil
}

func (s *Simulation) fail(err error) error {
	s.ctx.Log.Error("frame aborted",
		zap.Uint64("frame", s.frame),
		zap.String("phase", s.ctx.Session.Current().String()),
		zap.Error(err),
	)
	return fmt.Errorf("frame %d: %w", s.frame, err)
}

// Phase returns the active session phase
func (s *Simulation) Phase() Phase {
	return s.ctx.Session.Current()
}

// Config returns the tuning the simulation was created with
func (s *Simulation) Config() Config {
	return s.ctx.Config
}

// Scoreboard returns a copy of the current score and lives
func (s *Simulation) Scoreboard() Scoreboard {
	return *s.ctx.Scoreboard
}

// World exposes the entity store for drivers and tests
func (s *Simulation) World() *World {
	return s.ctx.World
}

// Frame returns how many frames have been stepped
func (s *Simulation) Frame() uint64 {
	return s.frame
}

// LastCollisions returns the collision report of the latest frame
func (s *Simulation) LastCollisions() CollisionReport {
	return s.lastReport
}

// Snapshot returns a read-only view of the current frame for presentation
func (s *Simulation) Snapshot() Snapshot {
	ctx := s.ctx
	views := make([]EntityView, 0, ctx.World.Len())
	ctx.World.Each(func(e *Entity) {
		views = append(views, viewOf(e))
	})
	return Snapshot{
		Phase:     ctx.Session.Current(),
		SessionID: ctx.Session.ID(),
		Entities:  views,
		Score:     ctx.Scoreboard.ScoreText(),
		Lives:     ctx.Scoreboard.LivesText(),
		Points:    ctx.Scoreboard.Points,
		LivesLeft: ctx.Scoreboard.Lives,
	}
}

// spawnScreen returns an enter hook that shows a title and a prompt for phase
func spawnScreen(phase Phase, title, prompt string) Action {
	return func(ctx *Context) error {
		ctx.World.Spawn(NewText(phase, LabelTitle, title))
		ctx.World.Spawn(NewText(phase, LabelPrompt, prompt))
		return nil
	}
}

// despawnScope returns an exit hook that removes everything scoped to phase
func despawnScope(phase Phase) Action {
	return func(ctx *Context) error {
		ctx.World.DespawnWhere(func(e *Entity) bool {
			return e.Scope == phase
		})
		return nil
	}
}

func setupPlaying(ctx *Context) error {
	ctx.Scoreboard.Reset(ctx.Config.StartingLives)
	ctx.Hazards.Reset()
	ctx.Fire.Reset()
	ctx.shots = 0
	ctx.deaths = 0

	ctx.World.Spawn(NewPlayer(ctx.Config))
	ctx.World.Spawn(NewText(PhasePlaying, LabelScore, ctx.Scoreboard.ScoreText()))
	ctx.World.Spawn(NewText(PhasePlaying, LabelLives, ctx.Scoreboard.LivesText()))

	if _, err := ctx.World.Player(); err != nil {
		return err
	}
	ctx.Log.Info("session started",
		zap.String("session", ctx.Session.ID()),
		zap.Int("lives", ctx.Scoreboard.Lives),
	)
	return nil
}

func teardownPlaying(ctx *Context) error {
	removed := ctx.World.DespawnWhere(func(e *Entity) bool {
		switch e.Kind {
		case KindPlayer, KindAsteroid, KindBullet:
			return true
		}
		return e.Scope == PhasePlaying
	})
	ctx.Log.Info("session ended",
		zap.String("session", ctx.Session.ID()),
		zap.Int("points", ctx.Scoreboard.Points),
		zap.Int("despawned", removed),
	)
	return nil
}

func controlPlayer(ctx *Context) error {
	player, err := ctx.World.Player()
	if err != nil {
		return err
	}
	SteerPlayer(player, ctx.Input, ctx.Delta, ctx.Config)
	ctx.shots = ctx.Fire.Update(ctx.Input, ctx.Delta)
	return nil
}

func spawnEntities(ctx *Context) error {
	if err := ctx.Hazards.Update(ctx); err != nil {
		return err
	}
	player, err := ctx.World.Player()
	if err != nil {
		return err
	}
	SpawnBullets(ctx, player)
	return nil
}

func moveEntities(ctx *Context) error {
	bounds := ctx.Config.Bounds()
	ctx.World.Each(func(e *Entity) {
		switch e.Kind {
		case KindPlayer:
			IntegratePlayer(e, ctx.Delta, ctx.Config)
		case KindAsteroid, KindBullet:
			MoveStraight(e, ctx.Delta, bounds)
		}
	})
	return nil
}

func (s *Simulation) resolveCollisions(ctx *Context) error {
	report, err := s.collisions.Resolve(ctx)
	s.lastReport = report
	if err != nil {
		return err
	}
	ctx.deaths += report.DeathSignals
	return nil
}

func handleDeaths(ctx *Context) error {
	signals := ctx.deaths
	ctx.deaths = 0
	return HandlePlayerDeaths(ctx, signals)
}

func projectScoreboard(ctx *Context) error {
	ctx.World.Each(func(e *Entity) {
		if e.Kind != KindText || e.Scope != PhasePlaying {
			return
		}
		switch e.Label {
		case LabelScore:
			e.Text = ctx.Scoreboard.ScoreText()
		case LabelLives:
			e.Text = ctx.Scoreboard.LivesText()
		}
	})
	return nil
}
