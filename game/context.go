package game

import (
	"math/rand"

	"go.uber.org/zap"
)

// Context is the simulation state handed to every system call.
// It replaces ambient globals so systems can be tested in isolation.
type Context struct {
	Config     Config
	World      *World
	Scoreboard *Scoreboard
	Session    *Session
	Hazards    *HazardSpawner
	Fire       *FireControl
	Rand       *rand.Rand
	Log        *zap.Logger

	// Delta is the elapsed time of the current frame in seconds
	Delta float64

	// Input is the control snapshot of the current frame
	Input Input

	// shots requested by fire control this frame
	shots int

	// deaths signalled by the collision resolver this frame
	deaths int
}

// NewContext wires a fresh world, scoreboard, session and spawners together.
// The session starts without any phase hooks; Simulation installs them.
func NewContext(cfg Config, rng *rand.Rand, logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{
		Config:     cfg,
		World:      NewWorld(),
		Scoreboard: &Scoreboard{Lives: cfg.StartingLives},
		Session:    NewSession(PhaseMenu),
		Hazards:    NewHazardSpawner(cfg),
		Fire:       NewFireControl(cfg),
		Rand:       rng,
		Log:        logger,
	}
}
