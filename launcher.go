package main

import (
	"fmt"
	"time"

	"asteroids/game"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Launcher adapts the simulation to ebiten's frame loop
type Launcher struct {
	sim      *game.Simulation
	snap     game.Snapshot
	input    game.Input
	sprites  *spriteSet
	ui       *hud
	stars    *starfield
	debris   *ParticleSystem
	debug    debugState
	profiler *Profiler
	log      *zap.Logger

	lastUpdate time.Time
	startedAt  time.Time

	// FPS readout, refreshed every fpsSampleInterval
	fps          float64
	fpsTimer     float64
	fpsFrames    int
	prevAltEnter bool
}

// NewLauncher loads assets and wraps sim for ebiten.RunGame.
// profiler may be nil.
func NewLauncher(sim *game.Simulation, assetsDir string, profiler *Profiler, logger *zap.Logger) *Launcher {
	now := time.Now()
	return &Launcher{
		sim:        sim,
		snap:       sim.Snapshot(),
		sprites:    loadSprites(assetsDir, logger),
		ui:         newHUD(assetsDir, logger),
		stars:      newStarfield(now.UnixNano()),
		debris:     NewDebrisParticleSystem(now.UnixNano()),
		profiler:   profiler,
		log:        logger,
		lastUpdate: now,
		startedAt:  now,
	}
}

// Update steps the simulation once per ebiten tick
func (l *Launcher) Update() error {
	now := time.Now()
	dt := now.Sub(l.lastUpdate).Seconds()
	l.lastUpdate = now

	// Clamp delta time to prevent large jumps
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	l.handleWindowKeys()
	l.sampleFPS(dt)

	l.input = readInput()
	if err := l.sim.Step(dt, l.input); err != nil {
		return err
	}
	l.snap = l.sim.Snapshot()
	l.stars.update(dt, playerVelocity(l.snap))

	l.debris.Update(dt)
	if l.snap.Phase == game.PhasePlaying {
		for _, at := range l.sim.LastCollisions().Impacts {
			l.debris.Burst(at)
		}
	}
	return nil
}

// Draw renders the latest snapshot
func (l *Launcher) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	l.stars.draw(screen)
	drawEntities(screen, l.snap, l.sprites, l.input)
	l.debris.Draw(screen)

	if l.debug.showHitboxes {
		drawHitboxes(screen, l.snap, l.sim.LastCollisions())
	}
	l.ui.draw(screen, l.snap)
	l.ui.drawFPS(screen, l.fps, len(l.snap.Entities))
}

// Layout keeps the logical screen at the playfield size; ebiten scales it to the window
func (l *Launcher) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (l *Launcher) sampleFPS(dt float64) {
	l.fpsTimer += dt
	l.fpsFrames++
	if l.fpsTimer < fpsSampleInterval {
		return
	}
	l.fps = float64(l.fpsFrames) / l.fpsTimer
	l.fpsFrames = 0
	l.fpsTimer = 0

	if l.profiler == nil || time.Since(l.startedAt) < profileWarmup || l.fps >= profileFPSThreshold {
		return
	}
	reason := fmt.Sprintf("fps%.0f-entities%d", l.fps, len(l.snap.Entities))
	if err := l.profiler.Capture(reason); err != nil {
		l.log.Debug("profile skipped", zap.Error(err))
	}
}

func playerVelocity(snap game.Snapshot) game.Vector2 {
	for _, v := range snap.Entities {
		if v.Kind == game.KindPlayer {
			return v.Velocity
		}
	}
	return game.Vector2{}
}
