package main

import (
	"image/color"
	"math"
	"math/rand"

	"asteroids/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Particle represents a single debris particle
type Particle struct {
	pos      game.Vector2 // world position
	vel      game.Vector2 // velocity vector
	age      float64      // age in seconds
	lifetime float64      // total lifetime in seconds
	color    color.NRGBA
	size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// ParticleSystem emits short-lived debris bursts where asteroids are shot
type ParticleSystem struct {
	particles      []Particle
	maxParticles   int
	burstSize      int
	velocityMin    float64
	velocityMax    float64
	lifetimeMin    float64
	lifetimeMax    float64
	sizeMin        float64
	sizeMax        float64
	colorBase      color.NRGBA
	colorVariation color.NRGBA
	rng            *rand.Rand
}

// NewDebrisParticleSystem creates the particle system used for asteroid impacts
func NewDebrisParticleSystem(seed int64) *ParticleSystem {
	return &ParticleSystem{
		maxParticles:   600,
		burstSize:      24,
		velocityMin:    40.0,
		velocityMax:    160.0,
		lifetimeMin:    0.3,
		lifetimeMax:    0.8,
		sizeMin:        1.0,
		sizeMax:        2.5,
		colorBase:      color.NRGBA{R: 200, G: 170, B: 130, A: 255},
		colorVariation: color.NRGBA{R: 40, G: 40, B: 40, A: 0},
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// Burst emits one burst of particles at a world position
func (ps *ParticleSystem) Burst(at game.Vector2) {
	for i := 0; i < ps.burstSize && len(ps.particles) < ps.maxParticles; i++ {
		ps.emitParticle(at)
	}
}

// Update ages and moves particles, dropping the dead ones
func (ps *ParticleSystem) Update(dt float64) {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.age += dt
		p.pos = p.pos.Add(p.vel.Scale(dt))
		if p.IsAlive() {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// Len returns the number of live particles
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

func (ps *ParticleSystem) emitParticle(at game.Vector2) {
	rng := ps.rng
	speed := ps.velocityMin + rng.Float64()*(ps.velocityMax-ps.velocityMin)
	vel := game.FromAngle(rng.Float64() * 2 * math.Pi).Scale(speed)
	lifetime := ps.lifetimeMin + rng.Float64()*(ps.lifetimeMax-ps.lifetimeMin)
	size := ps.sizeMin + rng.Float64()*(ps.sizeMax-ps.sizeMin)

	vary := func(base, spread uint8) uint8 {
		return uint8(clamp(float64(base)+rng.Float64()*float64(spread)*2-float64(spread), 0, 255))
	}
	clr := color.NRGBA{
		R: vary(ps.colorBase.R, ps.colorVariation.R),
		G: vary(ps.colorBase.G, ps.colorVariation.G),
		B: vary(ps.colorBase.B, ps.colorVariation.B),
		A: ps.colorBase.A,
	}

	ps.particles = append(ps.particles, Particle{
		pos:      at,
		vel:      vel,
		lifetime: lifetime,
		color:    clr,
		size:     size,
	})
}

// Draw renders all particles, fading them out with age
func (ps *ParticleSystem) Draw(screen *ebiten.Image) {
	for _, p := range ps.particles {
		sx, sy := worldToScreen(p.pos)

		ageAlpha := clamp(1.0-(p.age/p.lifetime), 0, 1)
		particleColor := color.NRGBA{
			R: p.color.R,
			G: p.color.G,
			B: p.color.B,
			A: uint8(float64(p.color.A) * ageAlpha),
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(p.size), particleColor, true)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
