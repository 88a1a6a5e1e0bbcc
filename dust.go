package main

import (
	"math/rand"

	"asteroids/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// star is a single background dust particle in screen coordinates
type star struct {
	x, y   float64
	speed  float64
	radius float64
}

// starfield is a parallax dust layer drifting against the player's motion
type starfield struct {
	stars []star
}

func newStarfield(seed int64) *starfield {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{
			x:      rng.Float64() * screenWidth,
			y:      rng.Float64() * screenHeight,
			speed:  starMinSpeed + rng.Float64()*starSpeedRange,
			radius: 0.5 + rng.Float64()*(starMaxRadius-0.5),
		}
	}
	return &starfield{stars: stars}
}

// update moves dust opposite to the player's velocity and wraps it around the screen
func (f *starfield) update(dt float64, vel game.Vector2) {
	for i := range f.stars {
		s := &f.stars[i]
		// World y is up, screen y is down
		s.x -= vel.X * dt * s.speed
		s.y += vel.Y * dt * s.speed

		if s.x < 0 {
			s.x += screenWidth
		}
		if s.x >= screenWidth {
			s.x -= screenWidth
		}
		if s.y < 0 {
			s.y += screenHeight
		}
		if s.y >= screenHeight {
			s.y -= screenHeight
		}
	}
}

func (f *starfield) draw(screen *ebiten.Image) {
	for _, s := range f.stars {
		vector.DrawFilledCircle(screen, float32(s.x), float32(s.y), float32(s.radius), colorStar, true)
	}
}
