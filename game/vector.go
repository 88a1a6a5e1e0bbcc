package game

import "math"

// Vector2 is a 2D vector used for positions and velocities
type Vector2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of v
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsFinite reports whether both components are finite numbers
func (v Vector2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// FromAngle returns the unit vector pointing along angle (radians, 0 = +X)
func FromAngle(angle float64) Vector2 {
	return Vector2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// NormalizeAngle wraps an angle to [-π, π).
// Angles already in range are returned unchanged.
func NormalizeAngle(angle float64) float64 {
	if angle >= -math.Pi && angle < math.Pi {
		return angle
	}
	a := math.Mod(angle+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a - math.Pi
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
