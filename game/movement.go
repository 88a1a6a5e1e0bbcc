package game

// Bounds is the wrap-around rectangle centered on the origin
type Bounds struct {
	HalfWidth  float64
	HalfHeight float64
}

// Wrap teleports a position that left the playfield to the opposite edge.
// Each axis is handled on its own; positions on or inside the edge are unchanged.
func (b Bounds) Wrap(p Vector2) Vector2 {
	if p.X < -b.HalfWidth {
		p.X = b.HalfWidth
	} else if p.X > b.HalfWidth {
		p.X = -b.HalfWidth
	}

	if p.Y < -b.HalfHeight {
		p.Y = b.HalfHeight
	} else if p.Y > b.HalfHeight {
		p.Y = -b.HalfHeight
	}
	return p
}

// Contains reports whether p lies on or inside the bounds
func (b Bounds) Contains(p Vector2) bool {
	return p.X >= -b.HalfWidth && p.X <= b.HalfWidth && p.Y >= -b.HalfHeight && p.Y <= b.HalfHeight
}

// SteerPlayer applies thrust and rotation input to the player.
// Thrust uses the facing from before this frame's rotation.
func SteerPlayer(e *Entity, in Input, dt float64, cfg Config) {
	forward := e.Heading()
	accel := cfg.PlayerAcceleration * dt

	if in.ThrustForward {
		e.Velocity = e.Velocity.Add(forward.Scale(accel))
	}
	if in.ThrustBack {
		e.Velocity = e.Velocity.Add(forward.Scale(-accel))
	}

	if in.RotateLeft {
		e.Rotation = NormalizeAngle(e.Rotation + cfg.PlayerTurnRate*dt)
	}
	if in.RotateRight {
		e.Rotation = NormalizeAngle(e.Rotation - cfg.PlayerTurnRate*dt)
	}
}

// IntegratePlayer caps or decays the player's velocity, moves it and wraps it around the playfield
func IntegratePlayer(e *Entity, dt float64, cfg Config) {
	speed := e.Velocity.Length()
	switch {
	case speed > cfg.PlayerMaxSpeed:
		e.Velocity = e.Velocity.Scale(cfg.PlayerMaxSpeed / speed)
	case speed >= cfg.PlayerStopSpeed && speed > 0:
		// Fixed per-tick deceleration, deliberately not scaled by dt
		e.Velocity = e.Velocity.Scale((speed - cfg.PlayerFriction) / speed)
	default:
		e.Velocity = Vector2{}
	}

	e.Position = cfg.Bounds().Wrap(e.Position.Add(e.Velocity.Scale(dt)))
}

// MoveStraight advances an asteroid or bullet along its fixed facing and wraps it
func MoveStraight(e *Entity, dt float64, bounds Bounds) {
	e.Position = bounds.Wrap(e.Position.Add(e.Heading().Scale(e.Speed * dt)))
}
