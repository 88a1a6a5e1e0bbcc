package game

import "go.uber.org/zap"

// CollisionReport summarizes what the resolver did in one frame
type CollisionReport struct {
	// Hits is the number of hazard/projectile pairs that overlapped
	Hits int

	// Splits is the number of hazards that broke into children
	Splits int

	// PointsAwarded during this frame
	PointsAwarded int

	// DeathSignals is one per hazard touching the player
	DeathSignals int

	// Impacts holds the hazard position of every hit, for effects
	Impacts []Vector2

	// Despawned entity handles, in resolution order
	Despawned []EntityID

	// Spawned child asteroid handles
	Spawned []EntityID
}

// CollisionSystem resolves hazard overlaps
type CollisionSystem struct{}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Overlaps reports whether the collision boxes of a and b intersect.
// Boxes that only touch along an edge do not overlap.
func Overlaps(a, b *Entity) bool {
	ha, hb := a.HalfExtent(), b.HalfExtent()
	return a.Position.X-ha.X < b.Position.X+hb.X &&
		a.Position.X+ha.X > b.Position.X-hb.X &&
		a.Position.Y-ha.Y < b.Position.Y+hb.Y &&
		a.Position.Y+ha.Y > b.Position.Y-hb.Y
}

// Resolve tests every hazard against every other collidable.
// All pairs are judged against the world as it was when resolution started;
// removals and child spawns are applied afterwards, so pair order never changes the outcome.
func (c *CollisionSystem) Resolve(ctx *Context) (CollisionReport, error) {
	var report CollisionReport

	world := ctx.World
	hazards := world.Collidables(TagHazard)
	if len(hazards) == 0 {
		return report, nil
	}

	others := make([]*Entity, 0, world.Len())
	world.Each(func(e *Entity) {
		if e.Collider != TagNone {
			others = append(others, e)
		}
	})

	marked := make(map[EntityID]bool)
	mark := func(id EntityID) {
		if !marked[id] {
			marked[id] = true
			report.Despawned = append(report.Despawned, id)
		}
	}

	var children []*Entity
	for _, hazard := range hazards {
		for _, other := range others {
			if other == hazard || !Overlaps(hazard, other) {
				continue
			}

			switch other.Collider {
			case TagHazard:
				// Asteroids pass through each other
			case TagProjectile:
				report.Hits++
				report.Impacts = append(report.Impacts, hazard.Position)
				mark(other.ID)
				mark(hazard.ID)

				split, err := splitAsteroid(ctx.Config, hazard)
				if err != nil {
					return report, err
				}
				if len(split) == 0 {
					continue
				}
				report.Splits++
				report.PointsAwarded += ctx.Config.SplitPoints
				ctx.Scoreboard.Award(ctx.Config.SplitPoints)
				children = append(children, split...)
			case TagPlayer:
				report.DeathSignals++
			case TagNone:
			}
		}
	}

	if len(marked) > 0 {
		world.DespawnWhere(func(e *Entity) bool {
			return marked[e.ID]
		})
	}
	for _, child := range children {
		report.Spawned = append(report.Spawned, world.Spawn(child))
	}

	if report.Hits > 0 || report.DeathSignals > 0 {
		ctx.Log.Debug("collisions resolved",
			zap.Int("hits", report.Hits),
			zap.Int("splits", report.Splits),
			zap.Int("points", report.PointsAwarded),
			zap.Int("death_signals", report.DeathSignals),
		)
	}
	return report, nil
}
