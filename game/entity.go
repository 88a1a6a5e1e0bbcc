package game

import (
	"fmt"
	"math"
)

// EntityID is the handle issued by the World when an entity is spawned
type EntityID uint64

// InvalidEntityID is never issued by the World
const InvalidEntityID EntityID = 0

// EntityKind identifies what an entity is for presentation and system dispatch
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindAsteroid
	KindBullet
	KindText
)

// String returns the kind name used in logs and snapshots
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// CollisionTag selects the collision semantics of an entity
type CollisionTag int

const (
	TagNone CollisionTag = iota
	TagHazard
	TagProjectile
	TagPlayer
)

// String returns the tag name
func (t CollisionTag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagHazard:
		return "hazard"
	case TagProjectile:
		return "projectile"
	case TagPlayer:
		return "player"
	default:
		return fmt.Sprintf("tag(%d)", int(t))
	}
}

// Asteroid size tiers
const (
	MinAsteroidSize = 1
	MaxAsteroidSize = 3
)

// FacingUp is the canonical player orientation in a y-up world
const FacingUp = math.Pi / 2

// Entity is any live object owned by the World
type Entity struct {
	// ID is assigned by World.Spawn
	ID EntityID

	// Kind of entity
	Kind EntityKind

	// Collider decides how the resolver treats overlaps
	Collider CollisionTag

	// Position in world coordinates, origin at the screen center, y up
	Position Vector2

	// Rotation in radians, 0 points along +X
	Rotation float64

	// Velocity in units per second (player only)
	Velocity Vector2

	// Speed along Rotation in units per second (asteroids and bullets)
	Speed float64

	// Size tier 1..3 (asteroids only)
	Size int

	// Extent is the full collision box width and height
	Extent Vector2

	// Scale is the sprite scale handed to the renderer
	Scale Vector2

	// Text content for KindText entities
	Text string

	// Label tells the presentation layer which line a text entity is
	Label string

	// Scope is the phase whose exit despawns this entity
	Scope Phase
}

// NewPlayer creates the player entity at the origin facing up
func NewPlayer(cfg Config) *Entity {
	return &Entity{
		Kind:     KindPlayer,
		Collider: TagPlayer,
		Rotation: FacingUp,
		Extent:   Vector2{X: cfg.PlayerExtent, Y: cfg.PlayerExtent},
		Scale:    Vector2{X: 1, Y: 1},
		Scope:    PhasePlaying,
	}
}

// NewAsteroid creates a hazard of the given size tier
func NewAsteroid(cfg Config, pos Vector2, rotation, speed float64, size int) (*Entity, error) {
	if size < MinAsteroidSize || size > MaxAsteroidSize {
		return nil, &InvariantError{Op: "new asteroid", Err: fmt.Errorf("%w: %d", ErrInvalidSize, size)}
	}
	extent := cfg.HazardUnitExtent * float64(size)
	return &Entity{
		Kind:     KindAsteroid,
		Collider: TagHazard,
		Position: pos,
		Rotation: rotation,
		Speed:    speed,
		Size:     size,
		Extent:   Vector2{X: extent, Y: extent},
		Scale:    Vector2{X: float64(size), Y: float64(size)},
		Scope:    PhasePlaying,
	}, nil
}

// NewBullet creates a projectile travelling along rotation
func NewBullet(cfg Config, pos Vector2, rotation float64) *Entity {
	return &Entity{
		Kind:     KindBullet,
		Collider: TagProjectile,
		Position: pos,
		Rotation: rotation,
		Speed:    cfg.BulletSpeed,
		Extent:   Vector2{X: cfg.BulletExtent, Y: cfg.BulletExtent},
		Scale:    Vector2{X: cfg.BulletExtent, Y: cfg.BulletExtent},
		Scope:    PhasePlaying,
	}
}

// NewText creates a display-only entity scoped to a phase
func NewText(scope Phase, label, text string) *Entity {
	return &Entity{
		Kind:     KindText,
		Collider: TagNone,
		Text:     text,
		Label:    label,
		Scale:    Vector2{X: 1, Y: 1},
		Scope:    scope,
	}
}

// HalfExtent returns half the collision box size
func (e *Entity) HalfExtent() Vector2 {
	return e.Extent.Scale(0.5)
}

// Heading returns the unit vector along the entity's rotation
func (e *Entity) Heading() Vector2 {
	return FromAngle(e.Rotation)
}
