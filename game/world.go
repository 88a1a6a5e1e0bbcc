package game

// World owns every live entity.
// Entities keep their spawn order so snapshots are stable from frame to frame.
type World struct {
	entities []*Entity
	index    map[EntityID]int
	nextID   EntityID
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		entities: make([]*Entity, 0, 256),
		index:    make(map[EntityID]int, 256),
		nextID:   InvalidEntityID,
	}
}

// Spawn registers an entity and returns its handle
func (w *World) Spawn(e *Entity) EntityID {
	w.nextID++
	e.ID = w.nextID
	w.index[e.ID] = len(w.entities)
	w.entities = append(w.entities, e)
	return e.ID
}

// Despawn removes the entity with the given handle.
// It returns false if the handle is unknown or already removed.
func (w *World) Despawn(id EntityID) bool {
	i, ok := w.index[id]
	if !ok {
		return false
	}
	copy(w.entities[i:], w.entities[i+1:])
	w.entities[len(w.entities)-1] = nil
	w.entities = w.entities[:len(w.entities)-1]
	delete(w.index, id)
	for j := i; j < len(w.entities); j++ {
		w.index[w.entities[j].ID] = j
	}
	return true
}

// DespawnWhere removes every entity matching pred and returns how many were removed
func (w *World) DespawnWhere(pred func(*Entity) bool) int {
	kept := w.entities[:0]
	removed := 0
	for _, e := range w.entities {
		if pred(e) {
			delete(w.index, e.ID)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so removed entities can be collected
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept
	for i, e := range w.entities {
		w.index[e.ID] = i
	}
	return removed
}

// Get returns the entity with the given handle
func (w *World) Get(id EntityID) (*Entity, bool) {
	i, ok := w.index[id]
	if !ok {
		return nil, false
	}
	return w.entities[i], true
}

// Each calls fn for every live entity in spawn order.
// fn must not spawn or despawn.
func (w *World) Each(fn func(*Entity)) {
	for _, e := range w.entities {
		fn(e)
	}
}

// Entities returns a copy of the live entity list
func (w *World) Entities() []*Entity {
	out := make([]*Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// Collidables returns the live entities carrying the given collision tag
func (w *World) Collidables(tag CollisionTag) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		if e.Collider == tag {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many live entities are of the given kind
func (w *World) Count(kind EntityKind) int {
	n := 0
	for _, e := range w.entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of live entities
func (w *World) Len() int {
	return len(w.entities)
}

// Player returns the single player entity.
// Zero or several players is an invariant violation.
func (w *World) Player() (*Entity, error) {
	var player *Entity
	for _, e := range w.entities {
		if e.Kind != KindPlayer {
			continue
		}
		if player != nil {
			return nil, &InvariantError{Op: "player lookup", Err: ErrMultiplePlayers}
		}
		player = e
	}
	if player == nil {
		return nil, &InvariantError{Op: "player lookup", Err: ErrNoPlayer}
	}
	return player, nil
}
