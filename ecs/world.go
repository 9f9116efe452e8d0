package ecs

import "github.com/milk9111/tilewalk/ecs/component"

// World owns entities and one component table per registered component type.
// All mutation happens on the simulation goroutine; there is no locking.
type World struct {
	entities entityStore
	tables   map[component.ID]*sparseSet
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{tables: map[component.ID]*sparseSet{}}
}

// CreateEntity allocates a new entity handle.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components. Returns
// false if the handle was already dead.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, table := range w.tables {
		table.remove(e)
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

func (w *World) table(id component.ID) *sparseSet {
	t, ok := w.tables[id]
	if !ok {
		t = &sparseSet{}
		w.tables[id] = t
	}
	return t
}

// AddComponent attaches (or replaces) a component value on an entity.
func (w *World) AddComponent(e Entity, id component.ID, v any) error {
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if v == nil {
		return component.ErrNilComponent
	}
	w.table(id).set(e, v)
	return nil
}

// GetComponent returns the raw component value for an entity.
func (w *World) GetComponent(e Entity, id component.ID) (any, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	return w.table(id).get(e)
}

// HasComponent reports whether the entity carries the component.
func (w *World) HasComponent(e Entity, id component.ID) bool {
	return w.IsAlive(e) && w.table(id).has(e)
}

// RemoveComponent detaches a component from an entity if present.
func (w *World) RemoveComponent(e Entity, id component.ID) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.table(id).remove(e)
}

// Query returns all live entities carrying every listed component. Iteration
// order follows the smallest table's dense order.
func (w *World) Query(ids ...component.ID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	smallest := w.table(ids[0])
	for _, id := range ids[1:] {
		if t := w.table(id); t.len() < smallest.len() {
			smallest = t
		}
	}
	out := make([]Entity, 0, smallest.len())
outer:
	for _, e := range smallest.entities() {
		if !w.IsAlive(e) {
			continue
		}
		for _, id := range ids {
			if !w.table(id).has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns one entity carrying the component, if any exists. Callers
// that need a true singleton should use Single instead.
func (w *World) First(id component.ID) (Entity, bool) {
	for _, e := range w.table(id).entities() {
		if w.IsAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Single returns the entity carrying the component only when exactly one
// does. Zero and several both report false, so systems that expect a true
// singleton (the player, the camera) skip the tick instead of picking one
// arbitrarily.
func (w *World) Single(id component.ID) (Entity, bool) {
	var found Entity
	n := 0
	for _, e := range w.table(id).entities() {
		if !w.IsAlive(e) {
			continue
		}
		found = e
		if n++; n > 1 {
			return 0, false
		}
	}
	return found, n == 1
}

// Count returns how many entities carry the component.
func (w *World) Count(id component.ID) int {
	return w.table(id).len()
}
