package ecs

import "github.com/milk9111/tilewalk/ecs/component"

// Add attaches a component value to an entity through its typed handle.
func Add[T any](w *World, e Entity, h component.Handle[T], v *T) error {
	if v == nil {
		return component.ErrNilComponent
	}
	return w.AddComponent(e, h.ID(), v)
}

// Get returns the entity's component, or false if absent.
func Get[T any](w *World, e Entity, h component.Handle[T]) (*T, bool) {
	raw, ok := w.GetComponent(e, h.ID())
	if !ok {
		return nil, false
	}
	v, ok := raw.(*T)
	return v, ok
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, h component.Handle[T]) bool {
	return w.HasComponent(e, h.ID())
}

// Remove detaches the component from the entity if present.
func Remove[T any](w *World, e Entity, h component.Handle[T]) bool {
	return w.RemoveComponent(e, h.ID())
}

// ForEach invokes fn for every live entity carrying the component.
func ForEach[T any](w *World, h component.Handle[T], fn func(Entity, *T)) {
	table := w.table(h.ID())
	// Snapshot so fn may add or remove components mid-iteration.
	entities := append([]Entity(nil), table.entities()...)
	for _, e := range entities {
		raw, ok := table.get(e)
		if !ok || !w.IsAlive(e) {
			continue
		}
		if v, ok := raw.(*T); ok {
			fn(e, v)
		}
	}
}
