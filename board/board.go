// Package board maintains the grid-coordinate index over placed tile
// entities, so gameplay systems can answer "what occupies cell v" in O(1).
package board

import (
	"github.com/milk9111/tilewalk/ecs"
	"github.com/milk9111/tilewalk/grid"
)

// Index maps grid coordinates to tile entities. Z is part of the key, so
// tiles on different layers coexist at the same (x, y). At most one entity
// per coordinate; a later insert at the same coordinate wins.
type Index struct {
	tiles map[grid.Vector]ecs.Entity
}

func New() *Index {
	return &Index{tiles: map[grid.Vector]ecs.Entity{}}
}

// Insert records e at v, overwriting any previous entry.
func (i *Index) Insert(v grid.Vector, e ecs.Entity) {
	i.tiles[v] = e
}

// Lookup returns the entity at v, if any.
func (i *Index) Lookup(v grid.Vector) (ecs.Entity, bool) {
	e, ok := i.tiles[v]
	return e, ok
}

// Len returns how many coordinates are occupied.
func (i *Index) Len() int {
	return len(i.tiles)
}
