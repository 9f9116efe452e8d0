package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
)

// ID identifies a component type at runtime. Ids are handed out once per
// process by NewComponent, so two handles never collide.
type ID uint32

var nextID atomic.Uint32

// Handle is a typed key into a world's component tables. Declare one package
// level handle per component type.
type Handle[T any] struct {
	id ID
}

func NewComponent[T any]() Handle[T] {
	return Handle[T]{id: ID(nextID.Add(1))}
}

func (h Handle[T]) ID() ID {
	return h.id
}

func (h Handle[T]) Valid() bool {
	return h.id != 0
}
