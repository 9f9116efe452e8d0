package system

import (
	"github.com/milk9111/tilewalk/ecs"
	"github.com/milk9111/tilewalk/ecs/component"
	"github.com/milk9111/tilewalk/grid"
)

// MovementSystem advances an entity's discrete grid target by one cell per
// just-pressed direction key. Several keys pressed in one tick all apply, in
// polled order; the motion system keeps converging toward wherever the
// target ends up.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	entities := w.Query(
		component.InputComponent.ID(),
		component.GridPositionComponent.ID(),
	)
	for _, e := range entities {
		input, ok := ecs.Get(w, e, component.InputComponent)
		if !ok {
			continue
		}
		pos, ok := ecs.Get(w, e, component.GridPositionComponent)
		if !ok {
			continue
		}
		for _, dir := range pressedDirections(input) {
			pos.V = pos.V.Add(dir)
		}
	}
}

// pressedDirections returns this tick's movement deltas in the fixed polled
// order up, down, left, right.
func pressedDirections(input *component.Input) []grid.Vector {
	var out []grid.Vector
	if input.Up {
		out = append(out, grid.Up)
	}
	if input.Down {
		out = append(out, grid.Down)
	}
	if input.Left {
		out = append(out, grid.Left)
	}
	if input.Right {
		out = append(out, grid.Right)
	}
	return out
}
