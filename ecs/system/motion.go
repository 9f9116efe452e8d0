package system

import (
	"math"

	"github.com/milk9111/tilewalk/common"
	"github.com/milk9111/tilewalk/ecs"
	"github.com/milk9111/tilewalk/ecs/component"
	"github.com/milk9111/tilewalk/grid"
)

// MotionSystem interpolates each moving entity's Transform toward the world
// projection of its grid target. Within tolerance the transform snaps to the
// target exactly, so floating error never accumulates and the entity always
// comes to rest on-grid.
type MotionSystem struct {
	// Delta is the simulation timestep in seconds. Ebiten ticks at a fixed
	// 60 TPS.
	Delta float64
}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{Delta: 1.0 / 60.0}
}

func (m *MotionSystem) Update(w *ecs.World) {
	entities := w.Query(
		component.GridPositionComponent.ID(),
		component.MotionComponent.ID(),
		component.TransformComponent.ID(),
	)
	for _, e := range entities {
		pos, ok := ecs.Get(w, e, component.GridPositionComponent)
		if !ok {
			continue
		}
		motion, ok := ecs.Get(w, e, component.MotionComponent)
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		targetX, targetY := grid.WorldPosition(pos.V)
		dist := math.Hypot(targetX-transform.X, targetY-transform.Y)
		if dist <= motion.Tolerance {
			transform.X = targetX
			transform.Y = targetY
			motion.Settled = true
			continue
		}

		// Constant-fraction lerp per tick, clamped so a large step can
		// never overshoot the target.
		f := motion.Speed * m.Delta
		if f > 1 {
			f = 1
		}
		transform.X = common.Lerp(transform.X, targetX, f)
		transform.Y = common.Lerp(transform.Y, targetY, f)
		motion.Settled = false
	}
}
