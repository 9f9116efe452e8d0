package system

import (
	"math"
	"testing"

	"github.com/milk9111/tilewalk/ecs"
	"github.com/milk9111/tilewalk/ecs/component"
	"github.com/milk9111/tilewalk/grid"
)

func newMover(t *testing.T, w *ecs.World, target grid.Vector, startX, startY float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.GridPositionComponent, &component.GridPosition{V: target}); err != nil {
		t.Fatalf("add grid position: %v", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: startX, Y: startY}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.MotionComponent, &component.Motion{Speed: 10, Tolerance: 0.1}); err != nil {
		t.Fatalf("add motion: %v", err)
	}
	return e
}

func distanceToTarget(t *testing.T, w *ecs.World, e ecs.Entity) float64 {
	t.Helper()
	pos, _ := ecs.Get(w, e, component.GridPositionComponent)
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	tx, ty := grid.WorldPosition(pos.V)
	return math.Hypot(tx-tr.X, ty-tr.Y)
}

func TestMotionSnapsWithinTolerance(t *testing.T) {
	w := ecs.NewWorld()
	// Target (1, 0) projects to world (16, 0); start 0.05 away.
	e := newMover(t, w, grid.Vector{X: 1}, 15.95, 0)

	NewMotionSystem().Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if tr.X != 16 || tr.Y != 0 {
		t.Fatalf("transform = (%v, %v), want exactly (16, 0)", tr.X, tr.Y)
	}
	motion, _ := ecs.Get(w, e, component.MotionComponent)
	if !motion.Settled {
		t.Fatalf("mover within tolerance should settle")
	}
}

func TestMotionApproachesWithoutOvershoot(t *testing.T) {
	w := ecs.NewWorld()
	e := newMover(t, w, grid.Vector{X: 1}, 0, 0)
	ms := NewMotionSystem()

	prev := distanceToTarget(t, w, e)
	for tick := 0; tick < 300; tick++ {
		ms.Update(w)
		d := distanceToTarget(t, w, e)
		if d > prev {
			t.Fatalf("tick %d: distance grew from %v to %v", tick, prev, d)
		}
		motion, _ := ecs.Get(w, e, component.MotionComponent)
		if motion.Settled {
			if d != 0 {
				t.Fatalf("settled with residual distance %v", d)
			}
			return
		}
		if prev-d <= 0 {
			t.Fatalf("tick %d: distance did not strictly decrease while approaching (%v)", tick, d)
		}
		prev = d
	}
	t.Fatalf("mover never settled after 300 ticks (distance %v)", prev)
}

func TestMotionLargeStepClampsToTarget(t *testing.T) {
	w := ecs.NewWorld()
	e := newMover(t, w, grid.Vector{X: 1}, 0, 0)
	motion, _ := ecs.Get(w, e, component.MotionComponent)
	motion.Speed = 600 // f = speed*delta = 10, clamped to 1

	NewMotionSystem().Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if tr.X != 16 || tr.Y != 0 {
		t.Fatalf("clamped step should land on the target, got (%v, %v)", tr.X, tr.Y)
	}
}

func TestMotionRetargetsMidFlight(t *testing.T) {
	w := ecs.NewWorld()
	e := newMover(t, w, grid.Vector{X: 1}, 0, 0)
	ms := NewMotionSystem()

	ms.Update(w)
	motion, _ := ecs.Get(w, e, component.MotionComponent)
	if motion.Settled {
		t.Fatalf("one tick should not settle a full-cell move")
	}

	// Move the target while approaching; interpolation just continues.
	pos, _ := ecs.Get(w, e, component.GridPositionComponent)
	pos.V = pos.V.Add(grid.Right)

	prev := distanceToTarget(t, w, e)
	ms.Update(w)
	if d := distanceToTarget(t, w, e); d >= prev {
		t.Fatalf("after retarget distance should keep shrinking: %v -> %v", prev, d)
	}
}
