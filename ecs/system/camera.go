package system

import (
	"github.com/milk9111/tilewalk/ecs"
	"github.com/milk9111/tilewalk/ecs/component"
)

const zoomStep = 1.02

// CameraSystem pins the camera's transform to its target's transform every
// tick. No smoothing and no dead zone; it runs after MotionSystem so the
// camera reads this tick's position, never last tick's. Camera and target are
// resolved fresh each tick: zero of either, or more than one, skips the tick.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	camEntity, ok := w.Single(component.CameraTagComponent.ID())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent)
	if !ok {
		return
	}

	target, ok := singleEntityByName(w, cam.TargetName)
	if !ok {
		return
	}

	targetTransform, ok := ecs.Get(w, target, component.TransformComponent)
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent)
	if !ok {
		return
	}

	camTransform.X = targetTransform.X
	camTransform.Y = targetTransform.Y

	if input, ok := ecs.Get(w, target, component.InputComponent); ok {
		applyZoom(cam, input)
	}
}

func applyZoom(cam *component.Camera, input *component.Input) {
	switch {
	case input.ZoomIn:
		cam.Zoom *= zoomStep
	case input.ZoomOut:
		cam.Zoom /= zoomStep
	default:
		return
	}
	if cam.MinZoom > 0 && cam.Zoom < cam.MinZoom {
		cam.Zoom = cam.MinZoom
	}
	if cam.MaxZoom > 0 && cam.Zoom > cam.MaxZoom {
		cam.Zoom = cam.MaxZoom
	}
}

func singleEntityByName(w *ecs.World, name string) (ecs.Entity, bool) {
	if name == "player" {
		return w.Single(component.PlayerTagComponent.ID())
	}
	return 0, false
}
