package entity

import (
	"fmt"

	"github.com/milk9111/tilewalk/ecs"
	"github.com/milk9111/tilewalk/ecs/component"
	"github.com/milk9111/tilewalk/prefabs"
)

// NewCamera spawns the camera entity from its prefab spec.
func NewCamera(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraTagComponent, &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent, &component.Transform{}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	if err := ecs.Add(w, camera, component.CameraComponent, &component.Camera{
		TargetName: spec.Target,
		Zoom:       zoom,
		MinZoom:    spec.MinZoom,
		MaxZoom:    spec.MaxZoom,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
