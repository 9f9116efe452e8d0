package entity

import (
	"fmt"

	"github.com/milk9111/tilewalk/ecs"
	"github.com/milk9111/tilewalk/ecs/component"
	"github.com/milk9111/tilewalk/grid"
	"github.com/milk9111/tilewalk/prefabs"
)

// NewPlayer spawns the controllable player from its prefab spec.
func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}

	spawn := grid.Vector{X: spec.Spawn.X, Y: spec.Spawn.Y, Z: spec.Spawn.Z}
	player := w.CreateEntity()

	if err := ecs.Add(w, player, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent, &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.GridPositionComponent, &component.GridPosition{V: spawn}); err != nil {
		return 0, fmt.Errorf("player: add grid position: %w", err)
	}

	x, y := grid.WorldPosition(spawn)
	if err := ecs.Add(w, player, component.TransformComponent, &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.MotionComponent, &component.Motion{
		Speed:     spec.Speed,
		Tolerance: spec.Tolerance,
		Settled:   true,
	}); err != nil {
		return 0, fmt.Errorf("player: add motion: %w", err)
	}
	if err := ecs.Add(w, player, component.AtlasSpriteComponent, &component.AtlasSprite{Index: spec.SpriteIndex}); err != nil {
		return 0, fmt.Errorf("player: add atlas sprite: %w", err)
	}
	if err := ecs.Add(w, player, component.RenderLayerComponent, &component.RenderLayer{Index: spawn.Z}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}
	if err := ecs.Add(w, player, component.NeedsSpriteComponent, &component.NeedsSprite{}); err != nil {
		return 0, fmt.Errorf("player: add needs sprite: %w", err)
	}

	return player, nil
}
