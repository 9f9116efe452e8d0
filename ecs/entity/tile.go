package entity

import (
	"fmt"

	"github.com/milk9111/tilewalk/ecs"
	"github.com/milk9111/tilewalk/ecs/component"
	"github.com/milk9111/tilewalk/grid"
)

// NewTile spawns a static map tile at v showing the given atlas cell. Tiles
// never move, so their transform is placed on-grid immediately; the sprite
// itself is attached later by the render sync system.
func NewTile(w *ecs.World, v grid.Vector, spriteIndex int) (ecs.Entity, error) {
	tile := w.CreateEntity()

	if err := ecs.Add(w, tile, component.GridPositionComponent, &component.GridPosition{V: v}); err != nil {
		return 0, fmt.Errorf("tile: add grid position: %w", err)
	}

	x, y := grid.WorldPosition(v)
	if err := ecs.Add(w, tile, component.TransformComponent, &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("tile: add transform: %w", err)
	}
	if err := ecs.Add(w, tile, component.AtlasSpriteComponent, &component.AtlasSprite{Index: spriteIndex}); err != nil {
		return 0, fmt.Errorf("tile: add atlas sprite: %w", err)
	}
	if err := ecs.Add(w, tile, component.RenderLayerComponent, &component.RenderLayer{Index: v.Z}); err != nil {
		return 0, fmt.Errorf("tile: add render layer: %w", err)
	}
	if err := ecs.Add(w, tile, component.NeedsSpriteComponent, &component.NeedsSprite{}); err != nil {
		return 0, fmt.Errorf("tile: add needs sprite: %w", err)
	}

	return tile, nil
}
