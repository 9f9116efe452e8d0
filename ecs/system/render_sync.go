package system

import (
	"log"

	"github.com/milk9111/tilewalk/ecs"
	"github.com/milk9111/tilewalk/ecs/component"
	"github.com/milk9111/tilewalk/ecs/render"
)

// RenderSyncSystem builds a Sprite for every entity still carrying the
// NeedsSprite marker and then removes the marker, so renderer attachment
// happens exactly once per entity regardless of when it was spawned. The
// sheet's pixels are resolved through the image registry by key.
type RenderSyncSystem struct {
	Atlas    *render.Atlas
	ImageKey string
}

func NewRenderSyncSystem(atlas *render.Atlas, imageKey string) *RenderSyncSystem {
	return &RenderSyncSystem{Atlas: atlas, ImageKey: imageKey}
}

func (rs *RenderSyncSystem) Update(w *ecs.World) {
	if rs.Atlas == nil {
		return
	}

	entities := w.Query(
		component.NeedsSpriteComponent.ID(),
		component.AtlasSpriteComponent.ID(),
	)
	for _, e := range entities {
		ref, ok := ecs.Get(w, e, component.AtlasSpriteComponent)
		if !ok {
			continue
		}
		src, err := rs.Atlas.SourceRect(ref.Index)
		if err != nil {
			// Validation should have caught this before spawn.
			log.Printf("render sync: entity %s: %v", e, err)
			ecs.Remove(w, e, component.NeedsSpriteComponent)
			continue
		}
		sprite := &component.Sprite{
			Image:     render.GetImage(rs.ImageKey),
			Source:    src,
			UseSource: true,
		}
		if err := ecs.Add(w, e, component.SpriteComponent, sprite); err != nil {
			log.Printf("render sync: entity %s: attach sprite: %v", e, err)
			continue
		}
		ecs.Remove(w, e, component.NeedsSpriteComponent)
	}
}
