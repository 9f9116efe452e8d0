package component

// NeedsSprite marks a freshly spawned entity whose Sprite has not been built
// yet. The render sync system consumes the marker exactly once per entity.
type NeedsSprite struct{}

var NeedsSpriteComponent = NewComponent[NeedsSprite]()
