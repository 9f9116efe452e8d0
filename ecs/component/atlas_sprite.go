package component

// AtlasSprite names a cell in the shared texture atlas, 0-based, row-major.
type AtlasSprite struct {
	Index int
}

var AtlasSpriteComponent = NewComponent[AtlasSprite]()
