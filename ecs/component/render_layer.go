package component

// RenderLayer orders draws; higher indexes draw in front. Tile entities take
// their scene layer as the index.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
