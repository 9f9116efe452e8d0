package component

import "github.com/milk9111/tilewalk/grid"

// GridPosition is an entity's discrete map coordinate. For moving entities
// this is the target the motion system converges toward, not the rendered
// position.
type GridPosition struct {
	V grid.Vector
}

var GridPositionComponent = NewComponent[GridPosition]()
