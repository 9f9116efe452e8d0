package grid

// TileSize is the edge length of one map cell in world units. The shipped
// atlas uses 16x16 cells, so world units are pixels at zoom 1.
const TileSize = 16

// Vector is a discrete map coordinate. X grows rightward, Y grows upward,
// Z is the layer depth (higher draws in front). Comparable, so it can key
// maps directly.
type Vector struct {
	X int
	Y int
	Z int
}

// Cardinal movement deltas.
var (
	Up    = Vector{X: 0, Y: 1, Z: 0}
	Down  = Vector{X: 0, Y: -1, Z: 0}
	Left  = Vector{X: -1, Y: 0, Z: 0}
	Right = Vector{X: 1, Y: 0, Z: 0}
)

// Add returns the component-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// WorldPosition projects v into continuous world space. Grid Y grows upward
// while screen Y grows downward, so the Y axis flips here and nowhere else.
func WorldPosition(v Vector) (float64, float64) {
	return float64(v.X) * TileSize, float64(-v.Y) * TileSize
}
