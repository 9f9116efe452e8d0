package component

// Motion smooths an entity's Transform toward its GridPosition's world
// projection. Settled means the transform sits exactly on target.
type Motion struct {
	Speed     float64
	Tolerance float64
	Settled   bool
}

var MotionComponent = NewComponent[Motion]()
