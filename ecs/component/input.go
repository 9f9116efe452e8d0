package component

// Input stores per-frame input state for an entity. The directional fields
// are edge-triggered (just pressed this tick); the zoom fields are level-
// triggered (held).
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	ZoomIn  bool
	ZoomOut bool
}

var InputComponent = NewComponent[Input]()
