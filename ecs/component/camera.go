package component

// Camera tracks a named target and holds the current zoom level.
type Camera struct {
	TargetName string
	Zoom       float64
	MinZoom    float64
	MaxZoom    float64
}

var CameraComponent = NewComponent[Camera]()
