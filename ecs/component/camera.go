package component

type Camera struct {
	X          float64
	Y          float64
	Smoothness float64
	// The target is kept ViewWidth/LeadDivisor from the left edge.
	LeadDivisor float64
	ViewWidth   float64
}

var CameraComponent = NewComponent[Camera]()
