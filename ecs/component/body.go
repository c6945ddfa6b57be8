package component

// Body is an axis-aligned box with a velocity. PrevX/PrevY hold the position
// at the start of the current tick.
type Body struct {
	Width    float64
	Height   float64
	VX       float64
	VY       float64
	PrevX    float64
	PrevY    float64
	OnGround bool
}

var BodyComponent = NewComponent[Body]()
