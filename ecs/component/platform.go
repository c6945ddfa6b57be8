package component

// Platform carries the oscillation state of a moving platform. Its box
// lives in Body.
type Platform struct {
	Moving  bool
	Range   float64
	Offset  float64
	Dir     float64
	OriginX float64
}

var PlatformComponent = NewComponent[Platform]()
