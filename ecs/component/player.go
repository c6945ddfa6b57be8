package component

type Player struct {
	Speed     float64
	JumpPower float64
	Gravity   float64
	MaxFall   float64
	Friction  float64

	Health    int
	MaxHealth int
	Coins     int
	// Facing is 1 for right and -1 for left.
	Facing float64

	SpawnX           float64
	SpawnY           float64
	InvincibleFrames int
}

var PlayerComponent = NewComponent[Player]()
