package component

// Invulnerable marks the player as immune to damage. The controller counts
// Frames down each tick and removes the component when it reaches zero.
type Invulnerable struct {
	Frames int
}

var InvulnerableComponent = NewComponent[Invulnerable]()
