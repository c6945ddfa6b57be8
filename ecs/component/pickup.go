package component

type PickupType string

const (
	PickupCoin    PickupType = "coin"
	PickupPowerup PickupType = "powerup"
)

// Pickup is a collectible. BaseY is the resting position the bob is applied
// around; collision always uses the unbobbed box.
type Pickup struct {
	Type      PickupType
	Size      float64
	BaseY     float64
	BobPhase  float64
	Collected bool
}

var PickupComponent = NewComponent[Pickup]()
