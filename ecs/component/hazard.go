package component

// Hazard marks an entity as dangerous on overlap.
type Hazard struct {
	Type   string
	Width  float64
	Height float64
}

var HazardComponent = NewComponent[Hazard]()
