package component

import "image/color"

type Particle struct {
	Color   color.Color
	Life    int
	MaxLife int
	Size    float64
}

var ParticleComponent = NewComponent[Particle]()
