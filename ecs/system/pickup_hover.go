package system

import (
	"math"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

// PickupHoverSystem bobs and spins every pickup, collected or not.
type PickupHoverSystem struct {
	tuning prefabs.PickupTuning
}

func NewPickupHoverSystem(tuning prefabs.PickupTuning) *PickupHoverSystem {
	return &PickupHoverSystem{tuning: tuning}
}

func (s *PickupHoverSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, pk *component.Pickup, t *component.Transform) {
			pk.BobPhase += s.tuning.BobSpeed
			t.Rotation += s.tuning.RotationSpeed
			t.Y = pk.BaseY + math.Sin(pk.BobPhase)*s.tuning.BobAmplitude
		})
}
