package entity

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/levels"
	"github.com/milk9111/arcade/prefabs"
)

// NewPickup spawns a collectible with a random starting bob phase.
func NewPickup(w *ecs.World, c levels.Collectible, t prefabs.PickupTuning, rng *rand.Rand) (ecs.Entity, error) {
	kind := component.PickupType(c.Type)
	if kind != component.PickupPowerup {
		kind = component.PickupCoin
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: c.X, Y: c.Y}); err != nil {
		return 0, fmt.Errorf("pickup: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: t.Size, Height: t.Size}); err != nil {
		return 0, fmt.Errorf("pickup: add body: %w", err)
	}
	pickup := &component.Pickup{
		Type:     kind,
		Size:     t.Size,
		BaseY:    c.Y,
		BobPhase: rng.Float64() * 2 * math.Pi,
	}
	if err := ecs.Add(w, e, component.PickupComponent.Kind(), pickup); err != nil {
		return 0, fmt.Errorf("pickup: add pickup: %w", err)
	}
	return e, nil
}
