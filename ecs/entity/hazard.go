package entity

import (
	"fmt"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/levels"
)

// NewHazard spawns a spike, pit or fire strip of the given height.
func NewHazard(w *ecs.World, h levels.Hazard, height float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: h.X, Y: h.Y}); err != nil {
		return 0, fmt.Errorf("hazard: add transform: %w", err)
	}
	hz := &component.Hazard{Type: h.Type, Width: h.Width, Height: height}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), hz); err != nil {
		return 0, fmt.Errorf("hazard: add hazard: %w", err)
	}
	return e, nil
}
