package entity

import (
	"fmt"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

func NewCamera(w *ecs.World, t prefabs.CameraTuning, viewWidth float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	cam := &component.Camera{Smoothness: t.Smoothness, LeadDivisor: t.LeadDivisor, ViewWidth: viewWidth}
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), cam); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return e, nil
}
