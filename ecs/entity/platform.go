package entity

import (
	"fmt"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/levels"
)

func NewPlatform(w *ecs.World, p levels.Platform) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: p.X, Y: p.Y}); err != nil {
		return 0, fmt.Errorf("platform: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: p.Width, Height: p.Height}); err != nil {
		return 0, fmt.Errorf("platform: add body: %w", err)
	}
	plat := &component.Platform{
		Moving:  p.Moving,
		Range:   p.MoveRange,
		Dir:     1,
		OriginX: p.X,
	}
	if err := ecs.Add(w, e, component.PlatformComponent.Kind(), plat); err != nil {
		return 0, fmt.Errorf("platform: add platform: %w", err)
	}
	return e, nil
}
