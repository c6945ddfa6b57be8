package entity

import (
	"fmt"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/levels"
	"github.com/milk9111/arcade/prefabs"
)

func NewGoal(w *ecs.World, g levels.Goal, t prefabs.GoalTuning) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: g.X, Y: g.Y}); err != nil {
		return 0, fmt.Errorf("goal: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.GoalComponent.Kind(), &component.Goal{Width: t.Width, Height: t.Height}); err != nil {
		return 0, fmt.Errorf("goal: add goal: %w", err)
	}
	return e, nil
}
