package entity

import (
	"fmt"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/levels"
	"github.com/milk9111/arcade/prefabs"
)

func NewEnemy(w *ecs.World, spec levels.Enemy, t prefabs.EnemyTuning) (ecs.Entity, error) {
	kind := component.EnemyType(spec.Type)
	speed := t.WalkSpeed
	switch kind {
	case component.EnemyFlyer:
		speed = t.FlySpeed
	case component.EnemyWalker, component.EnemyJumper:
	default:
		kind = component.EnemyWalker
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	body := &component.Body{Width: t.Width, Height: t.Height, VX: speed, PrevX: spec.X, PrevY: spec.Y}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("enemy: add body: %w", err)
	}
	enemy := &component.Enemy{
		Type:    kind,
		Range:   spec.Range,
		OriginX: spec.X,
		Active:  true,
	}
	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), enemy); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}
	return e, nil
}
