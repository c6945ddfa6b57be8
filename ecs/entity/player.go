package entity

import (
	"fmt"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

// NewPlayer spawns the player at the tuned spawn point with full health.
func NewPlayer(w *ecs.World, t prefabs.PlayerTuning) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: t.SpawnX, Y: t.SpawnY}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	body := &component.Body{Width: t.Width, Height: t.Height, PrevX: t.SpawnX, PrevY: t.SpawnY}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	player := &component.Player{
		Speed:            t.Speed,
		JumpPower:        t.JumpPower,
		Gravity:          t.Gravity,
		MaxFall:          t.MaxFall,
		Friction:         t.Friction,
		Health:           t.MaxHealth,
		MaxHealth:        t.MaxHealth,
		Facing:           1,
		SpawnX:           t.SpawnX,
		SpawnY:           t.SpawnY,
		InvincibleFrames: t.InvincibleFrames,
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), player); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	return e, nil
}
