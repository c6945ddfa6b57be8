package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/levels"
	"github.com/milk9111/arcade/prefabs"
)

// LoadLevelToWorld populates an empty world with everything one attempt at
// lvl needs: session, camera, platforms, enemies, pickups, hazards, goal and
// the player.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, t *prefabs.TuningSpec, rng *rand.Rand) error {
	session := ecs.CreateEntity(w)
	if err := ecs.Add(w, session, component.SessionComponent.Kind(), &component.Session{
		LevelNumber: lvl.LevelNumber,
		Theme:       lvl.Theme,
	}); err != nil {
		return fmt.Errorf("level: add session: %w", err)
	}

	if _, err := NewCamera(w, t.Camera, t.Viewport.Width); err != nil {
		return err
	}
	for i, p := range lvl.Platforms {
		if _, err := NewPlatform(w, p); err != nil {
			return fmt.Errorf("level: platform %d: %w", i, err)
		}
	}
	for i, e := range lvl.Enemies {
		if _, err := NewEnemy(w, e, t.Enemy); err != nil {
			return fmt.Errorf("level: enemy %d: %w", i, err)
		}
	}
	for i, c := range lvl.Collectibles {
		if _, err := NewPickup(w, c, t.Pickup, rng); err != nil {
			return fmt.Errorf("level: collectible %d: %w", i, err)
		}
	}
	for i, h := range lvl.Hazards {
		if _, err := NewHazard(w, h, t.Combat.HazardHeight); err != nil {
			return fmt.Errorf("level: hazard %d: %w", i, err)
		}
	}
	if _, err := NewGoal(w, lvl.Goal, t.Goal); err != nil {
		return err
	}
	if _, err := NewPlayer(w, t.Player); err != nil {
		return err
	}
	return nil
}
