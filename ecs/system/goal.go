package system

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

type GoalSystem struct {
	tuning prefabs.GoalTuning
}

func NewGoalSystem(tuning prefabs.GoalTuning) *GoalSystem {
	return &GoalSystem{tuning: tuning}
}

func (s *GoalSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pr, ok := findPlayer(w)
	if !ok {
		return
	}
	session, ok := findSession(w)
	if !ok || session.State.Terminal() {
		return
	}

	ecs.ForEach2(w, component.GoalComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, g *component.Goal, t *component.Transform) {
			if session.State.Terminal() || !pr.rect().Intersects(rect{X: t.X, Y: t.Y, W: g.Width, H: g.Height}) {
				return
			}
			g.Reached = true
			bonus := s.tuning.BaseBonus + pr.player.Health*s.tuning.HealthBonus
			session.Score += bonus
			session.State = component.StateVictory
			w.Events().Push(ecs.Event{Kind: ecs.EventVictory, Entity: e, X: t.X, Y: t.Y, Value: bonus})
		})
}
