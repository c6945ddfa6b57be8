package system

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
)

// OutcomeSystem ends the attempt when the player runs out of health. A
// victory reached earlier in the tick stands.
type OutcomeSystem struct{}

func NewOutcomeSystem() *OutcomeSystem { return &OutcomeSystem{} }

func (s *OutcomeSystem) Update(w *ecs.World) {
	pr, ok := findPlayer(w)
	if !ok {
		return
	}
	session, ok := findSession(w)
	if !ok || session.State.Terminal() {
		return
	}
	if pr.player.Health <= 0 {
		session.State = component.StateGameOver
		w.Events().Push(ecs.Event{Kind: ecs.EventGameOver, Entity: pr.e, Value: session.Score})
	}
}
