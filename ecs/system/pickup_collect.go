package system

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

type PickupCollectSystem struct {
	tuning prefabs.PickupTuning
	fx     *Effects
}

func NewPickupCollectSystem(tuning prefabs.PickupTuning, fx *Effects) *PickupCollectSystem {
	return &PickupCollectSystem{tuning: tuning, fx: fx}
}

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pr, ok := findPlayer(w)
	if !ok {
		return
	}
	box := pr.rect()

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, pk *component.Pickup, t *component.Transform) {
			if pk.Collected {
				return
			}
			// Collision ignores the bob.
			if !box.Intersects(rect{X: t.X, Y: pk.BaseY, W: pk.Size, H: pk.Size}) {
				return
			}
			pk.Collected = true

			evt := ecs.Event{Entity: e, X: t.X, Y: pk.BaseY}
			switch pk.Type {
			case component.PickupPowerup:
				if pr.player.Health < pr.player.MaxHealth {
					pr.player.Health++
				}
				addScore(w, s.tuning.PowerupScore)
				evt.Kind, evt.Value = ecs.EventPowerup, s.tuning.PowerupScore
			default:
				pr.player.Coins++
				addScore(w, s.tuning.CoinScore)
				evt.Kind, evt.Value = ecs.EventCoin, s.tuning.CoinScore
			}
			w.Events().Push(evt)

			if s.fx != nil {
				s.fx.Burst(w, t.X, pk.BaseY, s.fx.ThemeColor, s.tuning.Burst)
			}
		})
}
