package system

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

// CombatSystem resolves player contact with enemies and hazards.
type CombatSystem struct {
	tuning prefabs.CombatTuning
	fx     *Effects
}

func NewCombatSystem(tuning prefabs.CombatTuning, fx *Effects) *CombatSystem {
	return &CombatSystem{tuning: tuning, fx: fx}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pr, ok := findPlayer(w)
	if !ok {
		return
	}

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(e ecs.Entity, en *component.Enemy, t *component.Transform, b *component.Body) {
			if !en.Active || !pr.rect().Intersects(bodyRect(t, b)) {
				return
			}
			if s.isStomp(pr, t) {
				en.Active = false
				pr.body.VY = -s.tuning.StompBounce
				pr.body.OnGround = false
				addScore(w, s.tuning.StompScore)
				w.Events().Push(ecs.Event{Kind: ecs.EventStomp, Entity: e, X: t.X, Y: t.Y, Value: s.tuning.StompScore})
				if s.fx != nil {
					s.fx.Burst(w, t.X+b.Width/2, t.Y+b.Height/2, s.fx.ThemeColor, s.fx.Tuning.DamageBurst)
				}
				return
			}
			s.hurt(w, pr)
		})

	if !s.tuning.HazardsDamage {
		return
	}
	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, h *component.Hazard, t *component.Transform) {
			if pr.rect().Intersects(rect{X: t.X, Y: t.Y, W: h.Width, H: h.Height}) {
				s.hurt(w, pr)
			}
		})
}

// isStomp reports a falling player whose bottom edge was at or above the
// enemy's top at the start of the tick.
func (s *CombatSystem) isStomp(pr playerRefs, enemy *component.Transform) bool {
	if !s.tuning.StompDefeat || pr.body.VY <= 0 {
		return false
	}
	return pr.body.PrevY+pr.body.Height <= enemy.Y
}

func (s *CombatSystem) hurt(w *ecs.World, pr playerRefs) {
	if !damagePlayer(w, pr) {
		return
	}
	if s.fx != nil {
		s.fx.Damage(w, pr.transform.X+pr.body.Width/2, pr.transform.Y+pr.body.Height/2)
	}
}

// damagePlayer removes one health unless the player is invulnerable, then
// starts the invulnerability window. It reports whether damage was applied.
func damagePlayer(w *ecs.World, pr playerRefs) bool {
	if ecs.Has(w, pr.e, component.InvulnerableComponent.Kind()) {
		return false
	}
	if pr.player.Health > 0 {
		pr.player.Health--
	}
	if pr.player.InvincibleFrames > 0 {
		_ = ecs.Add(w, pr.e, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: pr.player.InvincibleFrames})
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventDamage, Entity: pr.e, X: pr.transform.X, Y: pr.transform.Y, Value: pr.player.Health})
	return true
}
