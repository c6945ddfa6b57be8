package system

import (
	"math"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

type EnemySystem struct {
	tuning prefabs.EnemyTuning
	cullY  float64
}

// NewEnemySystem deactivates enemies that fall past cullY.
func NewEnemySystem(tuning prefabs.EnemyTuning, cullY float64) *EnemySystem {
	return &EnemySystem{tuning: tuning, cullY: cullY}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	platforms := platformRects(w)

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(_ ecs.Entity, en *component.Enemy, t *component.Transform, b *component.Body) {
			if !en.Active {
				return
			}
			b.PrevX, b.PrevY = t.X, t.Y

			t.X += b.VX
			if en.Type == component.EnemyFlyer {
				t.Y += math.Sin(t.X*s.tuning.FlyBobFreq) * s.tuning.FlyBobAmp
			}
			if math.Abs(t.X-en.OriginX) > en.Range {
				b.VX = -b.VX
			}
			if en.Type == component.EnemyFlyer {
				return
			}

			if en.Type == component.EnemyJumper {
				en.JumpTimer++
				if en.JumpTimer >= s.tuning.JumpInterval {
					b.VY = -s.tuning.JumpImpulse
					en.JumpTimer = 0
				}
			}

			b.VY += s.tuning.Gravity
			t.Y += b.VY

			box := bodyRect(t, b)
			for _, plat := range platforms {
				if b.VY > 0 && box.Intersects(plat) {
					t.Y = plat.Y - b.Height
					b.VY = 0
					box = bodyRect(t, b)
				}
			}

			if t.Y > s.cullY {
				en.Active = false
			}
		})
}
