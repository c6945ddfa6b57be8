package system

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
)

// ParticleSystem integrates particles and destroys them once their life runs
// out.
type ParticleSystem struct {
	gravity float64
}

func NewParticleSystem(gravity float64) *ParticleSystem {
	return &ParticleSystem{gravity: gravity}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(e ecs.Entity, p *component.Particle, t *component.Transform, b *component.Body) {
			t.X += b.VX
			t.Y += b.VY
			b.VY += s.gravity
			p.Life--
			if p.Life <= 0 {
				ecs.DestroyEntity(w, e)
			}
		})
}
