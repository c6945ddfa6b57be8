package entity

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

// Burst spawns count particles spread evenly around (x, y).
func Burst(w *ecs.World, x, y float64, c color.Color, count int, t prefabs.ParticleTuning, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := t.MinSpeed + rng.Float64()*(t.MaxSpeed-t.MinSpeed)
		life := t.MinLife
		if span := t.MaxLife - t.MinLife; span > 0 {
			life += rng.IntN(span + 1)
		}
		size := t.MinSize + rng.Float64()*(t.MaxSize-t.MinSize)
		NewParticle(w, cp.Vector{X: x, Y: y}, cp.ForAngle(angle).Mult(speed), c, life, size)
	}
}

func NewParticle(w *ecs.World, pos, vel cp.Vector, c color.Color, life int, size float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y})
	_ = ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{VX: vel.X, VY: vel.Y, Width: size, Height: size})
	_ = ecs.Add(w, e, component.ParticleComponent.Kind(), &component.Particle{
		Color:   c,
		Life:    life,
		MaxLife: life,
		Size:    size,
	})
	return e
}
