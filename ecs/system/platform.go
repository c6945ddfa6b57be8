package system

import (
	"math"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
)

// PlatformSystem oscillates moving platforms around their anchor. It does
// not carry the player; the controller sees the new position next tick.
type PlatformSystem struct {
	speed float64
}

func NewPlatformSystem(speed float64) *PlatformSystem {
	return &PlatformSystem{speed: speed}
}

func (s *PlatformSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, p *component.Platform, t *component.Transform) {
			if !p.Moving {
				return
			}
			if p.Dir == 0 {
				p.Dir = 1
			}
			p.Offset += p.Dir * s.speed
			if math.Abs(p.Offset) > p.Range {
				p.Dir = -p.Dir
			}
			t.X = p.OriginX + p.Offset
		})
}
