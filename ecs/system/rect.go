package system

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
)

type rect struct {
	X, Y, W, H float64
}

// Intersects is strict: touching edges do not overlap.
func (r rect) Intersects(o rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

func bodyRect(t *component.Transform, b *component.Body) rect {
	return rect{X: t.X, Y: t.Y, W: b.Width, H: b.Height}
}

// platformRects returns the current platform boxes in level order.
func platformRects(w *ecs.World) []rect {
	var out []rect
	ecs.ForEach3(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(_ ecs.Entity, _ *component.Platform, t *component.Transform, b *component.Body) {
			out = append(out, bodyRect(t, b))
		})
	return out
}

type playerRefs struct {
	e         ecs.Entity
	transform *component.Transform
	body      *component.Body
	player    *component.Player
}

func findPlayer(w *ecs.World) (playerRefs, bool) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return playerRefs{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return playerRefs{}, false
	}
	b, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return playerRefs{}, false
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return playerRefs{}, false
	}
	return playerRefs{e: e, transform: t, body: b, player: p}, true
}

func (r playerRefs) rect() rect {
	return bodyRect(r.transform, r.body)
}

func findSession(w *ecs.World) (*component.Session, bool) {
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.SessionComponent.Kind())
}

func addScore(w *ecs.World, points int) {
	if s, ok := findSession(w); ok {
		s.Score += points
	}
}
