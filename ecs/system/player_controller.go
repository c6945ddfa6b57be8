package system

import (
	"math"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
)

type PlayerControllerSystem struct {
	worldBottom float64
}

// NewPlayerControllerSystem treats any player below worldBottom as fallen.
func NewPlayerControllerSystem(worldBottom float64) *PlayerControllerSystem {
	return &PlayerControllerSystem{worldBottom: worldBottom}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pr, ok := findPlayer(w)
	if !ok {
		return
	}
	in, ok := ecs.Get(w, pr.e, component.InputComponent.Kind())
	if !ok {
		in = &component.Input{}
	}
	t, b, p := pr.transform, pr.body, pr.player

	b.PrevX, b.PrevY = t.X, t.Y

	switch {
	case in.Left:
		b.VX = -p.Speed
		p.Facing = -1
	case in.Right:
		b.VX = p.Speed
		p.Facing = 1
	default:
		b.VX *= p.Friction
	}

	if in.Jump && b.OnGround {
		b.VY = -p.JumpPower
		b.OnGround = false
	}

	b.VY = math.Min(b.VY+p.Gravity, p.MaxFall)

	t.X += b.VX
	t.Y += b.VY

	b.OnGround = false
	for _, plat := range platformRects(w) {
		resolvePlatform(t, b, plat)
	}

	if inv, ok := ecs.Get(w, pr.e, component.InvulnerableComponent.Kind()); ok {
		inv.Frames--
		if inv.Frames <= 0 {
			ecs.Remove(w, pr.e, component.InvulnerableComponent.Kind())
		}
	}

	if t.Y > s.worldBottom {
		damagePlayer(w, pr)
		respawnPlayer(w, pr)
	}
}

// resolvePlatform pushes the body out of plat. Vertical contacts are
// classified first using the position before this tick's velocity was
// applied; anything else is a side hit.
func resolvePlatform(t *component.Transform, b *component.Body, plat rect) {
	if !bodyRect(t, b).Intersects(plat) {
		return
	}
	switch {
	case b.VY > 0 && t.Y+b.Height-b.VY <= plat.Y:
		t.Y = plat.Y - b.Height
		b.VY = 0
		b.OnGround = true
	case b.VY < 0 && t.Y-b.VY >= plat.Y+plat.H:
		t.Y = plat.Y + plat.H
		b.VY = 0
	default:
		if b.VX > 0 {
			t.X = plat.X - b.Width
		} else if b.VX < 0 {
			t.X = plat.X + plat.W
		}
		b.VX = 0
	}
}

func respawnPlayer(w *ecs.World, pr playerRefs) {
	pr.transform.X = pr.player.SpawnX
	pr.transform.Y = pr.player.SpawnY
	pr.body.VX = 0
	pr.body.VY = 0
	w.Events().Push(ecs.Event{Kind: ecs.EventRespawn, Entity: pr.e, X: pr.transform.X, Y: pr.transform.Y})
}
