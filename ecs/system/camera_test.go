package system

import (
	"testing"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
)

func cameraWorld(t *testing.T, playerX float64, cam component.Camera) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	p := ecs.CreateEntity(w)
	if err := ecs.Add(w, p, component.PlayerComponent.Kind(), &component.Player{}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, p, component.TransformComponent.Kind(), &component.Transform{X: playerX}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, p, component.BodyComponent.Kind(), &component.Body{Width: 30, Height: 40}); err != nil {
		t.Fatal(err)
	}
	c := ecs.CreateEntity(w)
	if err := ecs.Add(w, c, component.CameraComponent.Kind(), &cam); err != nil {
		t.Fatal(err)
	}
	return w
}

func TestCameraLeadsByViewportThird(t *testing.T) {
	cases := []struct {
		name    string
		playerX float64
		divisor float64
		wantDiv float64
	}{
		{"third", 2000, 3, 3},
		{"unset_divisor_defaults_to_third", 2000, 0, 3},
		{"quarter", 2000, 4, 4},
		{"clamped_at_origin", 100, 3, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			view := 1024.0
			want := max(0, c.playerX-view/c.wantDiv)
			w := cameraWorld(t, c.playerX, component.Camera{Smoothness: 1, LeadDivisor: c.divisor, ViewWidth: view})
			NewCameraSystem().Update(w)
			if x, y := CameraOffset(w); x != want || y != 0 {
				t.Fatalf("expected camera at (%v,0), got (%v,%v)", want, x, y)
			}
		})
	}
}
