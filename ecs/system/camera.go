package system

import (
	"math"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
)

const defaultLeadDivisor = 3

// CameraSystem eases the camera toward keeping the player ViewWidth/LeadDivisor
// from the left edge, never scrolling left of the world origin.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pr, ok := findPlayer(w)
	if !ok {
		return
	}
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		div := cam.LeadDivisor
		if div <= 0 {
			div = defaultLeadDivisor
		}
		target := pr.transform.X - cam.ViewWidth/div
		cam.X += (target - cam.X) * cam.Smoothness
		cam.X = math.Max(0, cam.X)
		cam.Y = 0
	})
}

// CameraOffset returns the active camera position, or the origin.
func CameraOffset(w *ecs.World) (float64, float64) {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return 0, 0
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return 0, 0
	}
	return cam.X, cam.Y
}
