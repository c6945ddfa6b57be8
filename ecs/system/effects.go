package system

import (
	"image/color"
	"math/rand/v2"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/entity"
	"github.com/milk9111/arcade/prefabs"
)

// Effects spawns particle bursts on behalf of gameplay systems.
type Effects struct {
	Tuning prefabs.ParticleTuning
	// ThemeColor tints collection and stomp bursts.
	ThemeColor color.Color
	Rand       *rand.Rand
}

func (fx *Effects) Burst(w *ecs.World, x, y float64, c color.Color, count int) {
	if fx == nil || count <= 0 {
		return
	}
	entity.Burst(w, x, y, c, count, fx.Tuning, fx.Rand)
}

func (fx *Effects) Damage(w *ecs.World, x, y float64) {
	if fx == nil {
		return
	}
	fx.Burst(w, x, y, fx.Tuning.DamageColor.Or(color.RGBA{R: 0xff, A: 0xff}), fx.Tuning.DamageBurst)
}
