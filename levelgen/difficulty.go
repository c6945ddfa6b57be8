package levelgen

import (
	"fmt"
	"math"

	"github.com/milk9111/arcade/prefabs"
)

type Difficulty prefabs.DifficultySpec

// Presets are the hand-tuned difficulties for the first levels.
type Presets []Difficulty

func LoadPresets() (Presets, error) {
	spec, err := prefabs.LoadDifficultySpec()
	if err != nil {
		return nil, err
	}
	out := make(Presets, len(spec.Presets))
	for i, p := range spec.Presets {
		out[i] = Difficulty(p)
	}
	return out, nil
}

// ClampLevel maps anything below 1 to 1.
func ClampLevel(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// For returns the difficulty of level n. Past the last preset every value
// scales linearly from that preset.
func (p Presets) For(n int) Difficulty {
	n = ClampLevel(n)
	if len(p) == 0 {
		return Difficulty{}
	}
	if n <= len(p) {
		return p[n-1]
	}

	base := p[len(p)-1]
	k := float64(n - len(p))
	ki := n - len(p)
	return Difficulty{
		Description:      fmt.Sprintf("Very Hard - Level %d", n),
		PlatformCount:    int(math.Floor(float64(base.PlatformCount) * (1 + 0.15*k))),
		MinPlatformWidth: math.Max(80, base.MinPlatformWidth-5*k),
		MaxPlatformWidth: math.Max(120, base.MaxPlatformWidth-10*k),
		MinGap:           base.MinGap + 10*k,
		MaxGap:           base.MaxGap + 15*k,
		MinHorizontalGap: base.MinHorizontalGap + 10*k,
		MaxHorizontalGap: base.MaxHorizontalGap + 20*k,
		EnemyCount:       base.EnemyCount + ki,
		CollectibleCount: base.CollectibleCount + 2*ki,
		HazardCount:      base.HazardCount + ki,
		MovingPlatforms:  min(base.MovingPlatforms+ki, 8),
		LevelLength:      base.LevelLength + 500*k,
	}
}
