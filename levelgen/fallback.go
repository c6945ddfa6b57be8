package levelgen

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"github.com/milk9111/arcade/levels"
)

const (
	collectibleChance = 0.4
	coinChance        = 0.8
	enemyChance       = 0.3
	fallbackMoveRange = 50
	spikeWidth        = 30
	spikeHeight       = 20
)

// seedFor derives a stable seed from the difficulty so the same level
// number always produces the same fallback layout.
func seedFor(d Difficulty) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%+v", d)
	return h.Sum64()
}

// Fallback builds a level procedurally. It walks forward from the spawn
// platform and is fully determined by d.
func Fallback(theme string, levelNumber int, d Difficulty) levels.Level {
	seed := seedFor(d)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	between := func(lo, hi float64) float64 { return lo + rng.Float64()*(hi-lo) }

	lvl := levels.Level{Theme: theme, LevelNumber: ClampLevel(levelNumber)}
	count := max(d.PlatformCount, 1)

	x, y := float64(SpawnPlatformX), float64(SpawnPlatformY)
	hasEnemy := make([]bool, count)
	for i := 0; i < count; i++ {
		width := float64(SpawnPlatformWidth)
		if i > 0 {
			width = between(d.MinPlatformWidth, d.MaxPlatformWidth)
		}
		lvl.Platforms = append(lvl.Platforms, levels.Platform{
			X:         x,
			Y:         y,
			Width:     width,
			Height:    PlatformHeight,
			Moving:    i > 0 && i <= d.MovingPlatforms,
			MoveRange: fallbackMoveRange,
		})

		if i > 0 && rng.Float64() < collectibleChance {
			lvl.Collectibles = append(lvl.Collectibles, levels.Collectible{
				X:    x + width/2,
				Y:    y - 40,
				Type: randomPickup(rng),
			})
		}

		if i > 2 && rng.Float64() < enemyChance && len(lvl.Enemies) < d.EnemyCount {
			kind := "walker"
			if rng.IntN(2) == 1 {
				kind = "jumper"
			}
			lvl.Enemies = append(lvl.Enemies, levels.Enemy{
				X:     x + width/2,
				Y:     y - 30,
				Type:  kind,
				Range: 100,
			})
			hasEnemy[i] = true
		}

		x += width + between(d.MinHorizontalGap, d.MaxHorizontalGap)
		y = 250 + rng.Float64()*200
	}

	fillCollectibles(&lvl, d.CollectibleCount, rng)
	placeSpikes(&lvl, d.HazardCount, hasEnemy, rng)

	Normalize(&lvl)

	last := lvl.Platforms[len(lvl.Platforms)-1]
	lvl.Goal = levels.Goal{X: last.X + last.Width + 100, Y: last.Y - 50}
	return lvl
}

func randomPickup(rng *rand.Rand) string {
	if rng.Float64() < coinChance {
		return "coin"
	}
	return "powerup"
}

// fillCollectibles tops the random placements up, or trims them, to exactly
// want. Extra pickups land on random non-spawn platforms.
func fillCollectibles(lvl *levels.Level, want int, rng *rand.Rand) {
	want = max(want, 0)
	if len(lvl.Collectibles) > want {
		lvl.Collectibles = lvl.Collectibles[:want]
		return
	}
	for len(lvl.Collectibles) < want {
		i := 0
		if n := len(lvl.Platforms); n > 1 {
			i = 1 + rng.IntN(n-1)
		}
		p := lvl.Platforms[i]
		margin := min(20.0, p.Width/2)
		lvl.Collectibles = append(lvl.Collectibles, levels.Collectible{
			X:    p.X + margin + rng.Float64()*(p.Width-2*margin),
			Y:    p.Y - 40,
			Type: randomPickup(rng),
		})
	}
}

// placeSpikes puts up to want spikes on enemy-free platforms past the third,
// on the right quarter so they do not sit under a centered pickup.
func placeSpikes(lvl *levels.Level, want int, hasEnemy []bool, rng *rand.Rand) {
	var candidates []int
	for i := 3; i < len(lvl.Platforms); i++ {
		if !hasEnemy[i] {
			candidates = append(candidates, i)
		}
	}
	rng.Shuffle(len(candidates), func(a, b int) {
		candidates[a], candidates[b] = candidates[b], candidates[a]
	})
	if want < len(candidates) {
		candidates = candidates[:max(want, 0)]
	}
	for _, i := range candidates {
		p := lvl.Platforms[i]
		lvl.Hazards = append(lvl.Hazards, levels.Hazard{
			X:     p.X + p.Width*0.75 - spikeWidth/2,
			Y:     p.Y - spikeHeight,
			Width: spikeWidth,
			Type:  "spike",
		})
	}
}
