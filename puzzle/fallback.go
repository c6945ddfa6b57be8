package puzzle

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

const (
	fallbackAttempts = 32
	offlineFlavor    = "The AI is offline, but the path remains."
)

// WallChance is the per-cell wall probability at a difficulty, which is
// clamped to 1..10.
func WallChance(difficulty int) float64 {
	return 0.1 + 0.02*float64(clampDifficulty(difficulty))
}

func clampDifficulty(d int) int {
	return max(1, min(d, 10))
}

func seedFor(theme string, difficulty int) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%s/%d", theme, difficulty)
	return h.Sum64()
}

// Fallback builds a random wall layout with the start one cell in from the
// top-left and the goal one cell in from the bottom-right. Layouts are
// retried until solvable; the last resort carves an L-shaped corridor.
func Fallback(theme string, difficulty, size int, rng *rand.Rand) Level {
	if rng == nil {
		seed := seedFor(theme, difficulty)
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	start := Point{X: 1, Y: 1}
	goal := Point{X: size - 2, Y: size - 2}
	if size < 4 {
		start, goal = Point{}, Point{X: size - 1, Y: size - 1}
	}
	chance := WallChance(difficulty)

	var g *Grid
	for attempt := 0; attempt < fallbackAttempts; attempt++ {
		g = NewGrid(size, size)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if rng.Float64() < chance {
					g.Cells[y][x] = CellWall
				}
			}
		}
		g.Set(start, CellStart)
		g.Set(goal, CellGoal)
		if Solvable(g, start, goal) {
			break
		}
	}
	if !Solvable(g, start, goal) {
		carve(g, start, goal)
	}

	return Level{
		Grid:         g,
		Hint:         defaultHint,
		WinCondition: defaultWinCondition,
		FlavorText:   offlineFlavor,
		Theme:        theme,
		Difficulty:   difficulty,
	}
}

// carve clears walls along the row of start then the column of goal.
func carve(g *Grid, start, goal Point) {
	p := start
	for p.X != goal.X {
		if p.X < goal.X {
			p.X++
		} else {
			p.X--
		}
		if g.At(p) == CellWall || g.At(p) == CellPit {
			g.Set(p, CellFloor)
		}
	}
	for p.Y != goal.Y {
		if p.Y < goal.Y {
			p.Y++
		} else {
			p.Y--
		}
		if g.At(p) == CellWall || g.At(p) == CellPit {
			g.Set(p, CellFloor)
		}
	}
}
