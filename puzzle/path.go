package puzzle

import "math"

// maxPathNodes bounds a search; a 10x10 grid never needs more than 100.
const maxPathNodes = 4096

// FindPath returns a shortest 4-way path from start to goal inclusive, or
// nil. Walls and pits block; the goal itself must not be blocked.
func FindPath(g *Grid, start, goal Point) []Point {
	return astar(start, goal, g.Width, g.Height, func(p Point) bool {
		c := g.At(p)
		return c == CellWall || c == CellPit
	}, maxPathNodes)
}

func Solvable(g *Grid, start, goal Point) bool {
	return FindPath(g, start, goal) != nil
}

func astar(start, goal Point, width, height int, blocked func(Point) bool, maxNodes int) []Point {
	if width <= 0 || height <= 0 {
		return nil
	}
	inBounds := func(p Point) bool { return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height }
	if !inBounds(start) || !inBounds(goal) || blocked(goal) {
		return nil
	}
	if start == goal {
		return []Point{start}
	}

	index := func(p Point) int { return p.Y*width + p.X }
	startIdx, goalIdx := index(start), index(goal)

	open := []Point{start}
	openSet := map[int]bool{startIdx: true}
	cameFrom := make(map[int]int, width*height)
	gScore := map[int]float64{startIdx: 0}
	fScore := map[int]float64{startIdx: manhattan(start, goal)}

	for iterations := 0; len(open) > 0 && iterations < maxNodes; iterations++ {
		best, bestScore := 0, math.MaxFloat64
		for i, n := range open {
			if f, ok := fScore[index(n)]; ok && f < bestScore {
				best, bestScore = i, f
			}
		}
		current := open[best]
		currentIdx := index(current)
		open = append(open[:best], open[best+1:]...)
		delete(openSet, currentIdx)

		if currentIdx == goalIdx {
			return reconstruct(cameFrom, currentIdx, startIdx, width)
		}

		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			next := current.Add(d[0], d[1])
			if !inBounds(next) || blocked(next) {
				continue
			}
			nextIdx := index(next)
			tentative := gScore[currentIdx] + 1
			if prev, seen := gScore[nextIdx]; seen && tentative >= prev {
				continue
			}
			cameFrom[nextIdx] = currentIdx
			gScore[nextIdx] = tentative
			fScore[nextIdx] = tentative + manhattan(next, goal)
			if !openSet[nextIdx] {
				open = append(open, next)
				openSet[nextIdx] = true
			}
		}
	}
	return nil
}

func reconstruct(cameFrom map[int]int, currentIdx, startIdx, width int) []Point {
	var path []Point
	for {
		path = append(path, Point{X: currentIdx % width, Y: currentIdx / width})
		if currentIdx == startIdx {
			break
		}
		prev, ok := cameFrom[currentIdx]
		if !ok {
			return nil
		}
		currentIdx = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func manhattan(a, b Point) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}
