// Package puzzle is a grid puzzle: walk from the start cell to the goal,
// avoiding walls and pits. Levels come from a text-generation service with a
// procedural fallback that is always solvable.
package puzzle

type Cell string

const (
	CellFloor Cell = "floor"
	CellWall  Cell = "wall"
	CellStart Cell = "start"
	CellGoal  Cell = "goal"
	CellPit   Cell = "pit"
)

func (c Cell) Valid() bool {
	switch c {
	case CellFloor, CellWall, CellStart, CellGoal, CellPit:
		return true
	}
	return false
}

type Point struct {
	X, Y int
}

func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Grid is a row-major cell grid; Cells[y][x].
type Grid struct {
	Width  int
	Height int
	Cells  [][]Cell
}

func NewGrid(width, height int) *Grid {
	g := &Grid{Width: width, Height: height, Cells: make([][]Cell, height)}
	for y := range g.Cells {
		g.Cells[y] = make([]Cell, width)
		for x := range g.Cells[y] {
			g.Cells[y][x] = CellFloor
		}
	}
	return g
}

func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// At returns the cell at p; out of bounds reads as wall.
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return CellWall
	}
	return g.Cells[p.Y][p.X]
}

func (g *Grid) Set(p Point, c Cell) {
	if g.InBounds(p) {
		g.Cells[p.Y][p.X] = c
	}
}

// Find returns the first cell of kind c in row-major order.
func (g *Grid) Find(c Cell) (Point, bool) {
	for y, row := range g.Cells {
		for x, cell := range row {
			if cell == c {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

func (g *Grid) Clone() *Grid {
	out := &Grid{Width: g.Width, Height: g.Height, Cells: make([][]Cell, len(g.Cells))}
	for y, row := range g.Cells {
		out.Cells[y] = append([]Cell(nil), row...)
	}
	return out
}

// Rows renders the grid as the string rows used in level JSON.
func (g *Grid) Rows() [][]string {
	out := make([][]string, len(g.Cells))
	for y, row := range g.Cells {
		out[y] = make([]string, len(row))
		for x, c := range row {
			out[y][x] = string(c)
		}
	}
	return out
}

// Level is a generated puzzle.
type Level struct {
	Grid         *Grid
	Hint         string
	WinCondition string
	FlavorText   string
	// FuzzleRule is the model's description of the dynamic rule; the rule
	// actually applied is the configured script.
	FuzzleRule string
	Theme      string
	Difficulty int
}

func (l Level) Start() Point {
	p, _ := l.Grid.Find(CellStart)
	return p
}

func (l Level) Goal() Point {
	p, _ := l.Grid.Find(CellGoal)
	return p
}
