package puzzle

import (
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

type MoveResult int

const (
	MoveBlocked MoveResult = iota
	MoveOK
	MoveWon
	MoveFell
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveWon:
		return "won"
	case MoveFell:
		return "fell"
	}
	return "blocked"
}

type Options struct {
	Theme    Theme
	Fuzzle   bool
	Rule     *Rule
	Seed     uint64
	CellSize float64
	Level    int
}

// Game is one attempt at a puzzle. The generated level is kept pristine so
// a restart undoes Fuzzle mutations.
type Game struct {
	level  Level
	grid   *Grid
	player Point
	moves  int
	won    bool

	fuzzle   bool
	rule     *Rule
	rng      *rand.Rand
	showHint bool

	theme     Theme
	cellSize  float64
	levelNum  int
	time      float64
	particles []particle
}

type particle struct {
	pos, vel cp.Vector
	life     float64
	size     float64
	color    color.Color
}

func NewGame(lvl Level, opts Options) *Game {
	if opts.CellSize <= 0 {
		opts.CellSize = 60
	}
	g := &Game{
		level:    lvl,
		fuzzle:   opts.Fuzzle,
		rule:     opts.Rule,
		rng:      rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		theme:    opts.Theme,
		cellSize: opts.CellSize,
		levelNum: max(1, opts.Level),
	}
	g.Restart()
	return g
}

// Restart restores the generated grid and puts the player back on start.
func (g *Game) Restart() {
	g.grid = g.level.Grid.Clone()
	g.player = g.level.Start()
	g.moves = 0
	g.won = false
	g.showHint = false
}

// Move steps the player by (dx, dy). Walls and the grid edge block without
// counting a move. A pit sends the player back through Restart.
func (g *Game) Move(dx, dy int) MoveResult {
	if g.won {
		return MoveBlocked
	}
	next := g.player.Add(dx, dy)
	if !g.grid.InBounds(next) || g.grid.At(next) == CellWall {
		return MoveBlocked
	}
	g.player = next
	g.moves++
	g.burst(next, g.theme.Player, 3)

	switch g.grid.At(next) {
	case CellGoal:
		g.won = true
		g.burst(next, g.theme.Goal, 20)
		return MoveWon
	case CellPit:
		g.burst(next, g.theme.Hazard, 10)
		g.Restart()
		return MoveFell
	}

	if g.fuzzle {
		g.applyRule()
	}
	return MoveOK
}

func (g *Game) applyRule() {
	n, err := g.rule.Mutations(g.moves)
	if err != nil {
		log.Printf("puzzle: fuzzle: %v", err)
		return
	}
	start := g.level.Start()
	for _, p := range Mutate(g.grid, g.player, start, g.level.Goal(), n, g.rng) {
		g.burst(p, color.NRGBA{R: 0xff, B: 0xff, A: 0xff}, 10)
	}
}

func (g *Game) ToggleHint() { g.showHint = !g.showHint }

// HandleKey applies one key press and reports whether it did anything.
func (g *Game) HandleKey(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return g.Move(0, -1) != MoveBlocked
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return g.Move(0, 1) != MoveBlocked
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return g.Move(-1, 0) != MoveBlocked
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return g.Move(1, 0) != MoveBlocked
	case ebiten.KeyR:
		g.Restart()
		return true
	case ebiten.KeyH:
		g.ToggleHint()
		return true
	}
	return false
}

var gameKeys = []ebiten.Key{
	ebiten.KeyArrowUp, ebiten.KeyW,
	ebiten.KeyArrowDown, ebiten.KeyS,
	ebiten.KeyArrowLeft, ebiten.KeyA,
	ebiten.KeyArrowRight, ebiten.KeyD,
	ebiten.KeyR, ebiten.KeyH,
}

// Update reads this frame's key presses and ages particles.
func (g *Game) Update() {
	for _, k := range gameKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.HandleKey(k)
		}
	}
	g.step()
}

func (g *Game) step() {
	g.time += 1.0 / 60
	alive := g.particles[:0]
	for _, p := range g.particles {
		p.life -= 0.02
		p.pos = p.pos.Add(p.vel)
		if p.life > 0 {
			alive = append(alive, p)
		}
	}
	g.particles = alive
}

func (g *Game) burst(cell Point, c color.Color, count int) {
	center := cp.Vector{
		X: (float64(cell.X) + 0.5) * g.cellSize,
		Y: (float64(cell.Y) + 0.5) * g.cellSize,
	}
	for i := 0; i < count; i++ {
		g.particles = append(g.particles, particle{
			pos:   center,
			vel:   cp.Vector{X: (g.rng.Float64() - 0.5) * 4, Y: (g.rng.Float64() - 0.5) * 4},
			life:  1,
			size:  g.rng.Float64()*4 + 2,
			color: c,
		})
	}
}

func (g *Game) Player() Point     { return g.player }
func (g *Game) Moves() int        { return g.moves }
func (g *Game) Won() bool         { return g.won }
func (g *Game) Grid() *Grid       { return g.grid }
func (g *Game) Level() Level      { return g.level }
func (g *Game) HintVisible() bool { return g.showHint }
func (g *Game) Fuzzle() bool      { return g.fuzzle }
