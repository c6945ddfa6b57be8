package puzzle

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var face = ebtext.NewGoXFace(basicfont.Face7x13)

// Draw centers the grid on screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.theme.Background)
	b := screen.Bounds()
	gw := float64(g.grid.Width) * g.cellSize
	gh := float64(g.grid.Height) * g.cellSize
	ox := (float64(b.Dx()) - gw) / 2
	oy := (float64(b.Dy()) - gh) / 2

	g.drawGrid(screen, ox, oy)
	g.drawPlayer(screen, ox, oy)
	for _, p := range g.particles {
		vector.FillCircle(screen, float32(ox+p.pos.X), float32(oy+p.pos.Y), float32(p.size), fade(p.color, p.life), true)
	}
	if g.fuzzle {
		g.drawGlitch(screen)
	}
	g.drawHUD(screen)
}

func (g *Game) drawGrid(screen *ebiten.Image, ox, oy float64) {
	cs := float32(g.cellSize)
	for y, row := range g.grid.Cells {
		for x, c := range row {
			px := float32(ox) + float32(x)*cs
			py := float32(oy) + float32(y)*cs
			vector.FillRect(screen, px, py, cs, cs, g.theme.Floor, false)
			vector.StrokeRect(screen, px, py, cs, cs, 1, g.theme.Grid, false)

			switch c {
			case CellWall:
				vector.FillRect(screen, px, py, cs, cs, g.theme.Wall, false)
				vector.FillRect(screen, px, py+cs-10, cs, 10, shade(g.theme.Wall, 0.75), false)
				vector.FillRect(screen, px, py, cs, 4, shade(g.theme.Wall, 1.25), false)
			case CellPit:
				vector.FillRect(screen, px+5, py+5, cs-10, cs-10, color.Black, false)
				vector.StrokeRect(screen, px+5, py+5, cs-10, cs-10, 2, g.theme.Hazard, false)
			case CellGoal:
				pulse := float32(math.Sin(g.time*5) * 5)
				cx, cy := px+cs/2, py+cs/2
				vector.FillCircle(screen, cx, cy, cs/3+pulse+4, fade(g.theme.Goal, 0.3), true)
				vector.FillCircle(screen, cx, cy, cs/3+pulse, g.theme.Goal, true)
			}
		}
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, ox, oy float64) {
	cs := float32(g.cellSize)
	px := float32(ox) + float32(g.player.X)*cs
	py := float32(oy) + float32(g.player.Y)*cs
	vector.FillRect(screen, px+6, py+6, cs-12, cs-12, fade(g.theme.Player, 0.3), false)
	vector.FillRect(screen, px+10, py+10, cs-20, cs-20, g.theme.Player, false)
}

// drawGlitch flashes a displaced band now and then while Fuzzle is on.
func (g *Game) drawGlitch(screen *ebiten.Image) {
	if g.rng.Float64() >= 0.05 {
		return
	}
	b := screen.Bounds()
	y := g.rng.Float64() * float64(b.Dy())
	h := g.rng.Float64() * 40
	offset := (g.rng.Float64() - 0.5) * 20
	vector.FillRect(screen, float32(offset), float32(y), float32(b.Dx()), float32(h), fade(g.theme.Hazard, 0.25), false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	drawText(screen, fmt.Sprintf("LEVEL %d", g.levelNum), 16, 16, g.theme.Player)
	drawText(screen, fmt.Sprintf("MOVES %d", g.moves), 16, 34, g.theme.Player)
	name := g.theme.Name
	if name == "" || (g.level.Theme != "" && g.level.Theme != g.theme.Key) {
		name = g.level.Theme
	}
	drawText(screen, name, 16, 52, g.theme.Goal)
	if g.fuzzle {
		drawText(screen, "FUZZLE", 16, 70, g.theme.Hazard)
	}

	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if g.showHint {
		hint := g.level.Hint
		if hint == "" {
			hint = "No hint available."
		}
		vector.FillRect(screen, 0, float32(h-60), float32(w), 60, color.NRGBA{A: 0xc0}, false)
		drawText(screen, hint, 16, h-40, color.White)
	}
	if g.won {
		vector.FillRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{A: 0xa0}, false)
		drawText(screen, "PUZZLE SOLVED!", w/2-50, h/2-20, g.theme.Goal)
		drawText(screen, fmt.Sprintf("Moves: %d", g.moves), w/2-35, h/2, color.White)
		drawText(screen, "Press Enter for the next level", w/2-105, h/2+30, color.White)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, face, op)
}

func fade(c color.Color, alpha float64) color.Color {
	if c == nil {
		c = color.White
	}
	alpha = max(0, min(alpha, 1))
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	n.A = uint16(float64(n.A) * alpha)
	return n
}

func shade(c color.Color, k float64) color.Color {
	if c == nil {
		return color.Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	scale := func(v uint8) uint8 { return uint8(max(0, min(float64(v)*k, 255))) }
	return color.NRGBA{R: scale(n.R), G: scale(n.G), B: scale(n.B), A: n.A}
}
