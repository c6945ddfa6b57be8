package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var hudFace = ebtext.NewGoXFace(basicfont.Face7x13)

// HUDSystem draws the screen-space overlay: score, coins, hearts, level and
// the end-of-attempt banner.
type HUDSystem struct {
	width, height float64
}

func NewHUDSystem(width, height float64) *HUDSystem {
	return &HUDSystem{width: width, height: height}
}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if h == nil || w == nil || screen == nil {
		return
	}
	session, ok := findSession(w)
	if !ok {
		return
	}
	pr, ok := findPlayer(w)
	if !ok {
		return
	}

	vector.FillRect(screen, 8, 8, 190, 74, color.RGBA{A: 0x90}, false)
	drawText(screen, fmt.Sprintf("Score: %d", session.Score), 18, 16, color.White)
	drawText(screen, fmt.Sprintf("Coins: %d", pr.player.Coins), 18, 34, colornames.Gold)
	for i := 0; i < pr.player.MaxHealth; i++ {
		c := color.Color(colornames.Red)
		if i >= pr.player.Health {
			c = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
		}
		drawHeart(screen, float32(26+i*24), 64, 8, c)
	}

	level := fmt.Sprintf("Level %d", session.LevelNumber)
	drawText(screen, level, h.width-float64(len(level)*7)-16, 16, color.White)

	if session.State.Terminal() {
		h.drawOutcome(screen, session)
	}
}

func (h *HUDSystem) drawOutcome(screen *ebiten.Image, session *component.Session) {
	vector.FillRect(screen, 0, 0, float32(h.width), float32(h.height), color.RGBA{A: 0xb0}, false)

	title, tint := "GAME OVER", color.Color(colornames.Tomato)
	if session.State == component.StateVictory {
		title, tint = "LEVEL COMPLETE!", colornames.Lightgreen
	}
	lines := []struct {
		text string
		c    color.Color
	}{
		{title, tint},
		{fmt.Sprintf("Final Score: %d", session.Score), color.White},
		{"Press Enter to continue", colornames.Lightgray},
	}
	y := h.height/2 - 30
	for _, l := range lines {
		drawText(screen, l.text, (h.width-float64(len(l.text)*7))/2, y, l.c)
		y += 24
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, hudFace, op)
}
