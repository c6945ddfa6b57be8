package main

import (
	"context"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/arcade/async"
	"github.com/milk9111/arcade/puzzle"
	"github.com/milk9111/arcade/settings"
	"github.com/milk9111/arcade/sfx"
)

const (
	screenWidth  = 1024
	screenHeight = 700
)

// App walks theme selection, generation and play for the puzzle game.
type App struct {
	gen      *puzzle.Generator
	themes   *puzzle.Themes
	rule     *puzzle.Rule
	cellSize float64
	prefs    *settings.Manager
	sound    *sfx.Player

	loader *async.Loader[puzzle.Result]
	level  int
	fuzzle bool
	theme  string
	game   *puzzle.Game
	menu   *ebitenui.UI
	frames int
}

func (a *App) init() {
	a.loader = async.NewLoader[puzzle.Result]()
	a.theme = a.prefs.Get().PuzzleTheme
	a.toMenu()
}

// toMenu drops the current puzzle and rebuilds the menu so it shows the
// current level and last theme.
func (a *App) toMenu() {
	a.game = nil
	a.menu = NewMenuUI(a)
}

func (a *App) start(theme string) {
	a.theme = theme
	if err := a.prefs.Update(func(s *settings.Settings) {
		s.PuzzleTheme = theme
		s.Fuzzle = a.fuzzle
	}); err != nil {
		log.Printf("settings: %v", err)
	}
	gen, req := a.gen, puzzle.Request{Theme: theme, Difficulty: a.level, Fuzzle: a.fuzzle}
	a.loader.Start(context.Background(), func(ctx context.Context) (puzzle.Result, error) {
		return gen.Generate(ctx, req), nil
	})
	a.game = nil
}

func (a *App) Update() error {
	a.frames++
	if res, ok := a.loader.Poll(); ok {
		th, _ := a.themes.Get(a.theme)
		a.game = puzzle.NewGame(res.Value.Level, puzzle.Options{
			Theme:    th,
			Fuzzle:   a.fuzzle,
			Rule:     a.rule,
			Seed:     uint64(a.frames),
			CellSize: a.cellSize,
			Level:    a.level,
		})
	}
	switch {
	case a.loader.Busy():
	case a.game == nil:
		a.menu.Update()
	default:
		a.updateGame()
	}
	return nil
}

func (a *App) updateGame() {
	moves, won := a.game.Moves(), a.game.Won()
	a.game.Update()
	switch {
	case a.game.Won() && !won:
		a.sound.Play(sfx.SoundVictory)
	case a.game.Moves() > moves:
		a.sound.Play(sfx.SoundStep)
	case a.game.Moves() == 0 && moves > 0:
		a.sound.Play(sfx.SoundDamage)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.toMenu()
		return
	}
	if a.game.Won() && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.level++
		a.toMenu()
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.game != nil {
		a.game.Draw(screen)
		return
	}
	screen.Fill(color.NRGBA{R: 0x02, G: 0x06, B: 0x17, A: 0xff})
	if a.loader.Busy() {
		msg := "Generating puzzle: " + a.theme
		w, _ := ebtext.Measure(msg, uiFace, 0)
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate((screenWidth-w)/2, screenHeight/2)
		op.ColorScale.ScaleWithColor(colornames.Gold)
		ebtext.Draw(screen, msg, uiFace, op)
		return
	}
	a.menu.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
