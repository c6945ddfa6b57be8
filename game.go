package main

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/arcade/async"
	"github.com/milk9111/arcade/common"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/levelgen"
	"github.com/milk9111/arcade/levels"
	"github.com/milk9111/arcade/llm"
	"github.com/milk9111/arcade/platformer"
	"github.com/milk9111/arcade/prefabs"
	"github.com/milk9111/arcade/settings"
	"github.com/milk9111/arcade/sfx"
)

type scene int

const (
	sceneMenu scene = iota
	sceneLoading
	scenePlaying
)

type Options struct {
	Debug       bool
	LevelName   string
	Theme       string
	LevelNumber int
}

type Game struct {
	debug  bool
	frames int

	completer llm.Completer
	gen       *levelgen.Generator
	tuning    *prefabs.TuningSpec
	prefs     *settings.Manager
	sound     *sfx.Player
	watcher   *prefabs.Watcher

	scene       scene
	menu        *ebitenui.UI
	pauseUI     *ebitenui.UI
	paused      bool
	loader      *async.Loader[levelgen.Result]
	theme       string
	levelNumber int
	source      levelgen.Source

	play *platformer.Game
}

func NewGame(opts Options, completer llm.Completer, prefs *settings.Manager, sound *sfx.Player) (*Game, error) {
	gen, err := levelgen.NewFromPrefabs(completer)
	if err != nil {
		return nil, err
	}
	tuning, err := prefabs.LoadTuningSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:       opts.Debug,
		completer:   completer,
		gen:         gen,
		tuning:      tuning,
		prefs:       prefs,
		sound:       sound,
		loader:      async.NewLoader[levelgen.Result](),
		theme:       opts.Theme,
		levelNumber: levelgen.ClampLevel(opts.LevelNumber),
	}
	if g.theme == "" {
		g.theme = prefs.Get().PlatformerTheme
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Debug {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if opts.LevelName != "" {
		lvl, err := loadNamedLevel(opts.LevelName, g.gen.Themes().Resolve(g.theme).Key, g.levelNumber)
		if err != nil {
			return nil, err
		}
		g.source = levelgen.Source("file")
		g.startPlaying(lvl)
		return g, nil
	}

	g.toMenu()
	return g, nil
}

// loadNamedLevel reads a level from levels/ and runs it through the same
// repair as generated levels.
func loadNamedLevel(name, theme string, levelNumber int) (levels.Level, error) {
	data, err := levels.ReadLevel(name)
	if err != nil {
		return levels.Level{}, fmt.Errorf("level %s: %w", name, err)
	}
	lvl, err := levelgen.ParseLevel(string(data), theme, levelNumber)
	if err != nil {
		return levels.Level{}, fmt.Errorf("level %s: %w", name, err)
	}
	return lvl, nil
}

func (g *Game) toMenu() {
	g.loader.Cancel()
	g.play = nil
	g.menu = NewMenuUI(g, g.gen.Themes().All())
	g.scene = sceneMenu
}

// startLevel asks for the current level number in theme. Any request still
// in flight is superseded.
func (g *Game) startLevel(theme string) {
	g.theme = theme
	if err := g.prefs.Update(func(s *settings.Settings) { s.PlatformerTheme = theme }); err != nil {
		log.Printf("settings: %v", err)
	}
	gen, n := g.gen, g.levelNumber
	g.loader.Start(context.Background(), func(ctx context.Context) (levelgen.Result, error) {
		return gen.Generate(ctx, theme, n), nil
	})
	g.scene = sceneLoading
}

func (g *Game) startPlaying(lvl levels.Level) {
	th := g.gen.Themes().Resolve(lvl.Theme)
	play, err := platformer.New(lvl, platformer.Config{
		Tuning: g.tuning,
		Theme:  th,
		Seed:   uint64(lvl.LevelNumber)<<32 | uint64(g.frames),
	})
	if err != nil {
		log.Printf("platformer: %v", err)
		g.toMenu()
		return
	}
	g.play = play
	g.paused = false
	g.scene = scenePlaying
}

func (g *Game) restart() {
	if g.play != nil {
		g.startPlaying(g.play.Level())
	}
}

func (g *Game) toggleSound() bool {
	on := !g.sound.Enabled()
	g.sound.SetEnabled(on)
	if err := g.prefs.Update(func(s *settings.Settings) { s.SoundEnabled = on }); err != nil {
		log.Printf("settings: %v", err)
	}
	return on
}

func (g *Game) Update() error {
	g.frames++
	g.reloadPrefabs()

	switch g.scene {
	case sceneMenu:
		g.menu.Update()
	case sceneLoading:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.toMenu()
			return nil
		}
		if res, ok := g.loader.Poll(); ok {
			g.source = res.Value.Source
			g.startPlaying(res.Value.Level)
		}
	case scenePlaying:
		g.updatePlaying()
	}
	return nil
}

func (g *Game) updatePlaying() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return
	}

	g.sound.PlayEvents(g.play.Update())

	if !g.play.State().Terminal() || !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	if g.play.State() == component.StateVictory {
		g.levelNumber = levelgen.ClampLevel(g.levelNumber + 1)
		g.startLevel(g.theme)
		return
	}
	g.restart()
}

// reloadPrefabs applies edited prefab files in debug builds. Tuning applies
// from the next attempt; themes and difficulty rebuild the generator.
func (g *Game) reloadPrefabs() {
	for _, name := range g.watcher.Pending() {
		switch name {
		case "tuning.yaml":
			t, err := prefabs.LoadTuningSpec()
			if err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			g.tuning = t
		case "themes.yaml", "difficulty.yaml":
			gen, err := levelgen.NewFromPrefabs(g.completer)
			if err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			g.gen = gen
		default:
			continue
		}
		log.Printf("prefabs: reloaded %s", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.scene {
	case sceneMenu:
		screen.Fill(color.NRGBA{R: 0x02, G: 0x06, B: 0x17, A: 0xff})
		g.menu.Draw(screen)
	case sceneLoading:
		screen.Fill(color.Black)
		th := g.gen.Themes().Resolve(g.theme)
		drawCentered(screen, fmt.Sprintf("Generating %s - level %d...", th.Name, g.levelNumber), 0, th.Accent)
		drawCentered(screen, "Esc to cancel", 30, color.Gray{Y: 0x90})
	case scenePlaying:
		g.play.Draw(screen)
		if g.paused {
			g.pauseUI.Draw(screen)
		}
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    source: %s", g.frames, ebiten.ActualFPS(), g.source))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	g.loader.Cancel()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func drawCentered(screen *ebiten.Image, s string, dy float64, c color.Color) {
	b := screen.Bounds()
	w, _ := ebtext.Measure(s, uiFace, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate((float64(b.Dx())-w)/2, float64(b.Dy())/2+dy)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, uiFace, op)
}
