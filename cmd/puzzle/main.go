package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/arcade/common"
	"github.com/milk9111/arcade/llm"
	"github.com/milk9111/arcade/prefabs"
	"github.com/milk9111/arcade/puzzle"
	"github.com/milk9111/arcade/settings"
	"github.com/milk9111/arcade/sfx"
)

func main() {
	offline := flag.Bool("offline", false, "never call the generation service")
	model := flag.String("model", llm.DefaultModel, "chat completion model")
	endpoint := flag.String("endpoint", llm.DefaultBaseURL, "OpenAI-compatible base URL")
	timeout := flag.Duration("timeout", llm.DefaultTimeout, "generation request timeout")
	level := flag.Int("n", 1, "starting level (difficulty)")
	rule := flag.String("rule", "", "fuzzle rule script in prefabs/scripts (defaults to puzzle.yaml)")
	theme := flag.String("theme", "", "start straight away in this theme; any text works as a custom theme")
	flag.Parse()

	spec, err := prefabs.LoadPuzzleSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *rule == "" {
		*rule = spec.FuzzleRule
	}
	fuzzleRule, err := puzzle.LoadRule(*rule)
	if err != nil {
		log.Fatal(err)
	}

	cfg := llm.ConfigFromEnv()
	cfg.Model, cfg.BaseURL, cfg.Timeout = *model, *endpoint, *timeout
	completer := llm.New(cfg)
	if *offline {
		completer = llm.Offline{}
	}

	prefs := settings.Open(settings.AppName)
	p := prefs.Get()

	app := &App{
		gen:      puzzle.NewGenerator(completer, spec.Size),
		themes:   puzzle.NewThemes(spec.Themes),
		rule:     fuzzleRule,
		cellSize: spec.CellSize,
		prefs:    prefs,
		sound:    sfx.NewPlayer(p.SoundEnabled, p.SoundVolume),
		level:    max(1, *level),
		fuzzle:   p.Fuzzle,
	}
	app.init()
	if custom, ok := puzzle.CustomTheme(*theme); ok {
		app.start(custom)
	}

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight+100)
	ebiten.SetWindowTitle("AI puzzle")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
