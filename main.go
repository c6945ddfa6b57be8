package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/arcade/llm"
	"github.com/milk9111/arcade/settings"
	"github.com/milk9111/arcade/sfx"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and prefab hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional); skips generation")
	theme := flag.String("theme", "", "theme key; defaults to the last one chosen")
	levelNumber := flag.Int("n", 1, "level number to start at (1-20)")
	offline := flag.Bool("offline", false, "never call the generation service")
	model := flag.String("model", llm.DefaultModel, "chat completion model")
	endpoint := flag.String("endpoint", llm.DefaultBaseURL, "OpenAI-compatible base URL")
	timeout := flag.Duration("timeout", llm.DefaultTimeout, "generation request timeout")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	cfg := llm.ConfigFromEnv()
	cfg.Model, cfg.BaseURL, cfg.Timeout = *model, *endpoint, *timeout
	completer := llm.New(cfg)
	if *offline {
		completer = llm.Offline{}
	}
	if _, ok := completer.(llm.Offline); ok {
		log.Printf("levelgen: offline, levels are procedural (set %s to enable generation)", llm.APIKeyEnv)
	}

	prefs := settings.Open(settings.AppName)
	p := prefs.Get()
	sound := sfx.NewPlayer(p.SoundEnabled, p.SoundVolume)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1024, 600)
	ebiten.SetWindowTitle("arcade")
	ebiten.SetTPS(60)

	game, err := NewGame(Options{
		Debug:       *debug,
		LevelName:   *levelName,
		Theme:       *theme,
		LevelNumber: *levelNumber,
	}, completer, prefs, sound)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
