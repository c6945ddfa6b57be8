// Command levelgen generates one level and prints it as JSON, the same way
// the game would request it.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.design/x/clipboard"

	"github.com/milk9111/arcade/levelgen"
	"github.com/milk9111/arcade/llm"
	"github.com/milk9111/arcade/prefabs"
	"github.com/milk9111/arcade/puzzle"
)

type puzzleJSON struct {
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Grid         [][]string `json:"grid"`
	Hint         string     `json:"hint"`
	WinCondition string     `json:"winCondition"`
	FlavorText   string     `json:"flavorText"`
	FuzzleRule   string     `json:"fuzzleRule,omitempty"`
}

func main() {
	theme := flag.String("theme", levelgen.DefaultTheme, "theme key")
	n := flag.Int("n", 1, "level number, or difficulty with -puzzle")
	offline := flag.Bool("offline", false, "skip the service and print the procedural fallback")
	model := flag.String("model", llm.DefaultModel, "chat completion model")
	endpoint := flag.String("endpoint", llm.DefaultBaseURL, "OpenAI-compatible base URL")
	timeout := flag.Duration("timeout", llm.DefaultTimeout, "request timeout")
	asPuzzle := flag.Bool("puzzle", false, "generate a grid puzzle instead of a platformer level")
	fuzzle := flag.Bool("fuzzle", false, "ask for a fuzzle rule (with -puzzle)")
	copyOut := flag.Bool("copy", false, "also copy the JSON to the clipboard")
	flag.Parse()

	cfg := llm.ConfigFromEnv()
	cfg.Model, cfg.BaseURL, cfg.Timeout = *model, *endpoint, *timeout
	completer := llm.New(cfg)
	if *offline {
		completer = llm.Offline{}
	}

	var (
		out    any
		source levelgen.Source
	)
	if *asPuzzle {
		spec, err := prefabs.LoadPuzzleSpec()
		if err != nil {
			log.Fatal(err)
		}
		res := puzzle.NewGenerator(completer, spec.Size).Generate(context.Background(), puzzle.Request{
			Theme:      *theme,
			Difficulty: *n,
			Fuzzle:     *fuzzle,
		})
		l := res.Level
		out = puzzleJSON{
			Width:        l.Grid.Width,
			Height:       l.Grid.Height,
			Grid:         l.Grid.Rows(),
			Hint:         l.Hint,
			WinCondition: l.WinCondition,
			FlavorText:   l.FlavorText,
			FuzzleRule:   l.FuzzleRule,
		}
		source = res.Source
	} else {
		gen, err := levelgen.NewFromPrefabs(completer)
		if err != nil {
			log.Fatal(err)
		}
		res := gen.Generate(context.Background(), *theme, *n)
		out, source = res.Level, res.Source
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "source: %s\n", source)
	fmt.Println(string(data))

	if *copyOut {
		if err := clipboard.Init(); err != nil {
			log.Fatalf("clipboard: %v", err)
		}
		clipboard.Write(clipboard.FmtText, data)
		fmt.Fprintln(os.Stderr, "copied to clipboard")
	}
}
