// Package levelgen produces platformer levels, asking a text-generation
// service first and falling back to a seeded procedural layout.
package levelgen

import (
	"context"
	"fmt"
	"log"

	"github.com/milk9111/arcade/levels"
	"github.com/milk9111/arcade/llm"
)

type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

type Result struct {
	Level  levels.Level
	Source Source
	// Reason is why the fallback ran; nil for AI levels.
	Reason error
}

type Generator struct {
	completer llm.Completer
	themes    *Themes
	presets   Presets
}

func New(completer llm.Completer, themes *Themes, presets Presets) *Generator {
	if completer == nil {
		completer = llm.Offline{}
	}
	return &Generator{completer: completer, themes: themes, presets: presets}
}

// NewFromPrefabs loads the theme table and difficulty presets.
func NewFromPrefabs(completer llm.Completer) (*Generator, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, fmt.Errorf("levelgen: themes: %w", err)
	}
	presets, err := LoadPresets()
	if err != nil {
		return nil, fmt.Errorf("levelgen: difficulty: %w", err)
	}
	return New(completer, themes, presets), nil
}

func (g *Generator) Themes() *Themes { return g.themes }

func (g *Generator) Difficulty(levelNumber int) Difficulty {
	return g.presets.For(levelNumber)
}

// Generate never fails. Any problem reaching or parsing the service yields
// the procedural fallback.
func (g *Generator) Generate(ctx context.Context, theme string, levelNumber int) Result {
	th := g.themes.Resolve(theme)
	levelNumber = ClampLevel(levelNumber)
	d := g.presets.For(levelNumber)

	lvl, err := g.fromService(ctx, th, levelNumber, d)
	if err != nil {
		log.Printf("levelgen: fallback: theme=%s level=%d: %v", th.Key, levelNumber, err)
		return Result{
			Level:  Fallback(th.Key, levelNumber, d),
			Source: SourceFallback,
			Reason: err,
		}
	}
	return Result{Level: lvl, Source: SourceAI}
}

func (g *Generator) fromService(ctx context.Context, th Theme, levelNumber int, d Difficulty) (levels.Level, error) {
	prompt, err := buildPrompt(th, levelNumber, d)
	if err != nil {
		return levels.Level{}, fmt.Errorf("levelgen: prompt: %w", err)
	}
	body, err := g.completer.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return levels.Level{}, err
	}
	return ParseLevel(body, th.Key, levelNumber)
}
