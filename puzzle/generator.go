package puzzle

import (
	"context"
	"fmt"
	"log"

	"github.com/milk9111/arcade/levelgen"
	"github.com/milk9111/arcade/llm"
)

type Request struct {
	Theme      string
	Difficulty int
	Fuzzle     bool
}

type Result struct {
	Level  Level
	Source levelgen.Source
	// Reason is why the fallback ran; nil for AI puzzles.
	Reason error
}

type Generator struct {
	completer llm.Completer
	size      int
}

func NewGenerator(completer llm.Completer, size int) *Generator {
	if completer == nil {
		completer = llm.Offline{}
	}
	return &Generator{completer: completer, size: size}
}

func (g *Generator) Size() int { return g.size }

// Generate never fails: unreachable services, malformed grids and unsolvable
// layouts all yield the procedural fallback.
func (g *Generator) Generate(ctx context.Context, req Request) Result {
	lvl, err := g.fromService(ctx, req)
	if err != nil {
		log.Printf("puzzle: fallback: theme=%s difficulty=%d: %v", req.Theme, req.Difficulty, err)
		return Result{
			Level:  Fallback(req.Theme, req.Difficulty, g.size, nil),
			Source: levelgen.SourceFallback,
			Reason: err,
		}
	}
	return Result{Level: lvl, Source: levelgen.SourceAI}
}

func (g *Generator) fromService(ctx context.Context, req Request) (Level, error) {
	sys, user, err := buildPrompts(req, g.size)
	if err != nil {
		return Level{}, fmt.Errorf("puzzle: prompt: %w", err)
	}
	body, err := g.completer.Complete(ctx, sys, user)
	if err != nil {
		return Level{}, err
	}
	lvl, err := ParseLevel(body, g.size)
	if err != nil {
		return Level{}, err
	}
	if !Solvable(lvl.Grid, lvl.Start(), lvl.Goal()) {
		return Level{}, ErrUnsolvable
	}
	lvl.Theme, lvl.Difficulty = req.Theme, req.Difficulty
	return lvl, nil
}
