package puzzle

import (
	"fmt"
	"math/rand/v2"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/arcade/prefabs"
)

// DefaultRule walls one floor cell every fifth move.
const DefaultRule = "wall_shift"

// maxMutations caps what a script may ask for in one move.
const maxMutations = 8

// Rule is a compiled Fuzzle script. The script reads the global `moves` and
// sets `mutate` and `count`.
type Rule struct {
	Name     string
	compiled *tengo.Compiled
}

func LoadRule(name string) (*Rule, error) {
	if name == "" {
		name = DefaultRule
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("puzzle: load rule %s: %w", name, err)
	}
	return CompileRule(name, src)
}

func CompileRule(name string, src []byte) (*Rule, error) {
	script := tengo.NewScript(src)
	_ = script.Add("moves", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("puzzle: compile rule %s: %w", name, err)
	}
	// Globals the script declares are only defined after a run.
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("puzzle: run rule %s: %w", name, err)
	}
	for _, out := range []string{"mutate", "count"} {
		if !compiled.IsDefined(out) {
			return nil, fmt.Errorf("puzzle: rule %s: %s is not defined", name, out)
		}
	}
	return &Rule{Name: name, compiled: compiled}, nil
}

// Mutations runs the script for the given move count and returns how many
// cells to wall, zero when the rule does not fire.
func (r *Rule) Mutations(moves int) (int, error) {
	if r == nil || r.compiled == nil {
		return 0, nil
	}
	if err := r.compiled.Set("moves", moves); err != nil {
		return 0, err
	}
	if err := r.compiled.Run(); err != nil {
		return 0, fmt.Errorf("puzzle: rule %s: %w", r.Name, err)
	}
	if !r.compiled.Get("mutate").Bool() {
		return 0, nil
	}
	return max(0, min(r.compiled.Get("count").Int(), maxMutations)), nil
}

// Mutate walls up to count random floor cells other than the player's.
// A candidate that would cut the player or the start off from the goal is
// skipped. It returns the cells that were walled.
func Mutate(g *Grid, player, start, goal Point, count int, rng *rand.Rand) []Point {
	if count <= 0 {
		return nil
	}
	var candidates []Point
	for y, row := range g.Cells {
		for x, c := range row {
			p := Point{X: x, Y: y}
			if c == CellFloor && p != player {
				candidates = append(candidates, p)
			}
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var walled []Point
	for _, p := range candidates {
		if len(walled) == count {
			break
		}
		g.Set(p, CellWall)
		if !Solvable(g, player, goal) || !Solvable(g, start, goal) {
			g.Set(p, CellFloor)
			continue
		}
		walled = append(walled, p)
	}
	return walled
}
