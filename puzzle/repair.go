package puzzle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/milk9111/arcade/levelgen"
)

var (
	ErrInvalidGrid = errors.New("puzzle: response grid is not an array")
	ErrUnsolvable  = errors.New("puzzle: no path from start to goal")
)

const (
	defaultHint         = "Pathfinding is key."
	defaultWinCondition = "Reach the goal"
)

type rawLevel struct {
	Grid         json.RawMessage `json:"grid"`
	Hint         string          `json:"hint"`
	WinCondition string          `json:"winCondition"`
	FlavorText   string          `json:"flavorText"`
	FuzzleRule   string          `json:"fuzzleRule"`
}

// ParseLevel decodes a generated puzzle and repairs it onto a size x size
// grid. Only a missing or non-array grid is rejected.
func ParseLevel(body string, size int) (Level, error) {
	var raw rawLevel
	if err := json.Unmarshal([]byte(levelgen.StripFences(body)), &raw); err != nil {
		return Level{}, fmt.Errorf("puzzle: decode level: %w", err)
	}
	trimmed := bytes.TrimSpace(raw.Grid)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return Level{}, ErrInvalidGrid
	}
	var rows [][]string
	if err := json.Unmarshal(trimmed, &rows); err != nil {
		return Level{}, fmt.Errorf("puzzle: decode grid: %w", err)
	}

	lvl := Level{
		Grid:         repairGrid(rows, size),
		Hint:         raw.Hint,
		WinCondition: raw.WinCondition,
		FlavorText:   raw.FlavorText,
		FuzzleRule:   raw.FuzzleRule,
	}
	if lvl.Hint == "" {
		lvl.Hint = defaultHint
	}
	if lvl.WinCondition == "" {
		lvl.WinCondition = defaultWinCondition
	}
	return lvl, nil
}

// repairGrid fits rows to size x size. Unknown cells become floor, only the
// first start and goal survive, and a missing start or goal is placed in the
// top-left or bottom-right corner.
func repairGrid(rows [][]string, size int) *Grid {
	g := NewGrid(size, size)
	var hasStart, hasGoal bool
	for y := 0; y < size && y < len(rows); y++ {
		for x := 0; x < size && x < len(rows[y]); x++ {
			c := Cell(rows[y][x])
			switch {
			case !c.Valid():
				c = CellFloor
			case c == CellStart && hasStart, c == CellGoal && hasGoal:
				c = CellFloor
			case c == CellStart:
				hasStart = true
			case c == CellGoal:
				hasGoal = true
			}
			g.Cells[y][x] = c
		}
	}
	if !hasStart {
		g.Set(Point{}, CellStart)
		hasGoal = g.Count(CellGoal) > 0
	}
	if !hasGoal {
		g.Set(Point{X: size - 1, Y: size - 1}, CellGoal)
	}
	return g
}
