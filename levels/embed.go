package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Platform is one solid ledge. Height is always 20 after repair.
type Platform struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Moving    bool    `json:"moving"`
	MoveRange float64 `json:"moveRange"`
}

type Enemy struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Type  string  `json:"type"`
	Range float64 `json:"range"`
}

type Collectible struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Type string  `json:"type"`
}

type Hazard struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
	Type  string  `json:"type"`
}

type Goal struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Level is a complete, repaired level description. It is treated as
// immutable once produced.
type Level struct {
	Platforms    []Platform    `json:"platforms"`
	Enemies      []Enemy       `json:"enemies"`
	Collectibles []Collectible `json:"collectibles"`
	Hazards      []Hazard      `json:"hazards"`
	Goal         Goal          `json:"goal"`
	Theme        string        `json:"theme"`
	LevelNumber  int           `json:"levelNumber"`
}

// ReadLevel returns the raw JSON of an embedded level. The ".json" suffix is
// optional. Callers run the bytes through the level repair pass.
func ReadLevel(name string) ([]byte, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return data, nil
}

// Names lists the embedded levels without their extension.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(out)
	return out
}
