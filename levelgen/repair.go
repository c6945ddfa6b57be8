package levelgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/arcade/common"
	"github.com/milk9111/arcade/levels"
)

var ErrMissingPlatforms = errors.New("levelgen: response has no platforms array")

const (
	PlatformHeight = 20

	SpawnPlatformX     = 100
	SpawnPlatformY     = 400
	SpawnPlatformWidth = 200

	MinPlatformY = 200
	MaxPlatformY = 500
)

// Raw shapes mirror the model's JSON with every field optional so missing
// values can be told apart from zeros.
type rawPlatform struct {
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	Width     *float64 `json:"width"`
	Moving    *bool    `json:"moving"`
	MoveRange *float64 `json:"moveRange"`
}

type rawEnemy struct {
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	Type  *string  `json:"type"`
	Range *float64 `json:"range"`
}

type rawCollectible struct {
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
	Type *string  `json:"type"`
}

type rawHazard struct {
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	Width *float64 `json:"width"`
	Type  *string  `json:"type"`
}

type rawGoal struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type rawLevel struct {
	Platforms    *[]rawPlatform   `json:"platforms"`
	Enemies      []rawEnemy       `json:"enemies"`
	Collectibles []rawCollectible `json:"collectibles"`
	Hazards      []rawHazard      `json:"hazards"`
	Goal         *rawGoal         `json:"goal"`
}

// StripFences removes markdown code fences a model may wrap its JSON in.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ParseLevel decodes a level body and repairs it. Bodies that are not a JSON
// object or that lack a platforms array are rejected; everything else is
// repaired.
func ParseLevel(body, theme string, levelNumber int) (levels.Level, error) {
	var raw rawLevel
	if err := json.Unmarshal([]byte(StripFences(body)), &raw); err != nil {
		return levels.Level{}, fmt.Errorf("levelgen: decode level: %w", err)
	}
	if raw.Platforms == nil {
		return levels.Level{}, ErrMissingPlatforms
	}
	return repair(raw, theme, levelNumber), nil
}

func repair(raw rawLevel, theme string, levelNumber int) levels.Level {
	lvl := levels.Level{
		Theme:       theme,
		LevelNumber: ClampLevel(levelNumber),
	}

	for _, p := range *raw.Platforms {
		lvl.Platforms = append(lvl.Platforms, levels.Platform{
			X:         orFloat(p.X, 0),
			Y:         orFloat(p.Y, SpawnPlatformY),
			Width:     orFloat(p.Width, 150),
			Height:    PlatformHeight,
			Moving:    p.Moving != nil && *p.Moving,
			MoveRange: orFloat(p.MoveRange, 0),
		})
	}
	for _, e := range raw.Enemies {
		lvl.Enemies = append(lvl.Enemies, levels.Enemy{
			X:     orFloat(e.X, 0),
			Y:     orFloat(e.Y, 400),
			Type:  orString(e.Type, "walker"),
			Range: orFloat(e.Range, 100),
		})
	}
	for _, c := range raw.Collectibles {
		lvl.Collectibles = append(lvl.Collectibles, levels.Collectible{
			X:    orFloat(c.X, 0),
			Y:    orFloat(c.Y, 400),
			Type: orString(c.Type, "coin"),
		})
	}
	for _, h := range raw.Hazards {
		lvl.Hazards = append(lvl.Hazards, levels.Hazard{
			X:     orFloat(h.X, 0),
			Y:     orFloat(h.Y, 500),
			Width: orFloat(h.Width, 50),
			Type:  orString(h.Type, "spike"),
		})
	}

	Normalize(&lvl)

	// Missing goal coordinates take the synthesized position past the last platform.
	last := lvl.Platforms[len(lvl.Platforms)-1]
	lvl.Goal = levels.Goal{X: last.X + 100, Y: last.Y - 50}
	if raw.Goal != nil {
		lvl.Goal.X = orFloat(raw.Goal.X, lvl.Goal.X)
		lvl.Goal.Y = orFloat(raw.Goal.Y, lvl.Goal.Y)
	}
	return lvl
}

// Normalize enforces the level invariants in place: the first platform is
// pinned to the spawn, platform heights are fixed, y is clamped into the
// playable band and unknown variants fall back to their defaults.
func Normalize(lvl *levels.Level) {
	spawn := levels.Platform{
		X:      SpawnPlatformX,
		Y:      SpawnPlatformY,
		Width:  SpawnPlatformWidth,
		Height: PlatformHeight,
	}
	if len(lvl.Platforms) == 0 {
		lvl.Platforms = []levels.Platform{spawn}
	} else {
		lvl.Platforms[0] = spawn
	}

	for i := range lvl.Platforms {
		p := &lvl.Platforms[i]
		p.Height = PlatformHeight
		p.Y = common.Clamp(p.Y, MinPlatformY, MaxPlatformY)
		if p.Width <= 0 {
			p.Width = 150
		}
		if p.MoveRange < 0 {
			p.MoveRange = -p.MoveRange
		}
	}
	for i := range lvl.Enemies {
		e := &lvl.Enemies[i]
		switch e.Type {
		case "walker", "jumper", "flyer":
		default:
			e.Type = "walker"
		}
		if e.Range <= 0 {
			e.Range = 100
		}
	}
	for i := range lvl.Collectibles {
		c := &lvl.Collectibles[i]
		if c.Type != "coin" && c.Type != "powerup" {
			c.Type = "coin"
		}
	}
	for i := range lvl.Hazards {
		h := &lvl.Hazards[i]
		switch h.Type {
		case "spike", "pit", "fire":
		default:
			h.Type = "spike"
		}
		if h.Width <= 0 {
			h.Width = 50
		}
	}
	lvl.LevelNumber = ClampLevel(lvl.LevelNumber)
}

func orFloat(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func orString(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
