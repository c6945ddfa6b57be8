package puzzle

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/milk9111/arcade/prefabs"
)

const DefaultTheme = "cyberpunk"

const maxCustomTheme = 48

type Theme struct {
	Key         string
	Name        string
	Description string
	Background  color.Color
	Grid        color.Color
	Wall        color.Color
	Floor       color.Color
	Player      color.Color
	Goal        color.Color
	Hazard      color.Color
}

var defaultColors = Theme{
	Background: color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff},
	Grid:       color.NRGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff},
	Wall:       color.NRGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff},
	Floor:      color.NRGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff},
	Player:     color.NRGBA{R: 0x63, G: 0x66, B: 0xf1, A: 0xff},
	Goal:       color.NRGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff},
	Hazard:     color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff},
}

type Themes struct {
	order []Theme
	byKey map[string]int
}

func NewThemes(specs []prefabs.PuzzleThemeSpec) *Themes {
	t := &Themes{byKey: make(map[string]int, len(specs))}
	for _, s := range specs {
		th := Theme{
			Key:         s.Key,
			Name:        s.Name,
			Description: s.Description,
			Background:  s.Background.Or(defaultColors.Background),
			Grid:        s.Grid.Or(defaultColors.Grid),
			Wall:        s.Wall.Or(defaultColors.Wall),
			Floor:       s.Floor.Or(defaultColors.Floor),
			Player:      s.Player.Or(defaultColors.Player),
			Goal:        s.Goal.Or(defaultColors.Goal),
			Hazard:      s.Hazard.Or(defaultColors.Hazard),
		}
		t.byKey[th.Key] = len(t.order)
		t.order = append(t.order, th)
	}
	return t
}

// Get falls back to cyberpunk, then to the built-in colors, reporting ok
// false for unknown keys.
func (t *Themes) Get(key string) (Theme, bool) {
	if i, ok := t.byKey[key]; ok {
		return t.order[i], true
	}
	if i, ok := t.byKey[DefaultTheme]; ok {
		th := t.order[i]
		return th, false
	}
	th := defaultColors
	th.Key = DefaultTheme
	return th, false
}

func (t *Themes) All() []Theme {
	return append([]Theme(nil), t.order...)
}

// CustomTheme normalizes player-typed theme text for the prompt: whitespace
// runs collapse to one space and the result is capped at maxCustomTheme
// runes. Blank input reports false.
func CustomTheme(text string) (string, bool) {
	s := strings.Join(strings.Fields(text), " ")
	if s == "" {
		return "", false
	}
	if utf8.RuneCountInString(s) > maxCustomTheme {
		s = strings.TrimSpace(string([]rune(s)[:maxCustomTheme]))
	}
	return s, true
}
