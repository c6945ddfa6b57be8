package levelgen

import (
	"image/color"
	"log"

	"github.com/milk9111/arcade/prefabs"
)

const DefaultTheme = "forest"

type Theme struct {
	Key         string
	Name        string
	Description string
	// Background holds the top, middle and bottom gradient stops.
	Background [3]color.Color
	Platform   color.Color
	Accent     color.Color
	Particle   color.Color
}

// Themes is the fixed theme table in declaration order.
type Themes struct {
	order []Theme
	byKey map[string]int
}

func LoadThemes() (*Themes, error) {
	spec, err := prefabs.LoadThemesSpec()
	if err != nil {
		return nil, err
	}
	return NewThemes(spec), nil
}

func NewThemes(spec *prefabs.ThemesSpec) *Themes {
	t := &Themes{byKey: make(map[string]int, len(spec.Themes))}
	for _, s := range spec.Themes {
		th := Theme{
			Key:         s.Key,
			Name:        s.Name,
			Description: s.Description,
			Platform:    s.Platform.Or(color.Gray{Y: 0x80}),
			Accent:      s.Accent.Or(color.White),
			Particle:    s.Particle.Or(color.White),
		}
		for i := range th.Background {
			th.Background[i] = color.Black
			if i < len(s.Background) {
				th.Background[i] = s.Background[i].Or(color.Black)
			}
		}
		t.byKey[th.Key] = len(t.order)
		t.order = append(t.order, th)
	}
	return t
}

// Get returns the theme for key. Unknown keys resolve to forest (or the
// first theme when forest is absent) with ok false.
func (t *Themes) Get(key string) (Theme, bool) {
	if i, ok := t.byKey[key]; ok {
		return t.order[i], true
	}
	if i, ok := t.byKey[DefaultTheme]; ok {
		return t.order[i], false
	}
	if len(t.order) > 0 {
		return t.order[0], false
	}
	return Theme{Key: DefaultTheme}, false
}

// Resolve is Get with a log line for unknown keys.
func (t *Themes) Resolve(key string) Theme {
	th, ok := t.Get(key)
	if !ok {
		log.Printf("levelgen: unknown theme %q, using %s", key, th.Key)
	}
	return th
}

func (t *Themes) All() []Theme {
	return append([]Theme(nil), t.order...)
}

func (t *Themes) Keys() []string {
	out := make([]string, len(t.order))
	for i, th := range t.order {
		out[i] = th.Key
	}
	return out
}
