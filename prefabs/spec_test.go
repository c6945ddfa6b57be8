package prefabs

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedSpecs(t *testing.T) {
	themes, err := LoadThemesSpec()
	if err != nil {
		t.Fatalf("themes: %v", err)
	}
	if len(themes.Themes) != 8 {
		t.Fatalf("expected 8 themes, got %d", len(themes.Themes))
	}
	if themes.Themes[0].Key != "forest" {
		t.Fatalf("expected forest first, got %q", themes.Themes[0].Key)
	}

	diff, err := LoadDifficultySpec()
	if err != nil {
		t.Fatalf("difficulty: %v", err)
	}
	if diff.Presets[0].PlatformCount != 12 || diff.Presets[0].CollectibleCount != 5 {
		t.Fatalf("unexpected level 1 preset: %+v", diff.Presets[0])
	}

	tuning, err := LoadTuningSpec()
	if err != nil {
		t.Fatalf("tuning: %v", err)
	}
	if tuning.Player.MaxHealth != 3 || tuning.Player.InvincibleFrames != 120 {
		t.Fatalf("unexpected player tuning: %+v", tuning.Player)
	}
	if tuning.Camera.LeadDivisor != 3 {
		t.Fatalf("expected camera lead divisor 3, got %v", tuning.Camera.LeadDivisor)
	}
	if tuning.Player.MaxFall != 15 {
		t.Fatalf("expected terminal velocity 15, got %v", tuning.Player.MaxFall)
	}

	puzzle, err := LoadPuzzleSpec()
	if err != nil {
		t.Fatalf("puzzle: %v", err)
	}
	if puzzle.Size != 10 || len(puzzle.Themes) != 4 {
		t.Fatalf("unexpected puzzle spec: size=%d themes=%d", puzzle.Size, len(puzzle.Themes))
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `c: "#102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"rgba", `c: "10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"short", `c: "#fff"`, color.NRGBA{}, true},
		{"not_hex", `c: "#zzzzzz"`, color.NRGBA{}, true},
		{"not_scalar", "c: [1, 2]", color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out struct {
				C YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte(c.in), &out)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := out.C.Color.(color.NRGBA); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestYAMLColorOr(t *testing.T) {
	var missing YAMLColor
	if got := missing.Or(color.White); got != color.White {
		t.Fatalf("expected fallback, got %v", got)
	}
}

func TestPrefabKeys(t *testing.T) {
	for _, in := range []string{"tuning.yaml", "prefabs/tuning.yaml"} {
		if got := specKey(in); got != "tuning.yaml" {
			t.Fatalf("specKey(%q) = %q", in, got)
		}
	}
	for _, in := range []string{"wall_shift", "wall_shift.tengo", "scripts/wall_shift.tengo", "prefabs/scripts/wall_shift.tengo"} {
		if got := scriptKey(in); got != "scripts/wall_shift.tengo" {
			t.Fatalf("scriptKey(%q) = %q", in, got)
		}
	}
	if _, err := LoadScript("wall_shift"); err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if _, err := LoadScript("no_such_rule"); err == nil {
		t.Fatalf("expected an error for a missing script")
	}
}

func TestPrefabName(t *testing.T) {
	cases := map[string]string{
		"/tmp/prefabs/tuning.yaml":             "tuning.yaml",
		"/tmp/prefabs/scripts/rockslide.tengo": "scripts/rockslide.tengo",
	}
	for in, want := range cases {
		got, ok := prefabName(in)
		if !ok || got != want {
			t.Fatalf("prefabName(%q) = %q,%v want %q", in, got, ok, want)
		}
	}
	if _, ok := prefabName("/tmp/prefabs/notes.txt"); ok {
		t.Fatalf("expected txt to be ignored")
	}
}
