package puzzle

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/milk9111/arcade/levelgen"
	"github.com/milk9111/arcade/llm"
	"github.com/milk9111/arcade/prefabs"
)

func gridFrom(rows ...string) *Grid {
	kinds := map[byte]Cell{'.': CellFloor, '#': CellWall, 'S': CellStart, 'G': CellGoal, 'O': CellPit}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			g.Cells[y][x] = kinds[row[x]]
		}
	}
	return g
}

func TestFindPath(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
	}{
		{"straight", []string{"S..G"}, 4},
		{"around_wall", []string{"S#G", ".#.", "..."}, 7},
		{"pit_blocks", []string{"SOG"}, 0},
		{"walled_goal", []string{"S.#", "..#", "##G"}, 0},
		{"same_cell", []string{"S"}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := gridFrom(c.rows...)
			start, _ := g.Find(CellStart)
			goal, ok := g.Find(CellGoal)
			if !ok {
				goal = start
			}
			path := FindPath(g, start, goal)
			if len(path) != c.want {
				t.Fatalf("expected path of %d, got %v", c.want, path)
			}
			if len(path) > 0 && (path[0] != start || path[len(path)-1] != goal) {
				t.Fatalf("path must run start to goal, got %v", path)
			}
		})
	}
}

func TestParseLevelRepairs(t *testing.T) {
	body := "```json\n" + `{"grid": [
		["floor","wall","lava"],
		["start","start","floor"]
	], "hint": "go right"}` + "\n```"
	lvl, err := ParseLevel(body, 4)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	g := lvl.Grid
	if g.Width != 4 || g.Height != 4 {
		t.Fatalf("expected 4x4, got %dx%d", g.Width, g.Height)
	}
	if g.At(Point{X: 2, Y: 0}) != CellFloor {
		t.Fatalf("unknown cells become floor")
	}
	if g.Count(CellStart) != 1 || lvl.Start() != (Point{X: 0, Y: 1}) {
		t.Fatalf("expected the first start to survive, got %v", lvl.Start())
	}
	if lvl.Goal() != (Point{X: 3, Y: 3}) {
		t.Fatalf("expected missing goal in the far corner, got %v", lvl.Goal())
	}
	if lvl.Hint != "go right" || lvl.WinCondition != defaultWinCondition {
		t.Fatalf("unexpected text fields: %+v", lvl)
	}
}

func TestParseLevelMissingStart(t *testing.T) {
	lvl, err := ParseLevel(`{"grid": [["floor","goal"],["floor","floor"]]}`, 2)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	if lvl.Start() != (Point{}) || lvl.Goal() != (Point{X: 1, Y: 0}) {
		t.Fatalf("expected start at origin and goal kept, got %v %v", lvl.Start(), lvl.Goal())
	}
}

func TestParseLevelRejects(t *testing.T) {
	cases := map[string]string{
		"not_json":    "the puzzle is a maze",
		"no_grid":     `{"hint": "x"}`,
		"grid_string": `{"grid": "floor floor"}`,
		"grid_object": `{"grid": {"a": 1}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseLevel(body, 10); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	if _, err := ParseLevel(`{"grid": "x"}`, 10); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestFallbackAlwaysSolvable(t *testing.T) {
	for d := 1; d <= 12; d++ {
		for seed := uint64(0); seed < 20; seed++ {
			lvl := Fallback("forest", d, 10, rand.New(rand.NewPCG(seed, 7)))
			if lvl.Start() != (Point{X: 1, Y: 1}) || lvl.Goal() != (Point{X: 8, Y: 8}) {
				t.Fatalf("unexpected start/goal %v %v", lvl.Start(), lvl.Goal())
			}
			if !Solvable(lvl.Grid, lvl.Start(), lvl.Goal()) {
				t.Fatalf("difficulty %d seed %d: unsolvable fallback", d, seed)
			}
			if lvl.Grid.Count(CellPit) != 0 {
				t.Fatalf("fallback has no pits")
			}
		}
	}
}

func TestFallbackDeterministic(t *testing.T) {
	a := Fallback("retro", 4, 10, nil)
	b := Fallback("retro", 4, 10, nil)
	for y := range a.Grid.Cells {
		for x := range a.Grid.Cells[y] {
			if a.Grid.Cells[y][x] != b.Grid.Cells[y][x] {
				t.Fatalf("fallback not deterministic at %d,%d", x, y)
			}
		}
	}
	if math.Abs(WallChance(1)-0.12) > 1e-9 || WallChance(50) != WallChance(10) {
		t.Fatalf("unexpected wall chance")
	}
}

func TestCarve(t *testing.T) {
	g := gridFrom(
		"S###",
		"####",
		"###G",
	)
	carve(g, Point{}, Point{X: 3, Y: 2})
	if !Solvable(g, Point{}, Point{X: 3, Y: 2}) {
		t.Fatalf("carve must open a path")
	}
}

func TestGeneratorUsesService(t *testing.T) {
	var gotSystem, gotUser string
	svc := llm.Func(func(_ context.Context, system, user string) (string, error) {
		gotSystem, gotUser = system, user
		return `{"grid": [["start","floor"],["wall","goal"]], "hint": "down right", "fuzzleRule": "walls creep"}`, nil
	})
	res := NewGenerator(svc, 2).Generate(context.Background(), Request{Theme: "forest", Difficulty: 3, Fuzzle: true})
	if res.Source != levelgen.SourceAI || res.Reason != nil {
		t.Fatalf("expected AI source, got %v (%v)", res.Source, res.Reason)
	}
	if res.Level.FuzzleRule != "walls creep" || res.Level.Theme != "forest" {
		t.Fatalf("unexpected level: %+v", res.Level)
	}
	if !strings.Contains(gotSystem, "2x2") {
		t.Fatalf("system prompt should state the size: %q", gotSystem)
	}
	if !strings.Contains(gotUser, "FUZZLE MODE ACTIVE") || !strings.Contains(gotUser, "Difficulty: 3") {
		t.Fatalf("user prompt missing fields: %q", gotUser)
	}
}

func TestCustomTheme(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"", "", false},
		{"   \t\n", "", false},
		{"  underwater   candy\tfactory ", "underwater candy factory", true},
		{strings.Repeat("é", 60), strings.Repeat("é", maxCustomTheme), true},
	}
	for _, c := range cases {
		got, ok := CustomTheme(c.in)
		if got != c.want || ok != c.wantOK {
			t.Fatalf("CustomTheme(%q) = %q,%v want %q,%v", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestCustomThemeReachesPromptWithCyberpunkColors(t *testing.T) {
	spec, err := prefabs.LoadPuzzleSpec()
	if err != nil {
		t.Fatalf("puzzle spec: %v", err)
	}
	themes := NewThemes(spec.Themes)
	custom, _ := CustomTheme("underwater candy factory")

	th, ok := themes.Get(custom)
	if ok {
		t.Fatalf("expected %q to be unknown", custom)
	}
	cyber, _ := themes.Get(DefaultTheme)
	if th.Key != DefaultTheme || th.Wall != cyber.Wall || th.Background != cyber.Background {
		t.Fatalf("expected cyberpunk colors, got %+v", th)
	}

	var gotUser string
	svc := llm.Func(func(_ context.Context, _, user string) (string, error) {
		gotUser = user
		return `{"grid": [["start","floor"],["wall","goal"]]}`, nil
	})
	res := NewGenerator(svc, 2).Generate(context.Background(), Request{Theme: custom, Difficulty: 1})
	if !strings.Contains(gotUser, "Theme: underwater candy factory") {
		t.Fatalf("custom theme missing from prompt: %q", gotUser)
	}
	if res.Level.Theme != custom {
		t.Fatalf("expected level theme %q, got %q", custom, res.Level.Theme)
	}

	fallback := NewGenerator(llm.Offline{}, 10).Generate(context.Background(), Request{Theme: custom, Difficulty: 1})
	if fallback.Source != levelgen.SourceFallback || fallback.Level.Theme != custom {
		t.Fatalf("expected fallback to keep %q, got %+v", custom, fallback)
	}
}

func TestGeneratorFallbacks(t *testing.T) {
	cases := map[string]llm.Completer{
		"offline": llm.Offline{},
		"garbage": llm.Func(func(context.Context, string, string) (string, error) { return "nope", nil }),
		"unsolvable": llm.Func(func(context.Context, string, string) (string, error) {
			return `{"grid": [["start","wall"],["wall","goal"]]}`, nil
		}),
	}
	for name, svc := range cases {
		t.Run(name, func(t *testing.T) {
			res := NewGenerator(svc, 10).Generate(context.Background(), Request{Theme: "retro", Difficulty: 2})
			if res.Source != levelgen.SourceFallback || res.Reason == nil {
				t.Fatalf("expected fallback with a reason, got %v", res.Source)
			}
			if !Solvable(res.Level.Grid, res.Level.Start(), res.Level.Goal()) {
				t.Fatalf("fallback must be solvable")
			}
		})
	}
}

func TestRuleMutations(t *testing.T) {
	rule, err := LoadRule("")
	if err != nil {
		t.Fatalf("LoadRule: %v", err)
	}
	for moves, want := range map[int]int{0: 0, 1: 0, 4: 0, 5: 1, 10: 1, 11: 0} {
		got, err := rule.Mutations(moves)
		if err != nil {
			t.Fatalf("Mutations(%d): %v", moves, err)
		}
		if got != want {
			t.Fatalf("Mutations(%d) = %d, want %d", moves, got, want)
		}
	}

	rock, err := LoadRule("rockslide")
	if err != nil {
		t.Fatalf("LoadRule rockslide: %v", err)
	}
	if n, _ := rock.Mutations(28); n != 3 {
		t.Fatalf("expected rockslide to drop 3 at move 28, got %d", n)
	}

	if _, err := CompileRule("broken", []byte("mutate := true")); err == nil {
		t.Fatalf("expected a rule without count to be rejected")
	}
}

func TestMutateKeepsGoalReachable(t *testing.T) {
	g := gridFrom(
		"S...",
		"###.",
		"...G",
	)
	player := Point{X: 1, Y: 0}
	rng := rand.New(rand.NewPCG(1, 2))
	walled := Mutate(g, player, Point{}, Point{X: 3, Y: 2}, 5, rng)
	for _, p := range walled {
		if p == player {
			t.Fatalf("walled the player's cell")
		}
	}
	if !Solvable(g, player, Point{X: 3, Y: 2}) || !Solvable(g, Point{}, Point{X: 3, Y: 2}) {
		t.Fatalf("mutation disconnected the goal")
	}
	// Only the three dead-end cells on the bottom row can be walled safely.
	if len(walled) != 3 {
		t.Fatalf("expected 3 safe mutations, got %v", walled)
	}
}

func TestGameMoves(t *testing.T) {
	lvl := Level{Grid: gridFrom(
		"S.#",
		"O..",
		"..G",
	), Hint: "avoid the pit"}
	g := NewGame(lvl, Options{Seed: 1})

	steps := []struct {
		dx, dy int
		want   MoveResult
		player Point
		moves  int
	}{
		{-1, 0, MoveBlocked, Point{0, 0}, 0},
		{1, 0, MoveOK, Point{1, 0}, 1},
		{1, 0, MoveBlocked, Point{1, 0}, 1},
		{-1, 0, MoveOK, Point{0, 0}, 2},
		{0, 1, MoveFell, Point{0, 0}, 0},
		{1, 0, MoveOK, Point{1, 0}, 1},
		{0, 1, MoveOK, Point{1, 1}, 2},
		{1, 0, MoveOK, Point{2, 1}, 3},
		{0, 1, MoveWon, Point{2, 2}, 4},
		{0, -1, MoveBlocked, Point{2, 2}, 4},
	}
	for i, s := range steps {
		if got := g.Move(s.dx, s.dy); got != s.want {
			t.Fatalf("step %d: expected %v, got %v", i, s.want, got)
		}
		if g.Player() != s.player || g.Moves() != s.moves {
			t.Fatalf("step %d: expected %v/%d, got %v/%d", i, s.player, s.moves, g.Player(), g.Moves())
		}
	}
	if !g.Won() {
		t.Fatalf("expected win")
	}

	g.Restart()
	if g.Won() || g.Moves() != 0 || g.Player() != (Point{}) {
		t.Fatalf("restart should reset the attempt")
	}
	g.ToggleHint()
	if !g.HintVisible() {
		t.Fatalf("hint should toggle on")
	}
}

func TestGameFuzzleRestartRestoresGrid(t *testing.T) {
	lvl := Fallback("forest", 1, 10, rand.New(rand.NewPCG(3, 3)))
	rule, err := CompileRule("every_move", []byte("mutate := moves > 0\ncount := 2"))
	if err != nil {
		t.Fatalf("CompileRule: %v", err)
	}
	g := NewGame(lvl, Options{Fuzzle: true, Rule: rule, Seed: 9})
	walls := lvl.Grid.Count(CellWall)

	path := FindPath(g.Grid(), g.Player(), lvl.Goal())
	next := path[1]
	if res := g.Move(next.X-g.Player().X, next.Y-g.Player().Y); res != MoveOK {
		t.Fatalf("expected a legal first move, got %v", res)
	}
	if got := g.Grid().Count(CellWall); got <= walls {
		t.Fatalf("expected the rule to add walls, %d -> %d", walls, got)
	}
	if !Solvable(g.Grid(), g.Player(), lvl.Goal()) {
		t.Fatalf("fuzzle mutation cut off the goal")
	}

	g.Restart()
	if got := g.Grid().Count(CellWall); got != walls {
		t.Fatalf("restart should undo mutations, got %d walls want %d", got, walls)
	}
}
