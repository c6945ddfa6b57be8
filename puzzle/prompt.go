package puzzle

import (
	"strings"
	"text/template"
)

var systemPrompt = template.Must(template.New("system").Parse(`You are a world-class puzzle designer. Create a grid-based puzzle level in JSON format.
The grid should be {{.}}x{{.}}.
Cell types: "floor", "wall", "start", "goal", "pit".
Ensure there is a valid path from start to goal.
Output ONLY valid JSON. No markdown.`))

var userPrompt = template.Must(template.New("puzzle").Parse(`Theme: {{.Theme}}
Difficulty: {{.Difficulty}} (1-10)
{{if .Fuzzle}}
FUZZLE MODE ACTIVE:
Include a "fuzzleRule" field describing a dynamic rule change.
Examples: "Every 5 steps, walls shift", "Gravity reverses every 3 moves".
The layout should support this rule.
{{end}}
Generate a JSON object with:
- width: {{.Size}}
- height: {{.Size}}
- grid: 2D array of strings
- hint: A subtle clue for the player
- winCondition: "Reach the goal"
- flavorText: A short atmospheric description matching the theme`))

type promptData struct {
	Theme      string
	Difficulty int
	Fuzzle     bool
	Size       int
}

func buildPrompts(req Request, size int) (string, string, error) {
	var sys, user strings.Builder
	if err := systemPrompt.Execute(&sys, size); err != nil {
		return "", "", err
	}
	data := promptData{Theme: req.Theme, Difficulty: req.Difficulty, Fuzzle: req.Fuzzle, Size: size}
	if err := userPrompt.Execute(&user, data); err != nil {
		return "", "", err
	}
	return sys.String(), user.String(), nil
}
