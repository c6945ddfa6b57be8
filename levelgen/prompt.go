package levelgen

import (
	"strings"
	"text/template"
)

const systemPrompt = "You are a game level designer that outputs ONLY valid JSON. Never include markdown formatting or explanations."

var userPrompt = template.Must(template.New("level").Parse(`You are a platformer game level designer. Generate a challenging but fair level layout.

Theme: {{.Theme.Name}}
Level Number: {{.Level}}
Difficulty: {{.D.Description}}

Requirements:
- Create {{.D.PlatformCount}} platforms
- Platform width range: {{.D.MinPlatformWidth}}-{{.D.MaxPlatformWidth}} units
- Vertical spacing: {{.D.MinGap}}-{{.D.MaxGap}} units
- Horizontal spacing: {{.D.MinHorizontalGap}}-{{.D.MaxHorizontalGap}} units
- Include {{.D.EnemyCount}} enemies
- Include {{.D.CollectibleCount}} collectibles
- Add {{.D.HazardCount}} hazards
- {{.D.MovingPlatforms}} platforms should move
- Level length: approximately {{.D.LevelLength}} units

Generate a JSON object with this EXACT structure (no markdown, no explanation, ONLY valid JSON):
{
  "platforms": [
    {"x": number, "y": number, "width": number, "height": 20, "moving": boolean, "moveRange": number}
  ],
  "enemies": [
    {"x": number, "y": number, "type": "walker|jumper|flyer", "range": number}
  ],
  "collectibles": [
    {"x": number, "y": number, "type": "coin|powerup"}
  ],
  "hazards": [
    {"x": number, "y": number, "width": number, "type": "spike|pit|fire"}
  ],
  "goal": {"x": number, "y": number}
}

Important rules:
1. First platform MUST be at x:100, y:400 (starting position)
2. Each platform must be reachable from previous platforms (max jump: 150 horizontal, 120 vertical)
3. No platforms should overlap
4. Goal should be at the end of the level
5. Y coordinates: 200-500 (lower Y = higher position)
6. Make the layout interesting with varied heights and gaps
7. Theme: {{.Theme.Description}}
`))

type promptData struct {
	Theme Theme
	Level int
	D     Difficulty
}

func buildPrompt(th Theme, level int, d Difficulty) (string, error) {
	var b strings.Builder
	if err := userPrompt.Execute(&b, promptData{Theme: th, Level: level, D: d}); err != nil {
		return "", err
	}
	return b.String(), nil
}
