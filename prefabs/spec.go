package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ThemeSpec is one entry of the platformer theme table.
type ThemeSpec struct {
	Key         string      `yaml:"key"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Background  []YAMLColor `yaml:"background"`
	Platform    YAMLColor   `yaml:"platform"`
	Accent      YAMLColor   `yaml:"accent"`
	Particle    YAMLColor   `yaml:"particle"`
}

type ThemesSpec struct {
	Themes []ThemeSpec `yaml:"themes"`
}

func LoadThemesSpec() (*ThemesSpec, error) {
	spec, err := LoadSpec[ThemesSpec]("themes.yaml")
	if err != nil {
		return nil, err
	}
	if len(spec.Themes) == 0 {
		return nil, fmt.Errorf("prefabs: themes.yaml: no themes")
	}
	for i, th := range spec.Themes {
		if th.Key == "" {
			return nil, fmt.Errorf("prefabs: themes.yaml: theme %d has no key", i)
		}
		if len(th.Background) != 3 {
			return nil, fmt.Errorf("prefabs: themes.yaml: theme %s needs 3 background stops, got %d", th.Key, len(th.Background))
		}
	}
	return &spec, nil
}

// DifficultySpec holds the generation parameters for one level.
type DifficultySpec struct {
	Description      string  `yaml:"description"`
	PlatformCount    int     `yaml:"platform_count"`
	MinPlatformWidth float64 `yaml:"min_platform_width"`
	MaxPlatformWidth float64 `yaml:"max_platform_width"`
	MinGap           float64 `yaml:"min_gap"`
	MaxGap           float64 `yaml:"max_gap"`
	MinHorizontalGap float64 `yaml:"min_horizontal_gap"`
	MaxHorizontalGap float64 `yaml:"max_horizontal_gap"`
	EnemyCount       int     `yaml:"enemy_count"`
	CollectibleCount int     `yaml:"collectible_count"`
	HazardCount      int     `yaml:"hazard_count"`
	MovingPlatforms  int     `yaml:"moving_platforms"`
	LevelLength      float64 `yaml:"level_length"`
}

type DifficultyPresetsSpec struct {
	Presets []DifficultySpec `yaml:"presets"`
}

func LoadDifficultySpec() (*DifficultyPresetsSpec, error) {
	spec, err := LoadSpec[DifficultyPresetsSpec]("difficulty.yaml")
	if err != nil {
		return nil, err
	}
	if len(spec.Presets) < 3 {
		return nil, fmt.Errorf("prefabs: difficulty.yaml: need 3 presets, got %d", len(spec.Presets))
	}
	return &spec, nil
}

type ViewportTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type WorldTuning struct {
	// Bottom is the y past which the player counts as fallen.
	Bottom float64 `yaml:"bottom"`
	// EnemyCull is how far below Bottom an enemy may fall before it is deactivated.
	EnemyCull float64 `yaml:"enemy_cull"`
}

type PlayerTuning struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Speed            float64 `yaml:"speed"`
	JumpPower        float64 `yaml:"jump_power"`
	Gravity          float64 `yaml:"gravity"`
	MaxFall          float64 `yaml:"max_fall"`
	Friction         float64 `yaml:"friction"`
	MaxHealth        int     `yaml:"max_health"`
	SpawnX           float64 `yaml:"spawn_x"`
	SpawnY           float64 `yaml:"spawn_y"`
	InvincibleFrames int     `yaml:"invincible_frames"`
}

type EnemyTuning struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	WalkSpeed    float64 `yaml:"walk_speed"`
	FlySpeed     float64 `yaml:"fly_speed"`
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	JumpInterval int     `yaml:"jump_interval"`
	FlyBobFreq   float64 `yaml:"fly_bob_freq"`
	FlyBobAmp    float64 `yaml:"fly_bob_amp"`
}

type PickupTuning struct {
	Size          float64 `yaml:"size"`
	BobSpeed      float64 `yaml:"bob_speed"`
	BobAmplitude  float64 `yaml:"bob_amplitude"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	CoinScore     int     `yaml:"coin_score"`
	PowerupScore  int     `yaml:"powerup_score"`
	Burst         int     `yaml:"burst"`
}

type PlatformTuning struct {
	Height    float64 `yaml:"height"`
	MoveSpeed float64 `yaml:"move_speed"`
}

type GoalTuning struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	BaseBonus   int     `yaml:"base_bonus"`
	HealthBonus int     `yaml:"health_bonus"`
}

type ParticleTuning struct {
	Gravity     float64   `yaml:"gravity"`
	MinLife     int       `yaml:"min_life"`
	MaxLife     int       `yaml:"max_life"`
	MinSpeed    float64   `yaml:"min_speed"`
	MaxSpeed    float64   `yaml:"max_speed"`
	MinSize     float64   `yaml:"min_size"`
	MaxSize     float64   `yaml:"max_size"`
	DamageBurst int       `yaml:"damage_burst"`
	DamageColor YAMLColor `yaml:"damage_color"`
}

type CameraTuning struct {
	Smoothness float64 `yaml:"smoothness"`
	// LeadDivisor places the player at viewport width / LeadDivisor.
	LeadDivisor float64 `yaml:"lead_divisor"`
}

type CombatTuning struct {
	StompDefeat   bool    `yaml:"stomp_defeat"`
	StompScore    int     `yaml:"stomp_score"`
	StompBounce   float64 `yaml:"stomp_bounce"`
	HazardsDamage bool    `yaml:"hazards_damage"`
	HazardHeight  float64 `yaml:"hazard_height"`
}

// TuningSpec is every gameplay constant of the platformer.
type TuningSpec struct {
	Viewport ViewportTuning `yaml:"viewport"`
	World    WorldTuning    `yaml:"world"`
	Player   PlayerTuning   `yaml:"player"`
	Enemy    EnemyTuning    `yaml:"enemy"`
	Pickup   PickupTuning   `yaml:"pickup"`
	Platform PlatformTuning `yaml:"platform"`
	Goal     GoalTuning     `yaml:"goal"`
	Particle ParticleTuning `yaml:"particle"`
	Camera   CameraTuning   `yaml:"camera"`
	Combat   CombatTuning   `yaml:"combat"`
}

func LoadTuningSpec() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec]("tuning.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Player.MaxHealth <= 0 {
		return nil, fmt.Errorf("prefabs: tuning.yaml: player.max_health must be positive")
	}
	if spec.Particle.MaxLife < spec.Particle.MinLife {
		return nil, fmt.Errorf("prefabs: tuning.yaml: particle.max_life < min_life")
	}
	return &spec, nil
}

type PuzzleThemeSpec struct {
	Key         string    `yaml:"key"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Background  YAMLColor `yaml:"background"`
	Grid        YAMLColor `yaml:"grid"`
	Wall        YAMLColor `yaml:"wall"`
	Floor       YAMLColor `yaml:"floor"`
	Player      YAMLColor `yaml:"player"`
	Goal        YAMLColor `yaml:"goal"`
	Hazard      YAMLColor `yaml:"hazard"`
}

type PuzzleSpec struct {
	Size       int               `yaml:"size"`
	CellSize   float64           `yaml:"cell_size"`
	FuzzleRule string            `yaml:"fuzzle_rule"`
	Themes     []PuzzleThemeSpec `yaml:"themes"`
}

func LoadPuzzleSpec() (*PuzzleSpec, error) {
	spec, err := LoadSpec[PuzzleSpec]("puzzle.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Size <= 2 {
		return nil, fmt.Errorf("prefabs: puzzle.yaml: size %d too small", spec.Size)
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// Or returns the parsed color, or fallback when the field was absent.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
