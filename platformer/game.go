// Package platformer runs one attempt at a level: it builds the world,
// advances it one fixed tick at a time and draws it.
package platformer

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/ecs/entity"
	"github.com/milk9111/arcade/ecs/system"
	"github.com/milk9111/arcade/levelgen"
	"github.com/milk9111/arcade/levels"
	"github.com/milk9111/arcade/prefabs"
)

type Config struct {
	Tuning *prefabs.TuningSpec
	Theme  levelgen.Theme
	// Input is sampled once per tick; nil reads the keyboard.
	Input system.InputSource
	Seed  uint64
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	level     levels.Level
	theme     levelgen.Theme
	tuning    *prefabs.TuningSpec

	render *system.RenderSystem
	hud    *system.HUDSystem
}

// New builds a fresh attempt at lvl. A restart is a new Game.
func New(lvl levels.Level, cfg Config) (*Game, error) {
	if cfg.Tuning == nil {
		t, err := prefabs.LoadTuningSpec()
		if err != nil {
			return nil, fmt.Errorf("platformer: tuning: %w", err)
		}
		cfg.Tuning = t
	}
	t := cfg.Tuning
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x5851f42d4c957f2d))

	w := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(w, &lvl, t, rng); err != nil {
		return nil, fmt.Errorf("platformer: load level: %w", err)
	}

	fx := &system.Effects{Tuning: t.Particle, ThemeColor: cfg.Theme.Particle, Rand: rng}
	scheduler := ecs.NewScheduler(
		system.NewInputSystem(cfg.Input),
		system.NewPlayerControllerSystem(t.World.Bottom),
		system.NewPlatformSystem(t.Platform.MoveSpeed),
		system.NewEnemySystem(t.Enemy, t.World.Bottom+t.World.EnemyCull),
		system.NewCombatSystem(t.Combat, fx),
		system.NewPickupCollectSystem(t.Pickup, fx),
		system.NewPickupHoverSystem(t.Pickup),
		system.NewGoalSystem(t.Goal),
		system.NewParticleSystem(t.Particle.Gravity),
		system.NewCameraSystem(),
		system.NewOutcomeSystem(),
	)

	return &Game{
		world:     w,
		scheduler: scheduler,
		level:     lvl,
		theme:     cfg.Theme,
		tuning:    t,
		render:    system.NewRenderSystem(cfg.Theme, t.Viewport.Width, t.Viewport.Height),
		hud:       system.NewHUDSystem(t.Viewport.Width, t.Viewport.Height),
	}, nil
}

// Update advances one tick and returns the events it produced. Once the
// attempt is over it does nothing.
func (g *Game) Update() []ecs.Event {
	session := g.session()
	if session == nil || session.State.Terminal() {
		return nil
	}
	session.Tick++
	g.scheduler.Update(g.world)
	return g.world.Events().Drain()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.hud.Draw(g.world, screen)
}

func (g *Game) session() *component.Session {
	e, ok := ecs.First(g.world, component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	s, _ := ecs.Get(g.world, e, component.SessionComponent.Kind())
	return s
}

func (g *Game) State() component.GameState {
	if s := g.session(); s != nil {
		return s.State
	}
	return component.StateGameOver
}

func (g *Game) Score() int {
	if s := g.session(); s != nil {
		return s.Score
	}
	return 0
}

func (g *Game) Tick() int {
	if s := g.session(); s != nil {
		return s.Tick
	}
	return 0
}

func (g *Game) Level() levels.Level   { return g.level }
func (g *Game) Theme() levelgen.Theme { return g.theme }
func (g *Game) World() *ecs.World     { return g.world }

// PlayerState is a read-only copy of the player's kinematic state.
type PlayerState struct {
	X, Y       float64
	VX, VY     float64
	OnGround   bool
	Health     int
	Coins      int
	Facing     float64
	Invincible bool
}

func (g *Game) Player() PlayerState {
	e, ok := ecs.First(g.world, component.PlayerComponent.Kind())
	if !ok {
		return PlayerState{}
	}
	var ps PlayerState
	if t, ok := ecs.Get(g.world, e, component.TransformComponent.Kind()); ok {
		ps.X, ps.Y = t.X, t.Y
	}
	if b, ok := ecs.Get(g.world, e, component.BodyComponent.Kind()); ok {
		ps.VX, ps.VY, ps.OnGround = b.VX, b.VY, b.OnGround
	}
	if p, ok := ecs.Get(g.world, e, component.PlayerComponent.Kind()); ok {
		ps.Health, ps.Coins, ps.Facing = p.Health, p.Coins, p.Facing
	}
	ps.Invincible = ecs.Has(g.world, e, component.InvulnerableComponent.Kind())
	return ps
}

// Camera returns the camera's world offset.
func (g *Game) Camera() (float64, float64) {
	return system.CameraOffset(g.world)
}
