package system

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arcade/common"
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/levelgen"
	"golang.org/x/image/colornames"
)

const (
	starCount      = 80
	starParallax   = 0.2
	invulnFlicker  = 5
	trailSteps     = 3
	goalSparkles   = 8
	goalSparkleRad = 26
)

type star struct {
	x, y, r float64
}

// RenderSystem draws the world layers for one theme. Draw only reads the
// world.
type RenderSystem struct {
	theme         levelgen.Theme
	width, height float64
	background    *ebiten.Image
	backgroundFor string
	stars         []star
}

func NewRenderSystem(theme levelgen.Theme, width, height float64) *RenderSystem {
	rng := rand.New(rand.NewPCG(uint64(len(theme.Key)), 7))
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{x: rng.Float64() * width, y: rng.Float64() * height * 0.7, r: 0.5 + rng.Float64()*1.5}
	}
	return &RenderSystem{theme: theme, width: width, height: height, stars: stars}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	camX, camY := CameraOffset(w)
	view := cp.BB{L: camX, B: camY, R: camX + r.width, T: camY + r.height}
	tick := 0
	if s, ok := findSession(w); ok {
		tick = s.Tick
	}

	r.drawBackground(screen, camX)
	r.drawPlatforms(w, screen, camX, camY, view)
	r.drawHazards(w, screen, camX, camY, view)
	r.drawPickups(w, screen, camX, camY, view)
	r.drawEnemies(w, screen, camX, camY, view, tick)
	r.drawGoal(w, screen, camX, camY, tick)
	r.drawParticles(w, screen, camX, camY)
	r.drawPlayer(w, screen, camX, camY, tick)
}

func (r *RenderSystem) drawBackground(screen *ebiten.Image, camX float64) {
	if r.background == nil || r.backgroundFor != r.theme.Key {
		r.background = gradientImage(int(r.width), int(r.height), r.theme.Background)
		r.backgroundFor = r.theme.Key
	}
	screen.DrawImage(r.background, nil)

	shift := math.Mod(camX*starParallax, r.width)
	for _, s := range r.stars {
		x := s.x - shift
		if x < 0 {
			x += r.width
		}
		vector.FillCircle(screen, float32(x), float32(s.y), float32(s.r), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x99}, true)
	}
}

// gradientImage renders a vertical three-stop gradient.
func gradientImage(w, h int, stops [3]color.Color) *ebiten.Image {
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float32(y) / float32(max(h-1, 1))
		var c color.RGBA
		if t < 0.5 {
			c = lerpColor(stops[0], stops[1], t*2)
		} else {
			c = lerpColor(stops[1], stops[2], (t-0.5)*2)
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return ebiten.NewImageFromImage(img)
}

func lerpColor(a, b color.Color, t float32) color.RGBA {
	ca := color.RGBAModel.Convert(orBlack(a)).(color.RGBA)
	cb := color.RGBAModel.Convert(orBlack(b)).(color.RGBA)
	ch := func(x, y uint8) uint8 { return uint8(common.Lerp(float32(x), float32(y), t)) }
	return color.RGBA{R: ch(ca.R, cb.R), G: ch(ca.G, cb.G), B: ch(ca.B, cb.B), A: ch(ca.A, cb.A)}
}

func orBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}

// withAlpha scales a color's opacity by a in [0,1].
func withAlpha(c color.Color, a float64) color.RGBA {
	rgba := color.RGBAModel.Convert(orBlack(c)).(color.RGBA)
	a = common.Clamp(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(rgba.R) * a),
		G: uint8(float64(rgba.G) * a),
		B: uint8(float64(rgba.B) * a),
		A: uint8(float64(rgba.A) * a),
	}
}

func visible(view cp.BB, x, y, w, h float64) bool {
	return view.Intersects(cp.BB{L: x, B: y, R: x + w, T: y + h})
}

func (r *RenderSystem) drawPlatforms(w *ecs.World, screen *ebiten.Image, camX, camY float64, view cp.BB) {
	base := orBlack(r.theme.Platform)
	light := lerpColor(base, color.White, 0.25)
	ecs.ForEach3(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(_ ecs.Entity, _ *component.Platform, t *component.Transform, b *component.Body) {
			if !visible(view, t.X, t.Y, b.Width, b.Height+4) {
				return
			}
			x, y := float32(t.X-camX), float32(t.Y-camY)
			pw, ph := float32(b.Width), float32(b.Height)

			vector.FillRect(screen, x+3, y+4, pw, ph, color.RGBA{A: 0x55}, false)
			vector.FillRect(screen, x, y, pw, ph/2, light, false)
			vector.FillRect(screen, x, y+ph/2, pw, ph/2, base, false)
			vector.StrokeLine(screen, x, y+1, x+pw, y+1, 2, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60}, false)
			vector.StrokeRect(screen, x, y, pw, ph, 2, orBlack(r.theme.Accent), false)
		})
}

func (r *RenderSystem) drawHazards(w *ecs.World, screen *ebiten.Image, camX, camY float64, view cp.BB) {
	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, h *component.Hazard, t *component.Transform) {
			if !visible(view, t.X, t.Y, h.Width, h.Height) {
				return
			}
			x, y := float32(t.X-camX), float32(t.Y-camY)
			hw, hh := float32(h.Width), float32(h.Height)
			switch h.Type {
			case "fire":
				vector.FillRect(screen, x, y, hw, hh, colornames.Orangered, false)
				vector.FillRect(screen, x, y+hh/2, hw, hh/2, colornames.Gold, false)
			case "pit":
				vector.FillRect(screen, x, y, hw, hh, colornames.Black, false)
			default:
				teeth := max(int(hw/10), 1)
				step := hw / float32(teeth)
				for i := 0; i < teeth; i++ {
					left := x + float32(i)*step
					vector.StrokeLine(screen, left, y+hh, left+step/2, y, 2, colornames.Silver, true)
					vector.StrokeLine(screen, left+step/2, y, left+step, y+hh, 2, colornames.Silver, true)
				}
			}
		})
}

func (r *RenderSystem) drawPickups(w *ecs.World, screen *ebiten.Image, camX, camY float64, view cp.BB) {
	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, pk *component.Pickup, t *component.Transform) {
			if pk.Collected || !visible(view, t.X, t.Y, pk.Size, pk.Size) {
				return
			}
			half := float32(pk.Size / 2)
			cx, cy := float32(t.X-camX)+half, float32(t.Y-camY)+half
			switch pk.Type {
			case component.PickupPowerup:
				drawHeart(screen, cx, cy, half, colornames.Hotpink)
			default:
				vector.FillCircle(screen, cx, cy, half, colornames.Gold, true)
				// The spinning edge reads as rotation.
				dx := float32(math.Cos(t.Rotation)) * half * 0.7
				dy := float32(math.Sin(t.Rotation)) * half * 0.7
				vector.StrokeLine(screen, cx-dx, cy-dy, cx+dx, cy+dy, 2, colornames.Goldenrod, true)
			}
		})
}

// drawHeart draws a heart of radius-ish size s centered on (cx, cy).
func drawHeart(screen *ebiten.Image, cx, cy, s float32, c color.Color) {
	lobe := s * 0.5
	vector.FillCircle(screen, cx-lobe, cy-lobe/2, lobe, c, true)
	vector.FillCircle(screen, cx+lobe, cy-lobe/2, lobe, c, true)
	vector.StrokeLine(screen, cx-s+1, cy-lobe/4, cx, cy+s*0.8, lobe*1.2, c, true)
	vector.StrokeLine(screen, cx+s-1, cy-lobe/4, cx, cy+s*0.8, lobe*1.2, c, true)
}

func enemyColor(kind component.EnemyType) color.Color {
	switch kind {
	case component.EnemyJumper:
		return colornames.Orange
	case component.EnemyFlyer:
		return colornames.Mediumpurple
	default:
		return colornames.Crimson
	}
}

func (r *RenderSystem) drawEnemies(w *ecs.World, screen *ebiten.Image, camX, camY float64, view cp.BB, tick int) {
	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(_ ecs.Entity, en *component.Enemy, t *component.Transform, b *component.Body) {
			if !en.Active || !visible(view, t.X-10, t.Y-10, b.Width+20, b.Height+10) {
				return
			}
			x, y := float32(t.X-camX), float32(t.Y-camY)
			ew, eh := float32(b.Width), float32(b.Height)
			vector.FillRect(screen, x, y, ew, eh, enemyColor(en.Type), false)

			if en.Type == component.EnemyFlyer {
				flap := float32(math.Sin(float64(tick)*0.3)) * 5
				vector.StrokeLine(screen, x, y+eh/3, x-10, y+eh/3-6+flap, 3, colornames.Lavender, true)
				vector.StrokeLine(screen, x+ew, y+eh/3, x+ew+10, y+eh/3-6+flap, 3, colornames.Lavender, true)
			}

			eyeX := x + ew*0.7
			if b.VX < 0 {
				eyeX = x + ew*0.3
			}
			vector.FillCircle(screen, eyeX, y+eh*0.35, 3, color.White, true)
			vector.FillCircle(screen, eyeX, y+eh*0.35, 1.5, color.Black, true)
		})
}

func (r *RenderSystem) drawGoal(w *ecs.World, screen *ebiten.Image, camX, camY float64, tick int) {
	ecs.ForEach2(w, component.GoalComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, g *component.Goal, t *component.Transform) {
			x, y := float32(t.X-camX), float32(t.Y-camY)
			gw, gh := float32(g.Width), float32(g.Height)

			vector.StrokeLine(screen, x+4, y, x+4, y+gh, 3, colornames.Whitesmoke, false)
			for i := float32(0); i < gh/2; i += 2 {
				vector.StrokeLine(screen, x+5, y+i, x+5+(gw-5)*(1-i/(gh/2)), y+i, 2, colornames.Limegreen, false)
			}

			cx, cy := x+gw/2, y+gh/2
			phase := float64(tick) * 0.05
			for i := 0; i < goalSparkles; i++ {
				a := phase + 2*math.Pi*float64(i)/goalSparkles
				sx := cx + float32(math.Cos(a)*goalSparkleRad)
				sy := cy + float32(math.Sin(a)*goalSparkleRad)
				alpha := 0.5 + 0.5*math.Sin(phase*3+float64(i))
				vector.FillCircle(screen, sx, sy, 2, withAlpha(r.theme.Accent, alpha), true)
			}
		})
}

func (r *RenderSystem) drawParticles(w *ecs.World, screen *ebiten.Image, camX, camY float64) {
	ecs.ForEach2(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, p *component.Particle, t *component.Transform) {
			if p.MaxLife <= 0 {
				return
			}
			alpha := float64(p.Life) / float64(p.MaxLife)
			s := float32(p.Size)
			vector.FillRect(screen, float32(t.X-camX)-s/2, float32(t.Y-camY)-s/2, s, s, withAlpha(p.Color, alpha), false)
		})
}

func (r *RenderSystem) drawPlayer(w *ecs.World, screen *ebiten.Image, camX, camY float64, tick int) {
	pr, ok := findPlayer(w)
	if !ok {
		return
	}
	t, b, p := pr.transform, pr.body, pr.player

	if inv, ok := ecs.Get(w, pr.e, component.InvulnerableComponent.Kind()); ok && (inv.Frames/invulnFlicker)%2 == 0 {
		return
	}

	x, y := float32(t.X-camX), float32(t.Y-camY)
	pw, ph := float32(b.Width), float32(b.Height)
	body := colornames.Dodgerblue

	if !b.OnGround {
		for i := trailSteps; i >= 1; i-- {
			tx := x - float32(b.VX*float64(i)*2)
			ty := y - float32(b.VY*float64(i)*2)
			vector.FillRect(screen, tx, ty, pw, ph, withAlpha(body, 0.15*float64(trailSteps-i+1)), false)
		}
	}

	vector.FillRect(screen, x, y, pw, ph, body, false)
	vector.StrokeRect(screen, x, y, pw, ph, 2, colornames.Navy, false)

	// Eyes sit on the facing side.
	eyeX := x + pw*0.68
	if p.Facing < 0 {
		eyeX = x + pw*0.32
	}
	blink := tick%180 < 6
	if blink {
		vector.StrokeLine(screen, eyeX-3, y+ph*0.3, eyeX+3, y+ph*0.3, 2, color.Black, false)
	} else {
		vector.FillCircle(screen, eyeX, y+ph*0.3, 3, color.White, true)
		vector.FillCircle(screen, eyeX+float32(p.Facing), y+ph*0.3, 1.5, color.Black, true)
	}
}
