package sfx

import (
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/arcade/ecs"
)

const effectGain = 0.6

// Player holds the pre-rendered effects. A Player without an audio context
// stays silent.
type Player struct {
	ctx     *audio.Context
	pcm     [soundCount][]byte
	enabled bool
	volume  float64
}

// NewPlayer renders every effect and binds to the process audio context,
// creating it when needed.
func NewPlayer(enabled bool, volume float64) *Player {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return newPlayer(ctx, enabled, volume)
}

func newPlayer(ctx *audio.Context, enabled bool, volume float64) *Player {
	p := &Player{ctx: ctx, enabled: enabled, volume: volume}
	rng := rand.New(rand.NewPCG(1, 2))
	for s := Sound(0); s < soundCount; s++ {
		p.pcm[s] = encode(generate(s, rng), effectGain)
	}
	return p
}

func (p *Player) SetEnabled(on bool)       { p.enabled = on }
func (p *Player) SetVolume(volume float64) { p.volume = max(0, min(volume, 1)) }
func (p *Player) Enabled() bool            { return p.enabled }

// Play starts s and returns immediately.
func (p *Player) Play(s Sound) {
	if p == nil || !p.enabled || p.ctx == nil || s < 0 || s >= soundCount {
		return
	}
	pl := p.ctx.NewPlayerFromBytes(p.pcm[s])
	pl.SetVolume(p.volume)
	pl.Play()
}

// PlayEvents plays the sound of every event that has one.
func (p *Player) PlayEvents(events []ecs.Event) {
	played := map[Sound]bool{}
	for _, e := range events {
		s, ok := ForEvent(e.Kind)
		if !ok || played[s] {
			continue
		}
		played[s] = true
		p.Play(s)
	}
}

// Silent returns a Player that renders nothing and plays nothing.
func Silent() *Player {
	log.Printf("sfx: sound disabled")
	return &Player{}
}
