package sfx

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/arcade/ecs"
)

func TestEnvelopeEndpoints(t *testing.T) {
	buf := make(buffer, samplesFor(0.1))
	for i := range buf {
		buf[i] = 1
	}
	envelope(buf, 0.01, 0.02)
	if buf[0] != 0 {
		t.Fatalf("attack should start silent, got %v", buf[0])
	}
	if mid := buf[len(buf)/2]; mid != 1 {
		t.Fatalf("sustain should be unity, got %v", mid)
	}
	if last := buf[len(buf)-1]; last <= 0 || last > 0.01 {
		t.Fatalf("release should end near zero, got %v", last)
	}
}

func TestEveryEffectRenders(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for s := Sound(0); s < soundCount; s++ {
		buf := generate(s, rng)
		if len(buf) == 0 {
			t.Fatalf("sound %d rendered nothing", s)
		}
		for i, v := range buf {
			if math.IsNaN(v) || math.Abs(v) > 1.5 {
				t.Fatalf("sound %d sample %d out of range: %v", s, i, v)
			}
		}
	}
}

func TestEncodeClipsAndDuplicatesChannels(t *testing.T) {
	out := encode(buffer{0, 5, -5, 0.5}, 1)
	if len(out) != 16 {
		t.Fatalf("expected 4 stereo frames, got %d bytes", len(out))
	}
	for i := 0; i < 4; i++ {
		l := int16(binary.LittleEndian.Uint16(out[i*4:]))
		r := int16(binary.LittleEndian.Uint16(out[i*4+2:]))
		if l != r {
			t.Fatalf("frame %d: channels differ %d/%d", i, l, r)
		}
	}
	if v := int16(binary.LittleEndian.Uint16(out[4:])); v <= 0 || v > 32767 {
		t.Fatalf("loud positive sample should saturate, got %d", v)
	}
	if v := int16(binary.LittleEndian.Uint16(out[8:])); v >= 0 {
		t.Fatalf("loud negative sample should stay negative, got %d", v)
	}
	if v := int16(binary.LittleEndian.Uint16(out[12:])); v != 16383 {
		t.Fatalf("quiet sample should pass through, got %d", v)
	}
}

func TestForEvent(t *testing.T) {
	cases := []struct {
		kind ecs.EventKind
		want Sound
		ok   bool
	}{
		{ecs.EventCoin, SoundCoin, true},
		{ecs.EventPowerup, SoundPowerup, true},
		{ecs.EventDamage, SoundDamage, true},
		{ecs.EventStomp, SoundStomp, true},
		{ecs.EventVictory, SoundVictory, true},
		{ecs.EventGameOver, SoundGameOver, true},
		{ecs.EventRespawn, 0, false},
	}
	for _, c := range cases {
		got, ok := ForEvent(c.kind)
		if ok != c.ok || got != c.want {
			t.Fatalf("ForEvent(%v) = %v,%v want %v,%v", c.kind, got, ok, c.want, c.ok)
		}
	}
}

func TestSilentPlayerIgnoresEvents(t *testing.T) {
	p := newPlayer(nil, true, 0.5)
	p.PlayEvents([]ecs.Event{{Kind: ecs.EventCoin}, {Kind: ecs.EventDamage}})
	if len(p.pcm[SoundCoin]) == 0 {
		t.Fatalf("effects should be rendered even without a context")
	}
	p.SetVolume(4)
	if p.volume != 1 {
		t.Fatalf("volume should clamp, got %v", p.volume)
	}
}
