// Package sfx synthesizes the game's sound effects at startup and plays them
// on gameplay events.
package sfx

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

const SampleRate = 44100

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
	waveNoise
)

// buffer is mono samples at unity gain.
type buffer []float64

func samplesFor(seconds float64) int {
	return int(seconds * SampleRate)
}

func oscillator(w wave, freq float64, samples int, rng *rand.Rand) buffer {
	buf := make(buffer, samples)
	phase := 0.0
	inc := freq / SampleRate
	for i := range buf {
		switch w {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			buf[i] = 1
			if phase >= 0.5 {
				buf[i] = -1
			}
		case waveSaw:
			buf[i] = 2 * (phase - 0.5)
		case waveNoise:
			buf[i] = rng.Float64()*2 - 1
		}
		phase += inc
		if phase >= 1 {
			phase--
		}
	}
	return buf
}

// sweep is a sine whose frequency moves linearly from f0 to f1.
func sweep(f0, f1 float64, samples int) buffer {
	buf := make(buffer, samples)
	phase := 0.0
	for i := range buf {
		t := float64(i) / float64(max(1, samples-1))
		phase += (f0 + (f1-f0)*t) / SampleRate
		buf[i] = math.Sin(2 * math.Pi * phase)
	}
	return buf
}

// envelope applies a linear attack and release in place.
func envelope(buf buffer, attack, release float64) buffer {
	total := len(buf)
	a := samplesFor(attack)
	r := samplesFor(release)
	releaseStart := max(total-r, a)
	for i := range buf {
		vol := 1.0
		switch {
		case i < a && a > 0:
			vol = float64(i) / float64(a)
		case i >= releaseStart && r > 0:
			vol = float64(total-i) / float64(r)
		}
		buf[i] *= vol
	}
	return buf
}

func concat(parts ...buffer) buffer {
	var out buffer
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func mix(a, b buffer, scale float64) buffer {
	if len(b) > len(a) {
		grown := make(buffer, len(b))
		copy(grown, a)
		a = grown
	}
	for i := range b {
		a[i] += b[i] * scale
	}
	return a
}

// encode converts mono samples to 16-bit little-endian stereo with a soft
// limiter ahead of the hard clip.
func encode(in buffer, gain float64) []byte {
	out := make([]byte, len(in)*4)
	for i, v := range in {
		v *= gain
		if v > 0.8 {
			v = 0.8 + 0.2*(1-1/(1+(v-0.8)*5))
		} else if v < -0.8 {
			v = -0.8 - 0.2*(1-1/(1+(-v-0.8)*5))
		}
		v = max(-1, min(v, 1))
		s := uint16(int16(v * 32767))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}
