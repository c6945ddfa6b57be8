package sfx

import (
	"math/rand/v2"

	"github.com/milk9111/arcade/ecs"
)

type Sound int

const (
	SoundCoin Sound = iota
	SoundPowerup
	SoundDamage
	SoundStomp
	SoundVictory
	SoundGameOver
	SoundStep
	soundCount
)

// ForEvent maps a gameplay event to its sound.
func ForEvent(kind ecs.EventKind) (Sound, bool) {
	switch kind {
	case ecs.EventCoin:
		return SoundCoin, true
	case ecs.EventPowerup:
		return SoundPowerup, true
	case ecs.EventDamage:
		return SoundDamage, true
	case ecs.EventStomp:
		return SoundStomp, true
	case ecs.EventVictory:
		return SoundVictory, true
	case ecs.EventGameOver:
		return SoundGameOver, true
	}
	return 0, false
}

func generate(s Sound, rng *rand.Rand) buffer {
	switch s {
	case SoundCoin:
		// B5 then E6.
		return concat(
			envelope(oscillator(waveSquare, 987.77, samplesFor(0.06), rng), 0.005, 0.02),
			envelope(oscillator(waveSquare, 1318.51, samplesFor(0.18), rng), 0.005, 0.15),
		)
	case SoundPowerup:
		return envelope(sweep(400, 1200, samplesFor(0.3)), 0.01, 0.1)
	case SoundDamage:
		return envelope(mix(oscillator(waveSaw, 110, samplesFor(0.25), rng), oscillator(waveNoise, 0, samplesFor(0.25), rng), 0.3), 0.005, 0.2)
	case SoundStomp:
		return envelope(sweep(300, 80, samplesFor(0.15)), 0.002, 0.1)
	case SoundVictory:
		var notes []buffer
		for _, f := range []float64{523.25, 659.25, 783.99, 1046.5} {
			notes = append(notes, envelope(oscillator(waveSquare, f, samplesFor(0.12), rng), 0.005, 0.05))
		}
		return concat(notes...)
	case SoundGameOver:
		var notes []buffer
		for _, f := range []float64{392, 311.13, 261.63} {
			notes = append(notes, envelope(oscillator(waveSaw, f, samplesFor(0.2), rng), 0.01, 0.1))
		}
		return concat(notes...)
	case SoundStep:
		return envelope(oscillator(waveSine, 660, samplesFor(0.04), rng), 0.002, 0.03)
	}
	return nil
}
