package assets

import (
	"math"
	"math/rand"

	cfg "github.com/automoto/ronin-dash/config"
)

// Sound effects are synthesized instead of shipped. SynthesizeCue renders
// a cue spec into 16-bit little-endian stereo PCM ready for an ebiten
// audio player.
func SynthesizeCue(spec cfg.CueSpec, sampleRate int) []byte {
	n := int(spec.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}

	samples := make([]float64, n)
	switch spec.Shape {
	case cfg.ShapeNoise:
		renderNoise(samples, spec)
	default:
		renderTone(samples, spec, sampleRate)
	}

	// Short attack ramp plus a full-length fade keeps the cues click free.
	attack := sampleRate / 500
	for i := range samples {
		env := 1.0 - float64(i)/float64(n)
		if i < attack {
			env *= float64(i) / float64(attack)
		}
		samples[i] *= env * spec.Volume
	}

	out := make([]byte, n*4)
	for i, s := range samples {
		v := int16(math.Max(-1, math.Min(1, s)) * 32767)
		out[i*4] = byte(v)
		out[i*4+1] = byte(v >> 8)
		out[i*4+2] = byte(v)
		out[i*4+3] = byte(v >> 8)
	}
	return out
}

func renderTone(samples []float64, spec cfg.CueSpec, sampleRate int) {
	phase := 0.0
	n := len(samples)
	for i := range samples {
		t := float64(i) / float64(n)
		freq := spec.Freq + spec.Slide*t
		phase += 2 * math.Pi * freq / float64(sampleRate)
		s := math.Sin(phase)
		if spec.Shape == cfg.ShapeSquare {
			if s >= 0 {
				s = 1
			} else {
				s = -1
			}
			s *= 0.5 // squares read much louder than sines
		}
		samples[i] = s
	}
}

func renderNoise(samples []float64, spec cfg.CueSpec) {
	// Fixed seed: the same cue always sounds the same.
	rng := rand.New(rand.NewSource(0x5eed))
	prev := 0.0
	n := len(samples)
	for i := range samples {
		s := rng.Float64()*2 - 1
		if spec.PitchDrop {
			// One-pole low-pass that closes over the cue, dragging the
			// perceived pitch down for the impact sound.
			alpha := 1.0 - 0.95*float64(i)/float64(n)
			s = prev + alpha*(s-prev)
			prev = s
		}
		samples[i] = s
	}
}
