package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Sweep is a sine tone gliding from one frequency to another with a
// linear fade out.
type Sweep struct {
	sr       beep.SampleRate
	from, to float64
	amp      float64
	pos      int
	phase    float64
	length   int
}

// NewSweep creates a sweep lasting about 200ms unless cut short by beep.Take.
func NewSweep(sr beep.SampleRate, from, to, amp float64) *Sweep {
	return &Sweep{sr: sr, from: from, to: to, amp: amp, length: sr.N(200 * time.Millisecond)}
}

func (g *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(1, float64(g.pos)/float64(g.length))
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := g.amp * (1 - progress) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Sweep) Err() error {
	return nil
}

// Thud is a low sine with a fast exponential decay.
type Thud struct {
	sr   beep.SampleRate
	freq float64
	amp  float64
	pos  int
}

// NewThud creates a thud generator.
func NewThud(sr beep.SampleRate, freq, amp float64) *Thud {
	return &Thud{sr: sr, freq: freq, amp: amp}
}

func (g *Thud) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := g.amp * math.Exp(-t*30) * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Thud) Err() error {
	return nil
}

// Noise is low-passed white noise with an exponential decay, used for
// impacts and wind gusts. The seed makes it reproducible.
type Noise struct {
	sr    beep.SampleRate
	amp   float64
	decay float64
	seed  int64
	pos   int
	last  float64
}

// NewNoise creates a noise generator. Higher decay fades faster.
func NewNoise(sr beep.SampleRate, amp, decay float64, seed int64) *Noise {
	return &Noise{sr: sr, amp: amp, decay: decay, seed: seed}
}

func (g *Noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * g.decay)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		white := float64(g.seed)/float64(0x7fffffff)*2 - 1
		g.last += (white - g.last) * 0.1

		sample := g.amp * envelope * g.last
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Noise) Err() error {
	return nil
}
