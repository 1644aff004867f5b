package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Material selects the timbre of a synthesized crash.
type Material uint8

const (
	Glass Material = iota
	Metal
	China
	Wood
)

var Materials = []Material{Glass, Metal, China, Wood}

func (m Material) String() string {
	switch m {
	case Glass:
		return "glass"
	case Metal:
		return "metal"
	case China:
		return "china"
	case Wood:
		return "wood"
	default:
		return "unknown"
	}
}

type crashParams struct {
	duration time.Duration
	noise    float64
	partials []float64
	decay    float64
}

var crashes = map[Material]crashParams{
	Glass: {duration: 400 * time.Millisecond, noise: 0.5, partials: []float64{2637, 3951, 5274}, decay: 9},
	Metal: {duration: 700 * time.Millisecond, noise: 0.3, partials: []float64{523, 1187, 1760}, decay: 5},
	China: {duration: 350 * time.Millisecond, noise: 0.6, partials: []float64{1568, 2349}, decay: 12},
	Wood:  {duration: 250 * time.Millisecond, noise: 0.8, partials: []float64{196, 294}, decay: 18},
}

// noise produces white noise for a fixed number of samples
type noise struct {
	rng       *rand.Rand
	remaining int
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	if n.remaining <= 0 {
		return 0, false
	}

	count := min(len(samples), n.remaining)
	for idx := range samples[:count] {
		val := n.rng.Float64()*2 - 1
		samples[idx][0] = val
		samples[idx][1] = val
	}

	n.remaining -= count
	return count, true
}

func (n *noise) Err() error { return nil }

// decay fades the stream out exponentially, rate is in 1/s
type decay struct {
	streamer beep.Streamer
	factor   float64
	volume   float64
}

func newDecay(s beep.Streamer, rate float64, sampleRate beep.SampleRate) *decay {
	return &decay{
		streamer: s,
		factor:   math.Exp(-rate / float64(sampleRate)),
		volume:   1,
	}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.streamer.Stream(samples)

	for idx := range samples[:n] {
		samples[idx][0] *= d.volume
		samples[idx][1] *= d.volume
		d.volume *= d.factor
	}

	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

func gain(s beep.Streamer, volume float64) beep.Streamer {
	// Gain scales by 1 + Gain
	return &effects.Gain{Streamer: s, Gain: volume - 1}
}

// Crash synthesizes the sound of an object breaking.
func Crash(material Material, sampleRate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	params, ok := crashes[material]
	if !ok {
		params = crashes[Wood]
	}

	length := sampleRate.N(params.duration)

	streamers := []beep.Streamer{
		gain(&noise{rng: rng, remaining: length}, params.noise),
	}

	partialVolume := (1 - params.noise) / float64(len(params.partials))
	for _, freq := range params.partials {
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			// frequency above nyquist, skip the partial
			continue
		}

		streamers = append(streamers, gain(beep.Take(length, tone), partialVolume))
	}

	return newDecay(beep.Take(length, beep.Mix(streamers...)), params.decay, sampleRate)
}

// Ping synthesizes a short bell like tone.
func Ping(sampleRate beep.SampleRate) beep.Streamer {
	length := sampleRate.N(300 * time.Millisecond)

	fundamental, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return beep.Silence(length)
	}

	overtone, err := generators.SineTone(sampleRate, 1760)
	if err != nil {
		return newDecay(beep.Take(length, fundamental), 10, sampleRate)
	}

	mixed := beep.Mix(
		gain(beep.Take(length, fundamental), 0.7),
		gain(beep.Take(length, overtone), 0.3),
	)

	return newDecay(beep.Take(length, mixed), 10, sampleRate)
}

// Render drains the streamer into a stereo clip.
func Render(s beep.Streamer, sampleRate beep.SampleRate) *Clip {
	var samples []float32

	var buf [512][2]float64
	for {
		n, ok := s.Stream(buf[:])
		for _, frame := range buf[:n] {
			samples = append(samples, float32(frame[0]), float32(frame[1]))
		}

		if !ok || n == 0 {
			break
		}
	}

	return &Clip{
		Config: StreamConfig{
			SampleRate:         int(sampleRate),
			Channels:           2,
			ChannelSampleCount: len(samples) / 2,
		},
		Samples: samples,
	}
}
