package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snek/event"
	"github.com/lixenwraith/snek/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite oscillator; rng feeds WaveNoise only
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf, so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// jitter returns a uniform value in [lo,hi)
func jitter(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// cueShape is the pitch-rate and gain range of a cue
// Each emission draws both from their ranges so repeated cues do not sound identical
type cueShape struct {
	rateLo, rateHi float64
	gainLo, gainHi float64
}

var cueShapes = [event.CueCount]cueShape{
	event.CueMove:             {0.95, 1.05, 0.2, 0.2},
	event.CueEat:              {1.7, 1.9, 0.7, 0.8},
	event.CueHitWall:          {0.95, 1.05, 0.4, 0.4},
	event.CueDoorOpen:         {2, 2, 0.95, 1.05},
	event.CueWallSpawn:        {0.9, 1.1, 0.7, 0.8},
	event.CueWallSpawnExiting: {0.9, 1.1, 0.2, 0.4},
	event.CueFoodSpawn:        {1.25, 1.55, 0.95, 1.05},
	event.CueLevelFinished:    {1.7, 1.7, 0.95, 1.05},
	event.CuePause:            {0.95, 1.05, 0.95, 1.05},
	event.CueUnpause:          {0.95, 1.05, 0.95, 1.05},
	event.CueHeartbeat:        {1, 1, 0.5, 0.5},
}

// CueSound builds the streamer for one emission of c, or nil for an unknown cue
// The result is finite and already scaled by the master volume
func CueSound(c event.Cue, cfg Config, rng *rand.Rand) beep.Streamer {
	if int(c) >= event.CueCount {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)
	shape := cueShapes[c]
	pitch := jitter(rng, shape.rateLo, shape.rateHi)
	gain := jitter(rng, shape.gainLo, shape.gainHi)

	var s beep.Streamer
	switch c {
	case event.CueMove:
		s = tone(rate, rng, 220*pitch, WaveSquare, parameter.MoveSoundDuration, parameter.MoveSoundRelease)
	case event.CueEat:
		s = tone(rate, rng, 440*pitch, WaveSine, parameter.EatSoundDuration, parameter.EatSoundRelease)
	case event.CueHitWall:
		s = beep.Mix(
			tone(rate, rng, 90*pitch, WaveSaw, parameter.HitSoundDuration, parameter.HitSoundRelease),
			newVolume(tone(rate, rng, 0, WaveNoise, parameter.HitSoundDuration, parameter.HitSoundRelease), 0.3),
		)
	case event.CueDoorOpen, event.CueLevelFinished:
		s = chime(rate, rng, 392*pitch, 523.25*pitch)
	case event.CuePause:
		s = chime(rate, rng, 523.25*pitch, 392*pitch)
	case event.CueUnpause:
		s = chime(rate, rng, 392*pitch, 523.25*pitch)
	case event.CueFoodSpawn:
		s = tone(rate, rng, 660*pitch, WaveSine, parameter.EatSoundDuration, parameter.EatSoundRelease)
	case event.CueWallSpawn, event.CueWallSpawnExiting:
		s = beep.Mix(
			tone(rate, rng, 70*pitch, WaveSine, parameter.SpawnSoundDuration, parameter.SpawnSoundRelease),
			newVolume(tone(rate, rng, 0, WaveNoise, parameter.SpawnSoundDuration/2, parameter.SpawnSoundRelease/2), 0.2),
		)
	case event.CueHeartbeat:
		s = heartbeat(rate)
	}
	if s == nil {
		return nil
	}
	return newVolume(s, gain*cfg.MasterVolume)
}

// tone is one enveloped oscillator note
// Noise gets its own source since it is read on the speaker goroutine
func tone(rate beep.SampleRate, rng *rand.Rand, freq float64, wave WaveType, d, release time.Duration) beep.Streamer {
	var noise *rand.Rand
	if wave == WaveNoise {
		noise = rand.New(rand.NewSource(rng.Uint64()))
	}
	osc := NewOscillator(freq, d, wave, rate, noise)
	return NewEnvelope(osc, d, parameter.CueAttack, release, rate)
}

// chime plays two square notes in sequence
func chime(rate beep.SampleRate, rng *rand.Rand, f1, f2 float64) beep.Streamer {
	return beep.Seq(
		tone(rate, rng, f1, WaveSquare, parameter.ChimeNote1Duration, parameter.ChimeNote1Release),
		tone(rate, rng, f2, WaveSquare, parameter.ChimeNote2Duration, parameter.ChimeNote2Release),
	)
}

// heartbeat is a lub-dub of two low sine thumps separated by silence
func heartbeat(rate beep.SampleRate) beep.Streamer {
	thump := func() beep.Streamer {
		sine, err := generators.SineTone(rate, parameter.HeartbeatFrequency)
		if err != nil {
			return beep.Silence(rate.N(parameter.HeartbeatThump))
		}
		return NewEnvelope(beep.Take(rate.N(parameter.HeartbeatThump), sine),
			parameter.HeartbeatThump, parameter.CueAttack, parameter.HeartbeatRelease, rate)
	}
	return beep.Seq(thump(), beep.Silence(rate.N(parameter.HeartbeatGap)), newVolume(thump(), 0.7))
}
